package report

import (
	"testing"
	"time"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/recommend"
	"assessment-backend/internal/scoring"
)

func buildFixture(t *testing.T) (catalog.Catalog, map[string]int, Report) {
	t.Helper()
	c, err := catalog.Parse([]byte(`
version: v1
categories:
  - id: alpha
    name: Alpha
    questions:
      - {id: a1, text: "Alpha question one", weight: 1, options: [A, B, C, D, E]}
      - {id: a2, text: "Alpha question two", weight: 1, options: [A, B, C, D, E]}
    bands:
      - {min_score: 0, label: Low, priority: high, suggestions: [fix-alpha, fix-alpha-more]}
      - {min_score: 75, label: Top, priority: low, suggestions: [keep-alpha]}
  - id: beta
    name: Beta
    questions:
      - {id: b1, text: "Beta question one", weight: 2, options: [A, B, C, D, E]}
    bands:
      - {min_score: 0, label: Low, priority: high, suggestions: [fix-beta]}
      - {min_score: 75, label: Top, priority: low, suggestions: [keep-beta]}
`))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}

	answers := map[string]int{"a1": 1, "a2": 2, "b1": 4}
	result, err := scoring.Score(answers, c)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	recs := recommend.Generate(result, c)
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	return c, answers, Build(c, answers, result, recs, now)
}

func TestBuildReportShape(t *testing.T) {
	c, _, rep := buildFixture(t)

	if rep.Timestamp != time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC) {
		t.Fatalf("unexpected timestamp %v", rep.Timestamp)
	}
	if rep.CatalogVersion != "v1" {
		t.Fatalf("expected catalog version v1, got %q", rep.CatalogVersion)
	}
	if len(rep.Categories) != len(c.Categories) {
		t.Fatalf("expected %d category rows, got %d", len(c.Categories), len(rep.Categories))
	}
	// Categories keep catalog order regardless of score.
	if rep.Categories[0].ID != "alpha" || rep.Categories[1].ID != "beta" {
		t.Fatalf("expected catalog order alpha,beta, got %s,%s",
			rep.Categories[0].ID, rep.Categories[1].ID)
	}
	if len(rep.Questions) != 3 {
		t.Fatalf("expected 3 question details, got %d", len(rep.Questions))
	}
}

func TestBuildCategoryRows(t *testing.T) {
	_, _, rep := buildFixture(t)

	alpha := rep.Categories[0]
	// a1=1, a2=2 on 0-4: (0.25+0.5)/2*100 = 37.5
	if alpha.Score != 37.5 {
		t.Fatalf("expected alpha score 37.5, got %g", alpha.Score)
	}
	if alpha.Band != "Low" || alpha.Priority != "high" {
		t.Fatalf("expected Low/high for alpha, got %s/%s", alpha.Band, alpha.Priority)
	}
	if alpha.TopRecommendation != "fix-alpha" {
		t.Fatalf("expected top recommendation fix-alpha, got %q", alpha.TopRecommendation)
	}

	beta := rep.Categories[1]
	if beta.Score != 100 {
		t.Fatalf("expected beta score 100, got %g", beta.Score)
	}
	if beta.TopRecommendation != "keep-beta" {
		t.Fatalf("expected top recommendation keep-beta, got %q", beta.TopRecommendation)
	}
}

func TestBuildRecommendationRowsOrdered(t *testing.T) {
	_, _, rep := buildFixture(t)

	// Alpha (37.5) ranks before beta (100); alpha's band has two actions.
	want := []struct {
		category string
		text     string
	}{
		{"Alpha", "fix-alpha"},
		{"Alpha", "fix-alpha-more"},
		{"Beta", "keep-beta"},
	}
	if len(rep.Recommendations) != len(want) {
		t.Fatalf("expected %d recommendation rows, got %d", len(want), len(rep.Recommendations))
	}
	for i, w := range want {
		row := rep.Recommendations[i]
		if row.Category != w.category || row.Text != w.text {
			t.Fatalf("row %d: got %s/%q, want %s/%q", i, row.Category, row.Text, w.category, w.text)
		}
	}
}

func TestBuildQuestionDetails(t *testing.T) {
	_, answers, rep := buildFixture(t)

	first := rep.Questions[0]
	if first.Question != "Alpha question one" {
		t.Fatalf("unexpected first question %q", first.Question)
	}
	if first.Answer != answers["a1"] {
		t.Fatalf("expected answer %d, got %d", answers["a1"], first.Answer)
	}
	if first.AnswerLabel != "B" {
		t.Fatalf("expected answer label B, got %q", first.AnswerLabel)
	}
	if first.Percent != 25 {
		t.Fatalf("expected percent 25, got %g", first.Percent)
	}

	last := rep.Questions[2]
	if last.WeightedScore != 8 { // answer 4 at weight 2
		t.Fatalf("expected weighted score 8, got %g", last.WeightedScore)
	}
}
