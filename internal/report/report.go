// Package report assembles the single serializable report structure produced
// by an assessment run. The report is the sole input to both export formats,
// which are lossless projections of it.
package report

import (
	"math"
	"time"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/recommend"
	"assessment-backend/internal/scoring"
)

// Report is the normalized assessment result returned by the API and fed to
// the JSON and Excel exports.
type Report struct {
	Timestamp       time.Time           `json:"timestamp"`
	CatalogVersion  string              `json:"catalog_version"`
	OverallScore    float64             `json:"overall_score"`
	Verdict         recommend.Verdict   `json:"verdict"`
	Categories      []CategoryResult    `json:"categories"`
	Recommendations []RecommendationRow `json:"recommendations"`
	Questions       []QuestionDetail    `json:"questions"`
}

// CategoryResult is one category's scored outcome.
type CategoryResult struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Score             float64 `json:"score"`
	Band              string  `json:"band"`
	Priority          string  `json:"priority"`
	TopRecommendation string  `json:"top_recommendation"`
}

// RecommendationRow is one suggested action, ordered highest-need first.
type RecommendationRow struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Priority string  `json:"priority"`
	Text     string  `json:"text"`
}

// QuestionDetail is the per-question breakdown carried into the detailed
// export sheet.
type QuestionDetail struct {
	Category      string  `json:"category"`
	Question      string  `json:"question"`
	Answer        int     `json:"answer"`
	AnswerLabel   string  `json:"answer_label"`
	MaxAnswer     int     `json:"max_answer"`
	WeightedScore float64 `json:"weighted_score"`
	Percent       float64 `json:"percent"`
}

// Build assembles a report from the scoring and recommendation outputs.
// Categories keep catalog order; recommendation rows keep the engine's
// ascending-score order.
func Build(c catalog.Catalog, answers map[string]int, result scoring.Result, recs []recommend.Recommendation, now time.Time) Report {
	r := Report{
		Timestamp:       now.UTC(),
		CatalogVersion:  c.Version,
		OverallScore:    result.Overall,
		Verdict:         recommend.VerdictFor(result.Overall),
		Categories:      make([]CategoryResult, 0, len(result.Categories)),
		Recommendations: make([]RecommendationRow, 0, len(recs)),
		Questions:       make([]QuestionDetail, 0, c.QuestionCount()),
	}

	byCategory := make(map[string]recommend.Recommendation, len(recs))
	for _, rec := range recs {
		byCategory[rec.CategoryID] = rec
	}

	for _, cs := range result.Categories {
		cat, ok := c.Category(cs.CategoryID)
		if !ok {
			continue
		}
		rec := byCategory[cs.CategoryID]
		top := ""
		if len(rec.Actions) > 0 {
			top = rec.Actions[0]
		}
		r.Categories = append(r.Categories, CategoryResult{
			ID:                cat.ID,
			Name:              cat.Name,
			Score:             cs.Score,
			Band:              rec.Band,
			Priority:          rec.Priority,
			TopRecommendation: top,
		})
		for _, q := range cat.Questions {
			value := answers[q.ID]
			span := float64(q.Scale.Max - q.Scale.Min)
			r.Questions = append(r.Questions, QuestionDetail{
				Category:      cat.Name,
				Question:      q.Text,
				Answer:        value,
				AnswerLabel:   q.Scale.Label(value),
				MaxAnswer:     q.Scale.Max,
				WeightedScore: round2(float64(value) * q.Weight),
				Percent:       round2(float64(value-q.Scale.Min) / span * 100),
			})
		}
	}

	for _, rec := range recs {
		for _, action := range rec.Actions {
			r.Recommendations = append(r.Recommendations, RecommendationRow{
				Category: rec.CategoryName,
				Score:    rec.Score,
				Priority: rec.Priority,
				Text:     action,
			})
		}
	}
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
