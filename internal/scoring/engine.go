// Package scoring turns a complete answer set into normalized 0-100 category
// scores and a weighted overall score. Scoring is a pure function of the
// answers and the catalog: no side effects, deterministic output.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"assessment-backend/internal/catalog"
)

// CategoryScore is one category's normalized score.
type CategoryScore struct {
	CategoryID string  `json:"category_id"`
	Score      float64 `json:"score"`
}

// Result holds the full scoring output. Categories follow catalog order.
type Result struct {
	Categories []CategoryScore `json:"categories"`
	Overall    float64         `json:"overall"`
}

// Score computes per-category and overall scores for a complete answer set.
// It fails with ErrIncompleteAnswers when any catalog question is missing an
// answer, and with ErrInvalidAnswer when a value lies outside its question's
// scale or references an unknown question. No partial result is returned.
func Score(answers map[string]int, c catalog.Catalog) (Result, error) {
	if err := validateAnswers(answers, c); err != nil {
		return Result{}, err
	}

	result := Result{Categories: make([]CategoryScore, 0, len(c.Categories))}
	totalWeight := 0.0
	weightedSum := 0.0
	for _, cat := range c.Categories {
		score := categoryScore(answers, cat)
		result.Categories = append(result.Categories, CategoryScore{
			CategoryID: cat.ID,
			Score:      score,
		})
		weightedSum += score * cat.Weight
		totalWeight += cat.Weight
	}
	result.Overall = round2(weightedSum / totalWeight)
	return result, nil
}

// categoryScore is the weighted average of the category's answers, with each
// answer first normalized on its own scale, rescaled to 0-100.
func categoryScore(answers map[string]int, cat catalog.Category) float64 {
	weightSum := 0.0
	normalizedSum := 0.0
	for _, q := range cat.Questions {
		value := answers[q.ID]
		span := float64(q.Scale.Max - q.Scale.Min)
		normalizedSum += float64(value-q.Scale.Min) / span * q.Weight
		weightSum += q.Weight
	}
	return round2(normalizedSum / weightSum * 100)
}

func validateAnswers(answers map[string]int, c catalog.Catalog) error {
	var missing []string
	for _, cat := range c.Categories {
		for _, q := range cat.Questions {
			value, ok := answers[q.ID]
			if !ok {
				missing = append(missing, q.ID)
				continue
			}
			if !q.Scale.InDomain(value) {
				return fmt.Errorf("%w: question %q got %d, scale is %d-%d",
					ErrInvalidAnswer, q.ID, value, q.Scale.Min, q.Scale.Max)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %d question(s) unanswered: %s",
			ErrIncompleteAnswers, len(missing), strings.Join(missing, ", "))
	}
	if len(answers) > c.QuestionCount() {
		unknown := unknownQuestionIDs(answers, c)
		return fmt.Errorf("%w: unknown question(s): %s",
			ErrInvalidAnswer, strings.Join(unknown, ", "))
	}
	return nil
}

func unknownQuestionIDs(answers map[string]int, c catalog.Catalog) []string {
	var out []string
	for id := range answers {
		if _, ok := c.Question(id); !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
