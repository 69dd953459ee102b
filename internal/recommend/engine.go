// Package recommend maps category scores onto the catalog's threshold band
// tables, producing ranked improvement suggestions and an overall verdict.
// Output is a pure function of the scores: same input, same ordered list.
package recommend

import (
	"sort"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/scoring"
)

// Generate builds one recommendation per category from its matching band,
// ordered by ascending score so the highest-need category comes first.
// Ties keep catalog order.
func Generate(result scoring.Result, c catalog.Catalog) []Recommendation {
	out := make([]Recommendation, 0, len(result.Categories))
	for _, cs := range result.Categories {
		cat, ok := c.Category(cs.CategoryID)
		if !ok {
			continue
		}
		band := cat.BandFor(cs.Score)
		out = append(out, Recommendation{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Score:        cs.Score,
			Band:         band.Label,
			Priority:     band.Priority,
			Actions:      append([]string(nil), band.Suggestions...),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}
