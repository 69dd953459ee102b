package catalog

import (
	"fmt"
)

// Priority levels attached to recommendation bands.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Catalog is the immutable assessment instrument: categories, their weighted
// questions, and the per-category recommendation band tables. It is loaded
// once at process start and never mutated afterwards.
type Catalog struct {
	Version    string
	Categories []Category
}

// Category is one assessed dimension with an ordered list of questions.
type Category struct {
	ID        string
	Name      string
	Prompt    string
	Weight    float64
	Questions []Question
	Bands     []Band
}

// Question is a single weighted item. Answers are ordinal values on its scale.
type Question struct {
	ID         string
	CategoryID string
	Text       string
	Weight     float64
	Scale      Scale
}

// Scale is the ordinal answer domain with one label per step.
type Scale struct {
	Min    int
	Max    int
	Labels []string
}

// Band is one row of a category's threshold table: it applies to scores in
// [MinScore, next band's MinScore).
type Band struct {
	MinScore    float64
	Label       string
	Priority    string
	Suggestions []string
}

// InDomain reports whether v is a valid answer on the scale.
func (s Scale) InDomain(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Label returns the display label for an answer value.
func (s Scale) Label(v int) string {
	if !s.InDomain(v) {
		return ""
	}
	return s.Labels[v-s.Min]
}

// Category returns the category with the given id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Question returns the question with the given id from any category.
func (c Catalog) Question(id string) (Question, bool) {
	for _, cat := range c.Categories {
		for _, q := range cat.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// QuestionCount returns the total number of questions across categories.
func (c Catalog) QuestionCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Questions)
	}
	return n
}

// BandFor selects the band matching a 0-100 score by range lookup: the last
// band whose MinScore does not exceed the score.
func (cat Category) BandFor(score float64) Band {
	selected := cat.Bands[0]
	for _, band := range cat.Bands[1:] {
		if score < band.MinScore {
			break
		}
		selected = band
	}
	return selected
}

func validate(c Catalog) error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog must define at least one category")
	}
	categoryIDs := make(map[string]bool, len(c.Categories))
	questionIDs := make(map[string]bool)
	for i, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("categories[%d].id is required", i)
		}
		if categoryIDs[cat.ID] {
			return fmt.Errorf("categories[%d].id %q is duplicated", i, cat.ID)
		}
		categoryIDs[cat.ID] = true
		if cat.Name == "" {
			return fmt.Errorf("categories[%d].name is required", i)
		}
		if cat.Weight <= 0 {
			return fmt.Errorf("categories[%d].weight must be positive, got %g", i, cat.Weight)
		}
		if len(cat.Questions) == 0 {
			return fmt.Errorf("categories[%d] must define at least one question", i)
		}
		for j, q := range cat.Questions {
			if err := validateQuestion(q, questionIDs); err != nil {
				return fmt.Errorf("categories[%d].questions[%d]: %w", i, j, err)
			}
		}
		if err := validateBands(cat.Bands); err != nil {
			return fmt.Errorf("categories[%d].bands: %w", i, err)
		}
	}
	return nil
}

func validateQuestion(q Question, seen map[string]bool) error {
	if q.ID == "" {
		return fmt.Errorf("id is required")
	}
	if seen[q.ID] {
		return fmt.Errorf("id %q is duplicated", q.ID)
	}
	seen[q.ID] = true
	if q.Text == "" {
		return fmt.Errorf("text is required")
	}
	if q.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %g", q.Weight)
	}
	if q.Scale.Max <= q.Scale.Min {
		return fmt.Errorf("scale must span at least two values")
	}
	if got, want := len(q.Scale.Labels), q.Scale.Max-q.Scale.Min+1; got != want {
		return fmt.Errorf("scale needs %d labels, got %d", want, got)
	}
	return nil
}

func validateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("at least one band is required")
	}
	if bands[0].MinScore != 0 {
		return fmt.Errorf("first band must start at score 0, got %g", bands[0].MinScore)
	}
	prev := -1.0
	for i, band := range bands {
		if band.MinScore < 0 || band.MinScore >= 100 {
			return fmt.Errorf("bands[%d].min_score must lie in [0,100), got %g", i, band.MinScore)
		}
		if band.MinScore <= prev {
			return fmt.Errorf("bands[%d].min_score must be strictly ascending", i)
		}
		prev = band.MinScore
		if band.Label == "" {
			return fmt.Errorf("bands[%d].label is required", i)
		}
		switch band.Priority {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			return fmt.Errorf("bands[%d].priority must be high, medium or low, got %q", i, band.Priority)
		}
		if len(band.Suggestions) == 0 {
			return fmt.Errorf("bands[%d] must carry at least one suggestion", i)
		}
	}
	return nil
}
