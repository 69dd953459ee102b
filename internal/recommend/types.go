package recommend

// Recommendation is the banded suggestion set for one category.
type Recommendation struct {
	CategoryID   string   `json:"category_id"`
	CategoryName string   `json:"category_name"`
	Score        float64  `json:"score"`
	Band         string   `json:"band"`
	Priority     string   `json:"priority"`
	Actions      []string `json:"actions"`
	Order        int      `json:"order"`
}

// Verdict is the banded judgement of the overall score.
type Verdict struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
