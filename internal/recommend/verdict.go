package recommend

// verdictBands is the overall-score threshold table, ascending by minScore.
// Selected by range lookup, same as the per-category band tables.
var verdictBands = []struct {
	minScore float64
	level    string
	message  string
}{
	{0, "Needs Improvement", "Your patient care approach needs substantial development. Prioritize the recommendations below."},
	{60, "Fair", "You have a foundation to build on. Improvement needed in several areas."},
	{70, "Good", "You have good patient care skills. Focus on the areas below to reach excellence."},
	{80, "Very Good", "You show strong patient care skills with minor areas for enhancement."},
	{90, "Excellent", "You demonstrate exceptional patient-centered care across all dimensions. Continue your excellent work!"},
}

// VerdictFor selects the verdict band for an overall 0-100 score.
func VerdictFor(overall float64) Verdict {
	selected := verdictBands[0]
	for _, band := range verdictBands[1:] {
		if overall < band.minScore {
			break
		}
		selected = band
	}
	return Verdict{Level: selected.level, Message: selected.message}
}
