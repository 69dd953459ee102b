package export

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/recommend"
	"assessment-backend/internal/report"
	"assessment-backend/internal/scoring"
)

func fixtureReport(t *testing.T) report.Report {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	answers := make(map[string]int, c.QuestionCount())
	value := 0
	for _, cat := range c.Categories {
		for _, q := range cat.Questions {
			answers[q.ID] = value % 5
			value++
		}
	}

	result, err := scoring.Score(answers, c)
	require.NoError(t, err)
	recs := recommend.Generate(result, c)
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	return report.Build(c, answers, result, recs, now)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	rep := fixtureReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))

	var decoded struct {
		Timestamp    time.Time `json:"timestamp"`
		OverallScore float64   `json:"overall_score"`
		Categories   []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"categories"`
		Recommendations []struct {
			Category string `json:"category"`
			Text     string `json:"text"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Equal(t, rep.OverallScore, decoded.OverallScore)
	require.Len(t, decoded.Categories, len(rep.Categories))
	for i, cat := range rep.Categories {
		require.Equal(t, cat.Name, decoded.Categories[i].Name)
		require.Equal(t, cat.Score, decoded.Categories[i].Score)
	}
	require.Len(t, decoded.Recommendations, len(rep.Recommendations))
	require.Equal(t, rep.Recommendations[0].Text, decoded.Recommendations[0].Text)
}

func TestWriteXLSXSheets(t *testing.T) {
	rep := fixtureReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rep))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t,
		[]string{"Summary", "Detailed Scores", "Action Plan", "Overview"},
		f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	// Header + one row per category + overall row.
	require.Len(t, summary, len(rep.Categories)+2)
	require.Equal(t, []string{"Category", "Score", "Top Recommendation"}, summary[0])
	require.Equal(t, "Overall", summary[len(summary)-1][0])

	detailed, err := f.GetRows("Detailed Scores")
	require.NoError(t, err)
	require.Len(t, detailed, len(rep.Questions)+1)

	actions, err := f.GetRows("Action Plan")
	require.NoError(t, err)
	require.Len(t, actions, len(rep.Recommendations)+1)
}

func TestExportsAgreeOnSharedFields(t *testing.T) {
	rep := fixtureReport(t)

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteJSON(&jsonBuf, rep))
	var fromJSON struct {
		OverallScore float64 `json:"overall_score"`
		Categories   []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))

	var xlsxBuf bytes.Buffer
	require.NoError(t, WriteXLSX(&xlsxBuf, rep))
	f, err := excelize.OpenReader(bytes.NewReader(xlsxBuf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)

	categoryRows := rows[1 : len(rows)-1]
	require.Len(t, categoryRows, len(fromJSON.Categories))
	for i, row := range categoryRows {
		require.Equal(t, fromJSON.Categories[i].Name, row[0])
		score, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)
		require.Equal(t, fromJSON.Categories[i].Score, score)
	}

	overallRow := rows[len(rows)-1]
	overall, err := strconv.ParseFloat(overallRow[1], 64)
	require.NoError(t, err)
	require.Equal(t, fromJSON.OverallScore, overall)
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	if got := FileName("json", now); got != "physician_assessment_20250601_123000.json" {
		t.Fatalf("unexpected file name %q", got)
	}
}
