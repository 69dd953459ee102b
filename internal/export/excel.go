package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"assessment-backend/internal/report"
)

const (
	sheetSummary  = "Summary"
	sheetDetailed = "Detailed Scores"
	sheetActions  = "Action Plan"
	sheetOverview = "Overview"
)

// WriteXLSX writes the spreadsheet projection of the report: a summary sheet
// with one row per category plus an overall row, a per-question detail
// sheet, the action plan, and an overview sheet.
func WriteXLSX(w io.Writer, rep report.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, rep); err != nil {
		return err
	}
	if err := writeDetailedSheet(f, rep); err != nil {
		return err
	}
	if err := writeActionSheet(f, rep); err != nil {
		return err
	}
	if err := writeOverviewSheet(f, rep); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, rep report.Report) error {
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	rows := [][]any{{"Category", "Score", "Top Recommendation"}}
	for _, cat := range rep.Categories {
		rows = append(rows, []any{cat.Name, cat.Score, cat.TopRecommendation})
	}
	rows = append(rows, []any{"Overall", rep.OverallScore, rep.Verdict.Message})
	return setRows(f, sheetSummary, rows)
}

func writeDetailedSheet(f *excelize.File, rep report.Report) error {
	if _, err := f.NewSheet(sheetDetailed); err != nil {
		return fmt.Errorf("create detail sheet: %w", err)
	}
	rows := [][]any{{"Category", "Question", "Answer", "Answer Label", "Max Answer", "Weighted Score", "Percentage"}}
	for _, q := range rep.Questions {
		rows = append(rows, []any{q.Category, q.Question, q.Answer, q.AnswerLabel, q.MaxAnswer, q.WeightedScore, q.Percent})
	}
	return setRows(f, sheetDetailed, rows)
}

func writeActionSheet(f *excelize.File, rep report.Report) error {
	if _, err := f.NewSheet(sheetActions); err != nil {
		return fmt.Errorf("create action sheet: %w", err)
	}
	rows := [][]any{{"Category", "Priority", "Action Item"}}
	for _, rec := range rep.Recommendations {
		rows = append(rows, []any{rec.Category, rec.Priority, rec.Text})
	}
	return setRows(f, sheetActions, rows)
}

func writeOverviewSheet(f *excelize.File, rep report.Report) error {
	if _, err := f.NewSheet(sheetOverview); err != nil {
		return fmt.Errorf("create overview sheet: %w", err)
	}
	rows := [][]any{
		{"Metric", "Value"},
		{"Overall Score", fmt.Sprintf("%.2f/100", rep.OverallScore)},
		{"Verdict", rep.Verdict.Level},
		{"Assessment Date", rep.Timestamp.Format("2006-01-02 15:04")},
		{"Total Questions Answered", len(rep.Questions)},
		{"Catalog Version", rep.CatalogVersion},
	}
	return setRows(f, sheetOverview, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
