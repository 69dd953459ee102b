// Command report runs an assessment offline: it reads an answers JSON file,
// scores it against the catalog, and writes the report exports to disk.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/export"
	"assessment-backend/internal/recommend"
	"assessment-backend/internal/report"
	"assessment-backend/internal/scoring"
)

func main() {
	_ = godotenv.Load()

	answersPath := flag.String("answers", "", "Path to answers JSON file")
	catalogPath := flag.String("catalog", os.Getenv("CATALOG_PATH"), "Path to catalog YAML (default: embedded instrument)")
	outDir := flag.String("out", ".", "Output directory")
	format := flag.String("format", "both", "Export format: json, xlsx or both")
	flag.Parse()

	if strings.TrimSpace(*answersPath) == "" {
		exitErr("answers path is required")
	}
	switch *format {
	case "json", "xlsx", "both":
	default:
		exitErr(fmt.Sprintf("unknown format %q", *format))
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		exitErr(err.Error())
	}
	answers, err := readAnswers(*answersPath)
	if err != nil {
		exitErr(err.Error())
	}

	result, err := scoring.Score(answers, cat)
	if err != nil {
		exitErr(err.Error())
	}
	recs := recommend.Generate(result, cat)
	now := time.Now()
	rep := report.Build(cat, answers, result, recs, now)

	if *format == "json" || *format == "both" {
		path := filepath.Join(*outDir, export.FileName("json", now))
		if err := writeFile(path, func(f *os.File) error { return export.WriteJSON(f, rep) }); err != nil {
			exitErr(err.Error())
		}
		fmt.Println("wrote", path)
	}
	if *format == "xlsx" || *format == "both" {
		path := filepath.Join(*outDir, export.FileName("xlsx", now))
		if err := writeFile(path, func(f *os.File) error { return export.WriteXLSX(f, rep) }); err != nil {
			exitErr(err.Error())
		}
		fmt.Println("wrote", path)
	}

	fmt.Printf("overall score: %.2f (%s)\n", rep.OverallScore, rep.Verdict.Level)
	for _, cr := range rep.Categories {
		fmt.Printf("  %-22s %6.2f  %s\n", cr.Name, cr.Score, cr.Band)
	}
}

// readAnswers accepts either a bare map of question id to value or an
// object with an "answers" key, matching the API request body.
func readAnswers(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers %s: %w", path, err)
	}
	var wrapped struct {
		Answers map[string]int `json:"answers"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Answers) > 0 {
		return wrapped.Answers, nil
	}
	var plain map[string]int
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return plain, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
