// Package export renders a report into its two download formats. Both are
// lossless projections of the same report structure and agree on every
// shared field.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"assessment-backend/internal/report"
)

// WriteJSON writes the indented JSON projection of the report.
func WriteJSON(w io.Writer, rep report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}
	return nil
}

// FileName builds a timestamped download name, e.g.
// physician_assessment_20250601_123000.json.
func FileName(ext string, t time.Time) string {
	return fmt.Sprintf("physician_assessment_%s.%s", t.UTC().Format("20060102_150405"), ext)
}
