package assessments

import (
	"time"

	"assessment-backend/internal/report"
)

// Assessment is one completed assessment session: a stored report keyed by
// id, held in memory only for the lifetime of the process.
type Assessment struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Report    report.Report `json:"report"`
}
