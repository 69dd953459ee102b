package assessments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/recommend"
	"assessment-backend/internal/report"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/telemetry"
)

// Service runs the assessment pipeline: score, recommend, build report,
// store the session.
type Service struct {
	Catalog catalog.Catalog
	Repo    Repo
	Now     func() time.Time
}

// NewService constructs a Service with a real clock.
func NewService(c catalog.Catalog, repo Repo) *Service {
	return &Service{Catalog: c, Repo: repo, Now: time.Now}
}

// Run scores a complete answer set and stores the resulting report. The
// answer set itself is not retained.
func (s *Service) Run(ctx context.Context, answers map[string]int) (Assessment, error) {
	metrics.AssessmentsStarted.Inc()
	start := time.Now()

	result, err := scoring.Score(answers, s.Catalog)
	if err != nil {
		metrics.AssessmentsFailed.WithLabelValues(errorCode(err)).Inc()
		return Assessment{}, err
	}
	recs := recommend.Generate(result, s.Catalog)
	now := s.Now()
	rep := report.Build(s.Catalog, answers, result, recs, now)

	assessment := Assessment{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		Report:    rep,
	}
	if err := s.Repo.Create(ctx, assessment); err != nil {
		metrics.AssessmentsFailed.WithLabelValues(ErrorCodeInternal).Inc()
		return Assessment{}, err
	}

	metrics.AssessmentsCompleted.Inc()
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	telemetry.Info("assessment.completed", map[string]any{
		"assessment_id": assessment.ID,
		"overall_score": rep.OverallScore,
		"verdict":       rep.Verdict.Level,
	})
	return assessment, nil
}

// Get returns a stored assessment.
func (s *Service) Get(ctx context.Context, id string) (Assessment, error) {
	return s.Repo.GetByID(ctx, id)
}

// Delete discards a stored assessment.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, scoring.ErrIncompleteAnswers):
		return scoring.ErrorCodeIncomplete
	case errors.Is(err, scoring.ErrInvalidAnswer):
		return scoring.ErrorCodeInvalid
	default:
		return ErrorCodeInternal
	}
}
