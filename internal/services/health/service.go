// Package health encapsulates liveness checks.
package health

// Service reports process health.
type Service struct {
	catalogVersion string
	questionCount  int
}

// NewService constructs a health service describing the loaded instrument.
func NewService(catalogVersion string, questionCount int) *Service {
	return &Service{catalogVersion: catalogVersion, questionCount: questionCount}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":              true,
		"catalog_version": s.catalogVersion,
		"questions":       s.questionCount,
	}
}
