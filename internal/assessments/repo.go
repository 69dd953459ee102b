package assessments

import "context"

// Repo defines session storage for completed assessments. Implementations
// are process-local: assessment data never outlives the process.
type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	GetByID(ctx context.Context, id string) (Assessment, error)
	Delete(ctx context.Context, id string) error
}
