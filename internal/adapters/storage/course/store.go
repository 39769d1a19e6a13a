package course

import (
	"context"

	domain "github.com/oto-ml/PILARES-web/internal/domain/course"
)

// Store persists Course state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Course, error)
	Save(ctx context.Context, value domain.Course) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Course, error)
}
