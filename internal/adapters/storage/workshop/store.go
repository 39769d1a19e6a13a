package workshop

import (
	"context"

	domain "github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// Store persists WorkshopSession state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Session, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Session, error)
}
