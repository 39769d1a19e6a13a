package account

import (
	"context"

	domain "github.com/oto-ml/PILARES-web/internal/domain/account"
)

// Store persists Account state.
type Store interface {
	GetByName(ctx context.Context, name string) (domain.Account, error)
	Save(ctx context.Context, value domain.Account) error
}
