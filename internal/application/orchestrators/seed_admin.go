package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oto-ml/PILARES-web/internal/domain/account"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	GetByName(ctx context.Context, name string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedAdmin creates the shared admin account if it does not
// exist yet. An existing account is left untouched so a changed env
// password never silently rotates the credential.
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, password string) error {
	if _, err := deps.AccountStore.GetByName(ctx, "admin"); err == nil {
		return nil // Already seeded
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Name:      "admin",
		Role:      account.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := acct.SetPassword(password); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_seeded")
	return nil
}
