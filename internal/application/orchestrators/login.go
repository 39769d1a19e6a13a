package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"github.com/oto-ml/PILARES-web/internal/domain/account"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByName(ctx context.Context, name string) (account.Account, error)
}

// LoginInput carries input for the login orchestrator. The admin
// panel uses a single shared secret, so only a password is submitted.
type LoginInput struct {
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID string
	Name      string
	Role      string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

// ErrInvalidPassword is surfaced inline on the login form. There is no
// lockout and no retry penalty beyond the global per-IP rate limit.
var ErrInvalidPassword = errors.New("contraseña incorrecta")

// ExecuteLogin verifies the shared admin password and returns account
// info for session creation.
// PRE: the admin account has been seeded
// POST: Returns account info on success; the session stays
// unauthenticated on any mismatch
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Password == "" {
		return LoginResult{}, ErrInvalidPassword
	}

	acct, err := deps.AccountStore.GetByName(ctx, "admin")
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "reason", "no_admin_account")
		return LoginResult{}, ErrInvalidPassword
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "reason", "wrong_password")
		return LoginResult{}, ErrInvalidPassword
	}

	slog.Info("auth_event", "event", "login_success", "role", acct.Role)
	return LoginResult{
		AccountID: acct.ID,
		Name:      acct.Name,
		Role:      acct.Role,
	}, nil
}
