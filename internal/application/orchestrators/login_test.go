package orchestrators_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oto-ml/PILARES-web/internal/application/orchestrators"
	"github.com/oto-ml/PILARES-web/internal/domain/account"
)

type mockAccountStore struct {
	accounts map[string]account.Account
}

func (m *mockAccountStore) GetByName(ctx context.Context, name string) (account.Account, error) {
	if a, ok := m.accounts[name]; ok {
		return a, nil
	}
	return account.Account{}, errors.New("account not found")
}

func (m *mockAccountStore) Save(ctx context.Context, a account.Account) error {
	if m.accounts == nil {
		m.accounts = make(map[string]account.Account)
	}
	m.accounts[a.Name] = a
	return nil
}

func seededStore(t *testing.T, password string) *mockAccountStore {
	t.Helper()
	a := account.Account{ID: "a1", Name: "admin", Role: account.RoleAdmin}
	if err := a.SetPassword(password); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	return &mockAccountStore{accounts: map[string]account.Account{"admin": a}}
}

// TestExecuteLogin tests the shared-secret gate.
func TestExecuteLogin(t *testing.T) {
	deps := orchestrators.LoginDeps{AccountStore: seededStore(t, "pilares2024")}

	result, err := orchestrators.ExecuteLogin(context.Background(), orchestrators.LoginInput{Password: "pilares2024"}, deps)
	if err != nil {
		t.Fatalf("ExecuteLogin(correct) error = %v", err)
	}
	if result.Role != account.RoleAdmin || result.AccountID != "a1" {
		t.Errorf("ExecuteLogin() result = %+v, want admin account a1", result)
	}

	tests := []struct {
		name     string
		password string
	}{
		{"wrong password", "incorrecta"},
		{"empty password", ""},
		{"case mismatch", "PILARES2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orchestrators.ExecuteLogin(context.Background(), orchestrators.LoginInput{Password: tt.password}, deps)
			if !errors.Is(err, orchestrators.ErrInvalidPassword) {
				t.Errorf("ExecuteLogin(%q) error = %v, want ErrInvalidPassword", tt.password, err)
			}
		})
	}
}

// TestExecuteLogin_NoAdminAccount tests the unseeded edge case.
func TestExecuteLogin_NoAdminAccount(t *testing.T) {
	deps := orchestrators.LoginDeps{AccountStore: &mockAccountStore{}}
	_, err := orchestrators.ExecuteLogin(context.Background(), orchestrators.LoginInput{Password: "pilares2024"}, deps)
	if !errors.Is(err, orchestrators.ErrInvalidPassword) {
		t.Errorf("ExecuteLogin() error = %v, want ErrInvalidPassword", err)
	}
}

// TestExecuteSeedAdmin tests idempotent admin seeding.
func TestExecuteSeedAdmin(t *testing.T) {
	store := &mockAccountStore{}
	deps := orchestrators.SeedAdminDeps{AccountStore: store}

	if err := orchestrators.ExecuteSeedAdmin(context.Background(), deps, "pilares2024"); err != nil {
		t.Fatalf("ExecuteSeedAdmin() error = %v", err)
	}
	first, err := store.GetByName(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}

	// A second seed with a different password must not rotate the credential.
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), deps, "otra-clave-123"); err != nil {
		t.Fatalf("ExecuteSeedAdmin() second run error = %v", err)
	}
	second, _ := store.GetByName(context.Background(), "admin")
	if second.PasswordHash != first.PasswordHash {
		t.Error("second seed replaced the existing admin credential")
	}

	if err := orchestrators.ExecuteSeedAdmin(context.Background(), orchestrators.SeedAdminDeps{AccountStore: &mockAccountStore{}}, "corta"); err == nil {
		t.Error("ExecuteSeedAdmin() accepted a too-short password")
	}
}
