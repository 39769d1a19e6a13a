package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oto-ml/PILARES-web/internal/adapters/storage"
	domain "github.com/oto-ml/PILARES-web/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new AccountStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByName retrieves an Account by its unique name.
// PRE: name is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, password_hash, role, created_at FROM account WHERE name = ?", name)
	var entity domain.Account
	var createdAt string
	err := row.Scan(&entity.ID, &entity.Name, &entity.PasswordHash, &entity.Role, &createdAt)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	if err != nil {
		return domain.Account{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}

// Save persists an Account to the database.
// PRE: entity has a password hash set
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Account) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO account (id, name, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET name=excluded.name, password_hash=excluded.password_hash, role=excluded.role",
		entity.ID, entity.Name, entity.PasswordHash, entity.Role, entity.CreatedAt.Format(time.RFC3339),
	)
	return err
}
