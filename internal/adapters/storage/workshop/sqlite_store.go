package workshop

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oto-ml/PILARES-web/internal/adapters/storage"
	domain "github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

const sessionColumns = "id, day, hour, title, category, time_string, type, seats"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new WorkshopStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM workshop_session WHERE id = ?", id)
	var entity domain.Session
	err := row.Scan(&entity.ID, &entity.Day, &entity.Hour, &entity.Title, &entity.Category, &entity.TimeString, &entity.Type, &entity.Seats)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("workshop session not found: %w", err)
	}
	return entity, err
}

// Save persists a Session to the database as a whole-document upsert.
// PRE: entity has been validated
// POST: Entity is persisted (insert or full replace by id)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO workshop_session (id, day, hour, title, category, time_string, type, seats) VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET day=excluded.day, hour=excluded.hour, title=excluded.title, category=excluded.category, time_string=excluded.time_string, type=excluded.type, seats=excluded.seats",
		entity.ID, entity.Day, entity.Hour, entity.Title, entity.Category, entity.TimeString, entity.Type, entity.Seats,
	)
	return err
}

// Delete removes a Session from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM workshop_session WHERE id = ?", id)
	return err
}

// List retrieves all Sessions in insertion order.
// POST: Returns the full collection; bucketing and sorting happen in memory
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Session, error) {
	return s.querySessions(ctx, "SELECT "+sessionColumns+" FROM workshop_session ORDER BY rowid")
}

// ListByCategory retrieves Sessions for a specific category.
// PRE: category is non-empty
// POST: Returns sessions for the given category
func (s *SQLiteStore) ListByCategory(ctx context.Context, category string) ([]domain.Session, error) {
	return s.querySessions(ctx, "SELECT "+sessionColumns+" FROM workshop_session WHERE category = ? ORDER BY rowid", category)
}

func (s *SQLiteStore) querySessions(ctx context.Context, query string, args ...interface{}) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		var entity domain.Session
		if err := rows.Scan(&entity.ID, &entity.Day, &entity.Hour, &entity.Title, &entity.Category, &entity.TimeString, &entity.Type, &entity.Seats); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
