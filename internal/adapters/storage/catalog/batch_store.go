// Package catalog provides the atomic multi-document batch writes the
// single-entity stores cannot express: the admin seed/restore and the
// course→schedule fan-out create are each a single transaction,
// all-or-nothing.
package catalog

import (
	"context"
	"fmt"

	"github.com/oto-ml/PILARES-web/internal/adapters/storage"
	courseDomain "github.com/oto-ml/PILARES-web/internal/domain/course"
	workshopDomain "github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// BatchStore performs atomic multi-document writes across both
// catalog collections.
type BatchStore interface {
	// UpsertAll writes every given course and session in one
	// transaction, overwriting documents with matching ids and
	// leaving all other documents in place.
	UpsertAll(ctx context.Context, courses []courseDomain.Course, sessions []workshopDomain.Session) error
}

// SQLiteBatchStore implements BatchStore using SQLite transactions.
type SQLiteBatchStore struct {
	db storage.SQLDB
}

// NewSQLiteBatchStore creates a new BatchStore.
func NewSQLiteBatchStore(db storage.SQLDB) *SQLiteBatchStore {
	return &SQLiteBatchStore{db: db}
}

// UpsertAll writes courses and sessions in a single transaction.
// PRE: every entity has a non-empty id
// POST: either every document is persisted or none are
func (s *SQLiteBatchStore) UpsertAll(ctx context.Context, courses []courseDomain.Course, sessions []workshopDomain.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch write: %w", err)
	}
	defer tx.Rollback()

	for _, c := range courses {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO course (id, title, instructor, category, description, image, schedule, price) VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET title=excluded.title, instructor=excluded.instructor, category=excluded.category, description=excluded.description, image=excluded.image, schedule=excluded.schedule, price=excluded.price",
			c.ID, c.Title, c.Instructor, c.Category, c.Description, c.Image, c.Schedule, c.Price,
		); err != nil {
			return fmt.Errorf("batch write course %s: %w", c.ID, err)
		}
	}

	for _, w := range sessions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO workshop_session (id, day, hour, title, category, time_string, type, seats) VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET day=excluded.day, hour=excluded.hour, title=excluded.title, category=excluded.category, time_string=excluded.time_string, type=excluded.type, seats=excluded.seats",
			w.ID, w.Day, w.Hour, w.Title, w.Category, w.TimeString, w.Type, w.Seats,
		); err != nil {
			return fmt.Errorf("batch write session %s: %w", w.ID, err)
		}
	}

	return tx.Commit()
}
