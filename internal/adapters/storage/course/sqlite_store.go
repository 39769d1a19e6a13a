package course

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oto-ml/PILARES-web/internal/adapters/storage"
	domain "github.com/oto-ml/PILARES-web/internal/domain/course"
)

const courseColumns = "id, title, instructor, category, description, image, schedule, price"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new CourseStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Course by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Course, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courseColumns+" FROM course WHERE id = ?", id)
	var entity domain.Course
	err := row.Scan(&entity.ID, &entity.Title, &entity.Instructor, &entity.Category, &entity.Description, &entity.Image, &entity.Schedule, &entity.Price)
	if err == sql.ErrNoRows {
		return domain.Course{}, fmt.Errorf("course not found: %w", err)
	}
	return entity, err
}

// Save persists a Course to the database as a whole-document upsert.
// PRE: entity has been normalized and validated
// POST: Entity is persisted (insert or full replace by id)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Course) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO course (id, title, instructor, category, description, image, schedule, price) VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET title=excluded.title, instructor=excluded.instructor, category=excluded.category, description=excluded.description, image=excluded.image, schedule=excluded.schedule, price=excluded.price",
		entity.ID, entity.Title, entity.Instructor, entity.Category, entity.Description, entity.Image, entity.Schedule, entity.Price,
	)
	return err
}

// Delete removes a Course from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM course WHERE id = ?", id)
	return err
}

// List retrieves all Courses in insertion order.
// POST: Returns the full collection; filtering happens in memory
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+courseColumns+" FROM course ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Course
	for rows.Next() {
		var entity domain.Course
		if err := rows.Scan(&entity.ID, &entity.Title, &entity.Instructor, &entity.Category, &entity.Description, &entity.Image, &entity.Schedule, &entity.Price); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
