package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	catalogStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/catalog"
	"github.com/oto-ml/PILARES-web/internal/domain/course"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// ScheduleSlot is one user-specified (day, hour, duration) tuple for
// the course→schedule fan-out.
type ScheduleSlot struct {
	Day      int
	Hour     float64
	Duration float64 // hours; halves allowed
}

// CreateCourseInput carries the course plus its optional schedule slots.
type CreateCourseInput struct {
	Course course.Course
	Slots  []ScheduleSlot
}

// CreateCourseResult carries the persisted documents.
type CreateCourseResult struct {
	Course   course.Course
	Sessions []workshop.Session
}

// CreateCourseDeps holds dependencies for CreateCourseWithSchedule.
type CreateCourseDeps struct {
	BatchStore catalogStore.BatchStore
}

// ErrInvalidSlot rejects fan-out slots the schedule cannot express.
var ErrInvalidSlot = errors.New("schedule slot must have a valid day and a positive duration")

// ExecuteCreateCourseWithSchedule creates a course and fans out one
// workshop session per schedule slot, persisting all documents in a
// single atomic batch write. Each session's display range is derived
// from its slot via the HH:MM formatter; this is the only code path
// that links TimeString to the structured fields.
// PRE: input.Course passes Validate after Normalize
// POST: on success every document is persisted; on failure none are
func ExecuteCreateCourseWithSchedule(ctx context.Context, input CreateCourseInput, deps CreateCourseDeps) (CreateCourseResult, error) {
	c := input.Course
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return CreateCourseResult{}, err
	}

	sessions := make([]workshop.Session, 0, len(input.Slots))
	for _, slot := range input.Slots {
		if slot.Duration <= 0 {
			return CreateCourseResult{}, ErrInvalidSlot
		}
		s := workshop.Session{
			ID:         uuid.New().String(),
			Day:        slot.Day,
			Hour:       slot.Hour,
			Title:      c.Title,
			Category:   sessionCategory(c.Category),
			TimeString: workshop.TimeRange(slot.Hour, slot.Duration),
			Type:       workshop.TypePrimary,
		}
		if err := s.Validate(); err != nil {
			return CreateCourseResult{}, err
		}
		sessions = append(sessions, s)
	}

	if err := deps.BatchStore.UpsertAll(ctx, []course.Course{c}, sessions); err != nil {
		return CreateCourseResult{}, err
	}

	slog.Info("catalog_event", "event", "course_created", "course_id", c.ID, "sessions", len(sessions))
	return CreateCourseResult{Course: c, Sessions: sessions}, nil
}

// sessionCategory maps a course category onto the schedule's category
// set. Oficios has no schedule column of its own and lands under
// Cultura, matching how the center files its craft workshops.
func sessionCategory(courseCategory string) string {
	switch courseCategory {
	case course.CategoryCiberescuela:
		return workshop.CategoryCiberescuela
	case course.CategoryPontePila:
		return workshop.CategoryPontePila
	default:
		return workshop.CategoryCultura
	}
}
