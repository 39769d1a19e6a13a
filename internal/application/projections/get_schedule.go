package projections

import (
	"context"
	"log/slog"

	"github.com/oto-ml/PILARES-web/internal/application/seeddata"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// ScheduleWorkshopStore defines the store interface needed by this projection.
type ScheduleWorkshopStore interface {
	List(ctx context.Context) ([]workshop.Session, error)
	ListByCategory(ctx context.Context, category string) ([]workshop.Session, error)
}

// GetScheduleDeps holds dependencies for the projection.
type GetScheduleDeps struct {
	WorkshopStore ScheduleWorkshopStore
}

// ScheduleResult carries both presentation modes of the weekly
// schedule: the day × hour grid and the flat chronological list.
type ScheduleResult struct {
	Grid         workshop.WeekGrid
	List         []workshop.Session // sorted by (day, hour), stable
	Hours        []int
	FromFallback bool
}

// QueryGetSchedule loads the session collection, optionally
// pre-filtered by category, and projects it into grid and list form.
// A load failure is logged and answered with the static seed dataset.
// POST: every in-range session appears in exactly one grid cell;
// result.List is a permutation of the filtered collection
func QueryGetSchedule(ctx context.Context, deps GetScheduleDeps, selectedCategory string) ScheduleResult {
	var sessions []workshop.Session
	var err error
	if selectedCategory != "" {
		sessions, err = deps.WorkshopStore.ListByCategory(ctx, selectedCategory)
	} else {
		sessions, err = deps.WorkshopStore.List(ctx)
	}
	fallback := false
	if err != nil {
		slog.Error("schedule_load_failed", "error", err.Error())
		sessions = workshop.FilterByCategory(seeddata.Sessions(), selectedCategory)
		fallback = true
	}

	return ScheduleResult{
		Grid:         workshop.BuildWeekGrid(sessions),
		List:         workshop.Sort(sessions),
		Hours:        workshop.Hours(),
		FromFallback: fallback,
	}
}
