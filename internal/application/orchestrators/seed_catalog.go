package orchestrators

import (
	"context"
	"log/slog"

	catalogStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/catalog"
	"github.com/oto-ml/PILARES-web/internal/application/seeddata"
	"github.com/oto-ml/PILARES-web/internal/domain/course"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// CourseStoreForSeed defines the course store interface needed by SeedCatalog.
type CourseStoreForSeed interface {
	List(ctx context.Context) ([]course.Course, error)
}

// WorkshopStoreForSeed defines the session store interface needed by SeedCatalog.
type WorkshopStoreForSeed interface {
	List(ctx context.Context) ([]workshop.Session, error)
}

// SeedCatalogDeps holds dependencies for SeedCatalog.
type SeedCatalogDeps struct {
	CourseStore   CourseStoreForSeed
	WorkshopStore WorkshopStoreForSeed
	BatchStore    catalogStore.BatchStore
}

// ExecuteSeedCatalog writes the static seed dataset as one atomic
// batch. With onlyIfEmpty set (startup), the write is skipped when
// either collection already has documents, so admin deletions survive
// restarts once any data exists. Without it (the admin "restore"
// action), every seed document is upserted unconditionally,
// overwriting records with matching ids and leaving others untouched.
func ExecuteSeedCatalog(ctx context.Context, deps SeedCatalogDeps, onlyIfEmpty bool) error {
	if onlyIfEmpty {
		courses, err := deps.CourseStore.List(ctx)
		if err != nil {
			return err
		}
		sessions, err := deps.WorkshopStore.List(ctx)
		if err != nil {
			return err
		}
		if len(courses) > 0 || len(sessions) > 0 {
			return nil // Already has data
		}
	}

	seedCourses := seeddata.Courses()
	seedSessions := seeddata.Sessions()
	if err := deps.BatchStore.UpsertAll(ctx, seedCourses, seedSessions); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "catalog_seeded", "courses", len(seedCourses), "sessions", len(seedSessions), "only_if_empty", onlyIfEmpty)
	return nil
}
