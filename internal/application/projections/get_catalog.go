package projections

import (
	"context"
	"log/slog"

	"github.com/oto-ml/PILARES-web/internal/application/seeddata"
	"github.com/oto-ml/PILARES-web/internal/domain/category"
	"github.com/oto-ml/PILARES-web/internal/domain/course"
)

// CatalogCourseStore defines the store interface needed by this projection.
type CatalogCourseStore interface {
	List(ctx context.Context) ([]course.Course, error)
}

// GetCatalogDeps holds dependencies for the projection.
type GetCatalogDeps struct {
	CourseStore CatalogCourseStore
}

// CatalogResult carries the filtered catalog and sidebar data.
type CatalogResult struct {
	Courses      []course.Course
	Categories   []category.Category
	Total        int  // courses matching the filter
	FromFallback bool // true when the static seed dataset was served
}

// QueryGetCatalog loads the course collection and applies the catalog
// filter in memory. A load failure is logged and answered with the
// static seed dataset so the public view never crashes or blocks.
// POST: result.Courses is a subset of the loaded collection, in
// collection order; an empty result is valid
func QueryGetCatalog(ctx context.Context, deps GetCatalogDeps, filter course.Filter) CatalogResult {
	courses, err := deps.CourseStore.List(ctx)
	fallback := false
	if err != nil {
		slog.Error("catalog_load_failed", "error", err.Error())
		courses = seeddata.Courses()
		fallback = true
	}

	filtered := course.Apply(courses, filter)
	return CatalogResult{
		Courses:      filtered,
		Categories:   category.WithCounts(courses),
		Total:        len(filtered),
		FromFallback: fallback,
	}
}
