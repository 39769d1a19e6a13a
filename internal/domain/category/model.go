package category

import "github.com/oto-ml/PILARES-web/internal/domain/course"

// Category is a static reference entry used for sidebar and filter
// chip rendering. It is not persisted; courses and sessions store only
// the category name string.
type Category struct {
	ID    string
	Name  string
	Icon  string // material symbol name
	Count int
}

// Reference is the fixed sidebar category list.
var Reference = []Category{
	{ID: "ciber", Name: "Ciberescuela", Icon: "terminal"},
	{ID: "cultura", Name: "Cultura", Icon: "palette"},
	{ID: "pontepila", Name: "Ponte Pila", Icon: "fitness_center"},
}

// WithCounts returns the reference list with Count filled in from the
// current catalog.
// INVARIANT: Reference is not mutated
func WithCounts(courses []course.Course) []Category {
	result := make([]Category, len(Reference))
	copy(result, Reference)
	for i := range result {
		for _, c := range courses {
			if c.Category == result[i].Name {
				result[i].Count++
			}
		}
	}
	return result
}
