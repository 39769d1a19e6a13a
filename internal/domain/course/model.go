package course

import (
	"errors"
	"strings"
)

// Category constants for the course catalog.
const (
	CategoryCultura      = "Cultura"
	CategoryCiberescuela = "Ciberescuela"
	CategoryPontePila    = "Ponte Pila"
	CategoryOficios      = "Oficios"
)

// ValidCategories contains all valid course category values.
var ValidCategories = []string{CategoryCultura, CategoryCiberescuela, CategoryPontePila, CategoryOficios}

// Max length constants for user-editable fields.
const (
	MaxTitleLength       = 200
	MaxInstructorLength  = 120
	MaxDescriptionLength = 4000
	MaxImageLength       = 2048
	MaxScheduleLength    = 120
)

// Domain errors
var (
	ErrEmptyTitle      = errors.New("course title cannot be empty")
	ErrEmptyInstructor = errors.New("course instructor cannot be empty")
	ErrTitleTooLong    = errors.New("course title cannot exceed 200 characters")
)

// Course represents a single catalog offering. All PILARES offerings
// are free, so Price is always coerced to 0 at the store boundary.
type Course struct {
	ID          string
	Title       string
	Instructor  string
	Category    string
	Description string
	Image       string // URL or embedded data URI
	Schedule    string // free-text display string, e.g. "Weekday Evenings"
	Price       int
}

// Validate checks if the Course has valid data.
// PRE: Normalize has been applied
// POST: Returns nil if valid, error otherwise
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	if len(c.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(c.Instructor) == "" {
		return ErrEmptyInstructor
	}
	if len(c.Instructor) > MaxInstructorLength {
		return errors.New("course instructor cannot exceed 120 characters")
	}
	if len(c.Description) > MaxDescriptionLength {
		return errors.New("course description cannot exceed 4000 characters")
	}
	if len(c.Image) > MaxImageLength {
		return errors.New("course image cannot exceed 2048 characters")
	}
	if len(c.Schedule) > MaxScheduleLength {
		return errors.New("course schedule cannot exceed 120 characters")
	}
	return nil
}

// Normalize applies the store-boundary defaulting rules: Price is
// forced to 0 and an unknown or empty category falls back to Cultura.
// POST: Price == 0 and Category is a member of ValidCategories
func (c *Course) Normalize() {
	c.Price = 0
	if !isValidCategory(c.Category) {
		c.Category = CategoryCultura
	}
}

// Filter holds the catalog filter inputs. Zero values mean "no
// constraint": an empty Category selects all categories.
type Filter struct {
	Category   string
	Query      string // matched against title and description
	Instructor string // matched against instructor
}

// Matches reports whether the course passes every active predicate.
// Category comparison is exact (case-sensitive); text predicates are
// case-insensitive substring matches.
// INVARIANT: Course fields are not mutated
func (c *Course) Matches(f Filter) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	if f.Instructor != "" {
		if !strings.Contains(strings.ToLower(c.Instructor), strings.ToLower(f.Instructor)) {
			return false
		}
	}
	return true
}

// Apply returns the courses passing the filter, preserving input order.
// PRE: none
// POST: result is a subset of courses; every element satisfies f
func Apply(courses []Course, f Filter) []Course {
	result := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Matches(f) {
			result = append(result, c)
		}
	}
	return result
}

func isValidCategory(cat string) bool {
	for _, c := range ValidCategories {
		if c == cat {
			return true
		}
	}
	return false
}
