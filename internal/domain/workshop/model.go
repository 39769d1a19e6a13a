package workshop

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Day constants. Days are numbered Monday=0 through Sunday=6, matching
// the public schedule grid columns.
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// DayNames maps a day index to its Spanish display name.
var DayNames = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// DayAbbrevs maps a day index to its short column header.
var DayAbbrevs = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// Week grid hour range. The grid renders one row per whole hour from
// MinHour to MaxHour inclusive (13 slots).
const (
	MinHour = 8
	MaxHour = 20
)

// Category constants for workshop sessions.
const (
	CategoryCultura      = "Cultura"
	CategoryCiberescuela = "Ciberescuela"
	CategoryPontePila    = "Ponte Pila"
	CategoryDestacado    = "Destacado"
)

// ValidCategories contains all valid session category values.
var ValidCategories = []string{CategoryCultura, CategoryCiberescuela, CategoryPontePila, CategoryDestacado}

// Visual style tags for grid cells.
const (
	TypePrimary = "primary"
	TypeMuted   = "muted"
	TypeGold    = "gold"
)

// Domain errors
var (
	ErrEmptyTitle      = errors.New("session title cannot be empty")
	ErrInvalidDay      = errors.New("day must be between 0 (Lunes) and 6 (Domingo)")
	ErrInvalidHour     = errors.New("hour must be a positive half-hour value")
	ErrInvalidCategory = errors.New("category must be one of: Cultura, Ciberescuela, Ponte Pila, Destacado")
	ErrInvalidType     = errors.New("type must be one of: primary, muted, gold")
)

// Session represents a single weekly workshop session. Hour is the
// start hour used purely as a sort and bucket key; half-hour starts
// are expressed as .5 fractions. TimeString is the human-readable
// range shown to visitors and is maintained independently of Day and
// Hour. The two are only linked at creation time by the course
// fan-out flow.
type Session struct {
	ID         string
	Day        int
	Hour       float64
	Title      string
	Category   string
	TimeString string
	Type       string // optional visual style: primary, muted, gold
	Seats      string // optional free-text capacity label, e.g. "3 LUGARES"
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	if s.Day < Monday || s.Day > Sunday {
		return ErrInvalidDay
	}
	if s.Hour < 0 || s.Hour != float64(int(s.Hour*2))/2 {
		return ErrInvalidHour
	}
	if !isValidCategory(s.Category) {
		return ErrInvalidCategory
	}
	if s.Type != "" && s.Type != TypePrimary && s.Type != TypeMuted && s.Type != TypeGold {
		return ErrInvalidType
	}
	return nil
}

// FilterByCategory returns the sessions matching the selected
// category. An empty selection means all sessions. Matching is exact.
// POST: result preserves input order
func FilterByCategory(sessions []Session, category string) []Session {
	if category == "" {
		return sessions
	}
	result := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Category == category {
			result = append(result, s)
		}
	}
	return result
}

// Sort returns a copy of the sessions ordered by day ascending then
// hour ascending. The sort is stable, so sessions sharing a slot keep
// their input order.
func Sort(sessions []Session) []Session {
	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].Hour < sorted[j].Hour
	})
	return sorted
}

// Hours returns the grid hour slots, MinHour through MaxHour.
func Hours() []int {
	hours := make([]int, 0, MaxHour-MinHour+1)
	for h := MinHour; h <= MaxHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

type cellKey struct {
	day  int
	hour int
}

// WeekGrid buckets sessions into day × hour cells for the calendar
// view. A session lands in exactly the cell equal to (Day, Hour);
// sessions with a fractional hour or outside the rendered range are
// silently omitted (the list view is unaffected since it only sorts).
type WeekGrid struct {
	cells map[cellKey][]Session
}

// BuildWeekGrid places each session into its (day, hour) cell.
// PRE: none
// POST: every in-range session appears in exactly one cell
func BuildWeekGrid(sessions []Session) WeekGrid {
	g := WeekGrid{cells: make(map[cellKey][]Session)}
	for _, s := range sessions {
		if s.Day < Monday || s.Day > Sunday {
			continue
		}
		if s.Hour != float64(int(s.Hour)) {
			continue // half-hour starts have no whole-hour row
		}
		h := int(s.Hour)
		if h < MinHour || h > MaxHour {
			continue
		}
		key := cellKey{day: s.Day, hour: h}
		g.cells[key] = append(g.cells[key], s)
	}
	return g
}

// At returns the sessions in the given cell, in input order.
// INVARIANT: the grid is not mutated
func (g WeekGrid) At(day, hour int) []Session {
	return g.cells[cellKey{day: day, hour: hour}]
}

// Len returns the total number of placed sessions.
func (g WeekGrid) Len() int {
	n := 0
	for _, cell := range g.cells {
		n += len(cell)
	}
	return n
}

// DayName returns the Spanish display name for a day index, or an
// empty string when the index is out of range.
func DayName(day int) string {
	if day < Monday || day > Sunday {
		return ""
	}
	return DayNames[day]
}

// DayAbbrev returns the short column header for a day index.
func DayAbbrev(day int) string {
	if day < Monday || day > Sunday {
		return ""
	}
	return DayAbbrevs[day]
}

// FormatHour renders a fractional start hour as HH:MM. The hour is
// truncated and the minutes are the fractional part times 60, both
// zero-padded to two digits. 9.5 becomes "09:30".
func FormatHour(hour float64) string {
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// TimeRange renders the display range for a session starting at hour
// and lasting duration hours, e.g. TimeRange(16, 1.5) == "16:00 - 17:30".
func TimeRange(hour, duration float64) string {
	return FormatHour(hour) + " - " + FormatHour(hour+duration)
}

func isValidCategory(cat string) bool {
	for _, c := range ValidCategories {
		if c == cat {
			return true
		}
	}
	return false
}
