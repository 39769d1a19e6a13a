package workshop_test

import (
	"testing"

	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// TestSession_Validate tests validation of Session.
func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		session workshop.Session
		wantErr bool
	}{
		{
			name:    "valid session",
			session: workshop.Session{ID: "w5", Day: workshop.Tuesday, Hour: 10, Title: "Cartonería", Category: workshop.CategoryCultura, TimeString: "10:00 - 12:00", Type: workshop.TypePrimary},
			wantErr: false,
		},
		{
			name:    "valid half-hour start",
			session: workshop.Session{ID: "w2", Day: workshop.Monday, Hour: 8.5, Title: "Inglés Técnico", Category: workshop.CategoryCiberescuela},
			wantErr: false,
		},
		{
			name:    "empty title",
			session: workshop.Session{ID: "x", Day: workshop.Monday, Hour: 8, Title: "", Category: workshop.CategoryCultura},
			wantErr: true,
		},
		{
			name:    "day below range",
			session: workshop.Session{ID: "x", Day: -1, Hour: 8, Title: "Yoga", Category: workshop.CategoryPontePila},
			wantErr: true,
		},
		{
			name:    "day above range",
			session: workshop.Session{ID: "x", Day: 7, Hour: 8, Title: "Yoga", Category: workshop.CategoryPontePila},
			wantErr: true,
		},
		{
			name:    "quarter-hour start rejected",
			session: workshop.Session{ID: "x", Day: workshop.Monday, Hour: 8.25, Title: "Yoga", Category: workshop.CategoryPontePila},
			wantErr: true,
		},
		{
			name:    "unknown category",
			session: workshop.Session{ID: "x", Day: workshop.Monday, Hour: 8, Title: "Yoga", Category: "Deportes"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			session: workshop.Session{ID: "x", Day: workshop.Monday, Hour: 8, Title: "Yoga", Category: workshop.CategoryPontePila, Type: "neon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Session.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func sampleWeek() []workshop.Session {
	return []workshop.Session{
		{ID: "w1", Day: 0, Hour: 8, Title: "Yoga Despertar", Category: "Ponte Pila"},
		{ID: "w4", Day: 0, Hour: 16, Title: "Robótica", Category: "Ciberescuela"},
		{ID: "w5", Day: 1, Hour: 10, Title: "Cartonería", Category: "Cultura"},
		{ID: "w6", Day: 1, Hour: 10, Title: "Guitarra", Category: "Cultura"},
		{ID: "w7", Day: 1, Hour: 18, Title: "Defensa Personal", Category: "Ponte Pila"},
		{ID: "w13", Day: 4, Hour: 12, Title: "Cocina Saludable", Category: "Destacado"},
	}
}

// TestBuildWeekGrid_Placement verifies exact-cell placement.
func TestBuildWeekGrid_Placement(t *testing.T) {
	grid := workshop.BuildWeekGrid(sampleWeek())

	cell := grid.At(1, 10)
	if len(cell) != 2 {
		t.Fatalf("At(1,10) returned %d sessions, want 2", len(cell))
	}
	if cell[0].ID != "w5" || cell[1].ID != "w6" {
		t.Errorf("At(1,10) = %s,%s; want w5,w6 stacked in input order", cell[0].ID, cell[1].ID)
	}

	// w5 appears in no other cell.
	for _, h := range workshop.Hours() {
		for day := workshop.Monday; day <= workshop.Sunday; day++ {
			if day == 1 && h == 10 {
				continue
			}
			for _, s := range grid.At(day, h) {
				if s.ID == "w5" {
					t.Errorf("session w5 leaked into cell (%d,%d)", day, h)
				}
			}
		}
	}

	if grid.Len() != len(sampleWeek()) {
		t.Errorf("grid.Len() = %d, want %d (all sessions in range)", grid.Len(), len(sampleWeek()))
	}
}

// TestBuildWeekGrid_OutOfRange verifies silent omission of sessions
// outside the rendered grid.
func TestBuildWeekGrid_OutOfRange(t *testing.T) {
	sessions := []workshop.Session{
		{ID: "early", Day: 0, Hour: 7, Title: "Madrugada", Category: "Ponte Pila"},
		{ID: "late", Day: 0, Hour: 21, Title: "Nocturno", Category: "Cultura"},
		{ID: "half", Day: 0, Hour: 10.5, Title: "Media Hora", Category: "Cultura"},
		{ID: "ok", Day: 0, Hour: 8, Title: "Yoga", Category: "Ponte Pila"},
	}
	grid := workshop.BuildWeekGrid(sessions)
	if grid.Len() != 1 {
		t.Errorf("grid.Len() = %d, want 1 (out-of-range and fractional sessions omitted)", grid.Len())
	}
	if got := grid.At(0, 8); len(got) != 1 || got[0].ID != "ok" {
		t.Errorf("At(0,8) did not contain the single in-range session")
	}
}

// TestSort_ListMode verifies list-view ordering and permutation.
func TestSort_ListMode(t *testing.T) {
	input := []workshop.Session{
		{ID: "w13", Day: 4, Hour: 12, Title: "Cocina Saludable", Category: "Destacado"},
		{ID: "w5", Day: 1, Hour: 10, Title: "Cartonería", Category: "Cultura"},
		{ID: "w7", Day: 1, Hour: 18, Title: "Defensa Personal", Category: "Ponte Pila"},
		{ID: "w1", Day: 0, Hour: 8, Title: "Yoga Despertar", Category: "Ponte Pila"},
	}

	sorted := workshop.Sort(input)
	if len(sorted) != len(input) {
		t.Fatalf("Sort() returned %d sessions, want %d", len(sorted), len(input))
	}
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Day > cur.Day || (prev.Day == cur.Day && prev.Hour > cur.Hour) {
			t.Errorf("Sort() not ordered at index %d: (%d,%.1f) before (%d,%.1f)", i, prev.Day, prev.Hour, cur.Day, cur.Hour)
		}
	}
	if sorted[0].ID != "w1" {
		t.Errorf("Sort()[0].ID = %s, want w1", sorted[0].ID)
	}
	// w5 sorts before any session with day=1,hour>10 or day>1.
	if sorted[1].ID != "w5" {
		t.Errorf("Sort()[1].ID = %s, want w5", sorted[1].ID)
	}

	// Input must not be mutated.
	if input[0].ID != "w13" {
		t.Error("Sort() mutated its input")
	}
}

// TestFilterByCategory tests category pre-filtering.
func TestFilterByCategory(t *testing.T) {
	sessions := sampleWeek()

	got := workshop.FilterByCategory(sessions, "Cultura")
	if len(got) != 2 {
		t.Fatalf("FilterByCategory(Cultura) returned %d, want 2", len(got))
	}
	for _, s := range got {
		if s.Category != "Cultura" {
			t.Errorf("FilterByCategory leaked category %q", s.Category)
		}
	}

	if got := workshop.FilterByCategory(sessions, ""); len(got) != len(sessions) {
		t.Errorf("FilterByCategory(\"\") returned %d, want all %d", len(got), len(sessions))
	}
}

// TestFormatHour tests the HH:MM formatter.
func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour float64
		want string
	}{
		{8, "08:00"},
		{9.5, "09:30"},
		{16, "16:00"},
		{20.5, "20:30"},
	}
	for _, tt := range tests {
		if got := workshop.FormatHour(tt.hour); got != tt.want {
			t.Errorf("FormatHour(%v) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

// TestTimeRange tests the fan-out display range formatter.
func TestTimeRange(t *testing.T) {
	tests := []struct {
		hour     float64
		duration float64
		want     string
	}{
		{16, 1.5, "16:00 - 17:30"},
		{8.5, 1.5, "08:30 - 10:00"},
		{10, 2, "10:00 - 12:00"},
	}
	for _, tt := range tests {
		if got := workshop.TimeRange(tt.hour, tt.duration); got != tt.want {
			t.Errorf("TimeRange(%v, %v) = %q, want %q", tt.hour, tt.duration, got, tt.want)
		}
	}
}
