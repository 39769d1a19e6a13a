package orchestrators_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oto-ml/PILARES-web/internal/application/orchestrators"
	"github.com/oto-ml/PILARES-web/internal/domain/course"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

func TestExecuteCreateCourseWithSchedule(t *testing.T) {
	batch := &mockBatchStore{}
	input := orchestrators.CreateCourseInput{
		Course: course.Course{
			Title:      "Taller de Serigrafía",
			Instructor: "Mtra. Carmen Ruiz",
			Category:   course.CategoryOficios,
		},
		Slots: []orchestrators.ScheduleSlot{
			{Day: workshop.Tuesday, Hour: 16, Duration: 1.5},
			{Day: workshop.Thursday, Hour: 10.5, Duration: 2},
		},
	}

	result, err := orchestrators.ExecuteCreateCourseWithSchedule(context.Background(), input, orchestrators.CreateCourseDeps{BatchStore: batch})
	if err != nil {
		t.Fatalf("ExecuteCreateCourseWithSchedule() error = %v", err)
	}

	if result.Course.ID == "" {
		t.Error("course was not assigned an id")
	}
	if len(result.Sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(result.Sessions))
	}

	first := result.Sessions[0]
	if first.Title != "Taller de Serigrafía" {
		t.Errorf("session title = %q, want course title", first.Title)
	}
	if first.Day != workshop.Tuesday || first.Hour != 16 {
		t.Errorf("session slot = (%d, %v), want (martes, 16)", first.Day, first.Hour)
	}
	if first.TimeString != "16:00 - 17:30" {
		t.Errorf("TimeString = %q, want %q", first.TimeString, "16:00 - 17:30")
	}
	if second := result.Sessions[1]; second.TimeString != "10:30 - 12:30" {
		t.Errorf("TimeString = %q, want %q", second.TimeString, "10:30 - 12:30")
	}
	// Oficios has no schedule column; its sessions file under Cultura.
	if first.Category != workshop.CategoryCultura {
		t.Errorf("session category = %q, want %q", first.Category, workshop.CategoryCultura)
	}

	if batch.calls != 1 {
		t.Errorf("batch calls = %d, want a single atomic write", batch.calls)
	}
	if len(batch.gotCourses) != 1 || len(batch.gotSessions) != 2 {
		t.Errorf("persisted %d courses and %d sessions, want 1 and 2", len(batch.gotCourses), len(batch.gotSessions))
	}
}

func TestExecuteCreateCourseWithSchedule_NoSlots(t *testing.T) {
	batch := &mockBatchStore{}
	input := orchestrators.CreateCourseInput{
		Course: course.Course{Title: "Club de Lectura", Instructor: "Laura Medina", Category: course.CategoryCultura},
	}

	result, err := orchestrators.ExecuteCreateCourseWithSchedule(context.Background(), input, orchestrators.CreateCourseDeps{BatchStore: batch})
	if err != nil {
		t.Fatalf("ExecuteCreateCourseWithSchedule() error = %v", err)
	}
	if len(result.Sessions) != 0 {
		t.Errorf("got %d sessions, want none", len(result.Sessions))
	}
	if batch.calls != 1 {
		t.Errorf("batch calls = %d, want 1", batch.calls)
	}
}

func TestExecuteCreateCourseWithSchedule_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   orchestrators.CreateCourseInput
		wantErr error
	}{
		{
			"empty title",
			orchestrators.CreateCourseInput{Course: course.Course{Instructor: "x"}},
			course.ErrEmptyTitle,
		},
		{
			"zero duration slot",
			orchestrators.CreateCourseInput{
				Course: course.Course{Title: "Ajedrez", Instructor: "y"},
				Slots:  []orchestrators.ScheduleSlot{{Day: workshop.Monday, Hour: 9, Duration: 0}},
			},
			orchestrators.ErrInvalidSlot,
		},
		{
			"day out of range",
			orchestrators.CreateCourseInput{
				Course: course.Course{Title: "Ajedrez", Instructor: "y"},
				Slots:  []orchestrators.ScheduleSlot{{Day: 7, Hour: 9, Duration: 1}},
			},
			workshop.ErrInvalidDay,
		},
		{
			"quarter hour slot",
			orchestrators.CreateCourseInput{
				Course: course.Course{Title: "Ajedrez", Instructor: "y"},
				Slots:  []orchestrators.ScheduleSlot{{Day: workshop.Monday, Hour: 9.25, Duration: 1}},
			},
			workshop.ErrInvalidHour,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := &mockBatchStore{}
			_, err := orchestrators.ExecuteCreateCourseWithSchedule(context.Background(), tt.input, orchestrators.CreateCourseDeps{BatchStore: batch})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if batch.calls != 0 {
				t.Errorf("rejected input still reached the store (%d calls)", batch.calls)
			}
		})
	}
}
