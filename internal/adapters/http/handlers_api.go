package web

import (
	"errors"
	"net/http"

	"github.com/oto-ml/PILARES-web/internal/adapters/http/middleware"
	"github.com/oto-ml/PILARES-web/internal/application/orchestrators"
	"github.com/oto-ml/PILARES-web/internal/application/projections"
	"github.com/oto-ml/PILARES-web/internal/domain/course"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// requireAdminAPI checks the session for API write methods. GET on the
// same path stays public, so this cannot be route-level middleware.
func requireAdminAPI(w http.ResponseWriter, r *http.Request) bool {
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// courseCreatePayload is the JSON body for POST /api/courses. Slots is
// optional; each slot fans out into one schedule session.
type courseCreatePayload struct {
	ID          string
	Title       string
	Instructor  string
	Category    string
	Description string
	Image       string
	Schedule    string
	Price       int
	Slots       []orchestrators.ScheduleSlot
}

func (p courseCreatePayload) course() course.Course {
	return course.Course{
		ID:          p.ID,
		Title:       p.Title,
		Instructor:  p.Instructor,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Schedule:    p.Schedule,
		Price:       p.Price,
	}
}

// handleAPICourses handles GET/POST/PUT/DELETE for /api/courses.
// GET is public and honors the same filters as the catalog page.
// Write methods require an admin session.
func handleAPICourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		q := r.URL.Query()
		filter := course.Filter{
			Category:   q.Get("categoria"),
			Query:      q.Get("q"),
			Instructor: q.Get("instructor"),
		}
		// Same read path as the catalog page: a store failure is
		// answered with the seed dataset, not a 500.
		result := projections.QueryGetCatalog(ctx, projections.GetCatalogDeps{
			CourseStore: stores.CourseStore,
		}, filter)
		writeJSON(w, result.Courses)

	case "POST":
		if !requireAdminAPI(w, r) {
			return
		}
		var payload courseCreatePayload
		if err := strictDecode(r, &payload); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		// New documents always get a server-assigned id.
		payload.ID = generateID()
		result, err := orchestrators.ExecuteCreateCourseWithSchedule(ctx, orchestrators.CreateCourseInput{
			Course: payload.course(),
			Slots:  payload.Slots,
		}, orchestrators.CreateCourseDeps{BatchStore: stores.BatchStore})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, result)

	case "PUT":
		if !requireAdminAPI(w, r) {
			return
		}
		var c course.Course
		if err := strictDecode(r, &c); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if c.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		c.Normalize()
		if err := c.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.CourseStore.Save(ctx, c); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, c)

	case "DELETE":
		if !requireAdminAPI(w, r) {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.CourseStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAPIWorkshops handles GET/POST/PUT/DELETE for /api/workshops.
func handleAPIWorkshops(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		selectedCategory := r.URL.Query().Get("categoria")
		result := projections.QueryGetSchedule(ctx, projections.GetScheduleDeps{
			WorkshopStore: stores.WorkshopStore,
		}, selectedCategory)
		writeJSON(w, result.List)

	case "POST", "PUT":
		if !requireAdminAPI(w, r) {
			return
		}
		var s workshop.Session
		if err := strictDecode(r, &s); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if r.Method == "POST" {
			s.ID = generateID()
		} else if s.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := s.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.WorkshopStore.Save(ctx, s); err != nil {
			internalError(w, err)
			return
		}
		if r.Method == "POST" {
			w.WriteHeader(http.StatusCreated)
		}
		writeJSON(w, s)

	case "DELETE":
		if !requireAdminAPI(w, r) {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.WorkshopStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAPIRestore handles POST /api/restore, the admin "restore seed
// data" action. Every seed document is upserted in one atomic batch;
// documents with other ids are left untouched.
func handleAPIRestore(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdminAPI(w, r) {
		return
	}

	deps := orchestrators.SeedCatalogDeps{
		CourseStore:   stores.CourseStore,
		WorkshopStore: stores.WorkshopStore,
		BatchStore:    stores.BatchStore,
	}
	if err := orchestrators.ExecuteSeedCatalog(r.Context(), deps, false); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAPIInquiries handles POST /api/inquiries, a public visitor
// asking about a course. The message is forwarded to the center's
// inbox via the configured email sender.
func handleAPIInquiries(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if emailSender == nil {
		http.Error(w, "email not configured", http.StatusServiceUnavailable)
		return
	}

	var input orchestrators.InquiryInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.SendInquiryDeps{
		Sender:  emailSender,
		To:      inquiryToAddress,
		ReplyTo: inquiryReplyTo,
	}
	if err := orchestrators.ExecuteSendInquiry(r.Context(), input, deps); err != nil {
		if errors.Is(err, orchestrators.ErrEmptyVisitorName) || errors.Is(err, orchestrators.ErrInvalidReplyEmail) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAPIPerf handles GET /api/perf, aggregated request and query
// timings for the admin diagnostics view.
func handleAPIPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collector not configured", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, perfCollector.Snapshot(20))
}
