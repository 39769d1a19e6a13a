package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/oto-ml/PILARES-web/internal/adapters/http/middleware"
	"github.com/oto-ml/PILARES-web/internal/application/orchestrators"
	"github.com/oto-ml/PILARES-web/internal/application/projections"
	"github.com/oto-ml/PILARES-web/internal/domain/course"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	if ok {
		role = sess.Role
	}

	funcMap := template.FuncMap{
		"currentRole": func() string { return role },
		"isLoggedIn":  func() bool { return role != "" },
		"csrfToken":   func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"dayName":    func(day int) string { return workshop.DayName(day) },
		"dayAbbrev":  func(day int) string { return workshop.DayAbbrev(day) },
		"formatHour": workshop.FormatHour,
		"add":        func(a, b int) int { return a + b },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleCatalog handles GET /, the public course catalog with
// category, text, and instructor filtering.
func handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	filter := course.Filter{
		Category:   q.Get("categoria"),
		Query:      q.Get("q"),
		Instructor: q.Get("instructor"),
	}

	result := projections.QueryGetCatalog(r.Context(), projections.GetCatalogDeps{
		CourseStore: stores.CourseStore,
	}, filter)

	if isHTMLRequest(r) {
		renderTemplate(w, r, "catalog.html", map[string]any{
			"Courses":          result.Courses,
			"Categories":       result.Categories,
			"Total":            result.Total,
			"FromFallback":     result.FromFallback,
			"SelectedCategory": filter.Category,
			"Search":           filter.Query,
			"Instructor":       filter.Instructor,
			"HasFilters":       filter.Category != "" || filter.Query != "" || filter.Instructor != "",
		})
		return
	}

	writeJSON(w, result)
}

// handleCourseDetail handles GET /curso/{id}
func handleCourseDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/curso/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	c, err := stores.CourseStore.GetByID(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "course_detail.html", map[string]any{
			"Course":    c,
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	writeJSON(w, c)
}

// handleSchedule handles GET /horario, the weekly schedule in grid
// (vista=semanal, default) or list (vista=lista) mode, optionally
// filtered by category.
func handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	selectedCategory := q.Get("categoria")
	view := q.Get("vista")
	if view != "lista" {
		view = "semanal"
	}

	result := projections.QueryGetSchedule(r.Context(), projections.GetScheduleDeps{
		WorkshopStore: stores.WorkshopStore,
	}, selectedCategory)

	if isHTMLRequest(r) {
		renderTemplate(w, r, "schedule.html", map[string]any{
			"Grid":             result.Grid,
			"List":             result.List,
			"Hours":            result.Hours,
			"Days":             workshop.DayNames,
			"Categories":       workshop.ValidCategories,
			"SelectedCategory": selectedCategory,
			"View":             view,
			"FromFallback":     result.FromFallback,
		})
		return
	}

	writeJSON(w, map[string]any{
		"Sessions":     result.List,
		"FromFallback": result.FromFallback,
	})
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to the admin panel
		if middleware.IsAdmin(r.Context()) {
			http.Redirect(w, r, "/admin/cursos", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Password: r.FormValue("Password"),
		}
		deps := orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			if !errors.Is(err, orchestrators.ErrInvalidPassword) {
				internalError(w, err)
				return
			}
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Name, result.Role)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin/cursos", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie("pilares_session")
	if err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleAdminCourses handles GET /admin/cursos, the course management panel.
func handleAdminCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	courses, err := stores.CourseStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin_courses.html", map[string]any{
		"Courses":    courses,
		"Categories": course.ValidCategories,
		"Days":       workshop.DayNames,
		"CSRFToken":  csrf.Token(r),
	})
}

// handleAdminSchedule handles GET /admin/horario, the session management panel.
func handleAdminSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ss, err := stores.WorkshopStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin_schedule.html", map[string]any{
		"Sessions":   workshop.Sort(ss),
		"Days":       workshop.DayNames,
		"Categories": workshop.ValidCategories,
		"CSRFToken":  csrf.Token(r),
	})
}
