package web

import (
	"net/http"

	"github.com/oto-ml/PILARES-web/internal/adapters/http/middleware"
)

// registerRoutes wires all page and API handlers onto the mux.
// Admin pages are gated by RequireAdmin; API write methods check the
// session inside the handler so GET stays public on the same path.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/", handleCatalog)
	mux.HandleFunc("/curso/", handleCourseDetail)
	mux.HandleFunc("/horario", handleSchedule)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Admin pages
	mux.Handle("/admin/cursos", middleware.RequireAdmin(http.HandlerFunc(handleAdminCourses)))
	mux.Handle("/admin/horario", middleware.RequireAdmin(http.HandlerFunc(handleAdminSchedule)))

	// JSON API
	mux.HandleFunc("/api/courses", handleAPICourses)
	mux.HandleFunc("/api/workshops", handleAPIWorkshops)
	mux.HandleFunc("/api/restore", handleAPIRestore)
	mux.HandleFunc("/api/inquiries", handleAPIInquiries)
	mux.Handle("/api/perf", middleware.RequireAdmin(http.HandlerFunc(handleAPIPerf)))
}
