package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "github.com/oto-ml/PILARES-web/internal/adapters/email"
	web "github.com/oto-ml/PILARES-web/internal/adapters/http"
	"github.com/oto-ml/PILARES-web/internal/adapters/http/perf"
	"github.com/oto-ml/PILARES-web/internal/adapters/storage"
	accountStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/account"
	catalogStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/catalog"
	courseStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/course"
	workshopStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/workshop"
	"github.com/oto-ml/PILARES-web/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load .env if present; real env vars take precedence
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("PILARES_DB_PATH", "pilares.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	acctStore := accountStore.NewSQLiteStore(timedDB)
	crsStore := courseStore.NewSQLiteStore(timedDB)
	wksStore := workshopStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		CourseStore:   crsStore,
		WorkshopStore: wksStore,
		AccountStore:  acctStore,
		BatchStore:    catalogStore.NewSQLiteBatchStore(timedDB),
	}

	// Seed the shared admin account if it does not exist
	adminPassword := envOrDefault("PILARES_ADMIN_PASSWORD", "pilares2024")
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed the catalog on first start; skipped once either collection has data
	catDeps := orchestrators.SeedCatalogDeps{
		CourseStore:   crsStore,
		WorkshopStore: wksStore,
		BatchStore:    stores.BatchStore,
	}
	if err := orchestrators.ExecuteSeedCatalog(context.Background(), catDeps, true); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	// Configure email sender for course inquiries
	resendKey := os.Getenv("PILARES_RESEND_KEY")
	emailFrom := envOrDefault("PILARES_RESEND_FROM", "PILARES <noreply@pilares.cdmx.gob.mx>")
	inquiryTo := envOrDefault("PILARES_INQUIRY_TO", "contacto@pilares.cdmx.gob.mx")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), inquiryTo, inquiryTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), inquiryTo, inquiryTo)
		if os.Getenv("PILARES_ENV") == "production" {
			log.Println("WARNING: PILARES_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set PILARES_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + diagnostics)
	mux := web.NewMux("static", stores, collector)

	// Start server
	addr := envOrDefault("PILARES_ADDR", ":8080")
	log.Printf("PILARES %s starting on %s (env=%s)", version, addr, envOrDefault("PILARES_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
