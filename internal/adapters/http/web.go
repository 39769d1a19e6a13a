package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/oto-ml/PILARES-web/internal/adapters/email"
	"github.com/oto-ml/PILARES-web/internal/adapters/http/middleware"
	"github.com/oto-ml/PILARES-web/internal/adapters/http/perf"
	accountStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/account"
	catalogStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/catalog"
	courseStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/course"
	workshopStore "github.com/oto-ml/PILARES-web/internal/adapters/storage/workshop"
)

// Stores holds all storage dependencies.
type Stores struct {
	CourseStore   courseStore.Store
	WorkshopStore workshopStore.Store
	AccountStore  accountStore.Store
	BatchStore    catalogStore.BatchStore
}

// loadCSRFKey reads the CSRF secret from PILARES_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("PILARES_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PILARES_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PILARES_ENV") == "production" {
		log.Fatal("PILARES_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set PILARES_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Inquiry email configuration
var inquiryToAddress string
var inquiryReplyTo string

// SetEmailSender sets the global email sender for course inquiries.
func SetEmailSender(sender email.Sender, to, replyTo string) {
	emailSender = sender
	inquiryToAddress = to
	inquiryReplyTo = replyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
