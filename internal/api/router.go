package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/trouvaille/lostfound/internal/api/recovery"
	authpkg "github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/services"
	"github.com/trouvaille/lostfound/internal/store"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Store      store.Store
	Items      *services.ItemService
	Auth       *services.AuthService
	Authorizer authpkg.Authorizer
	Log        zerolog.Logger
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware(d.Log))
	router.Use(requestLogger(d.Log))

	healthHandler := NewHealthHandler(d.Store)
	authHandler := NewAuthHandler(d.Auth)
	foundHandler := NewFoundHandler(d.Items)
	lostHandler := NewLostHandler(d.Items)
	matchHandler := NewMatchHandler(d.Items)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.Check).Methods("GET")

	// Auth endpoints
	router.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/users/me", requireUser(d.Authorizer, authHandler.Me)).Methods("GET")

	// Found item endpoints; reads and creates are open, edits are admin only
	router.HandleFunc("/api/found", foundHandler.List).Methods("GET")
	router.HandleFunc("/api/found", foundHandler.Create).Methods("POST")
	router.HandleFunc("/api/found/{id}", foundHandler.Get).Methods("GET")
	router.HandleFunc("/api/found/{id}", requireAdmin(d.Authorizer, foundHandler.Update)).Methods("PUT")
	router.HandleFunc("/api/found/{id}", requireAdmin(d.Authorizer, foundHandler.Delete)).Methods("DELETE")

	// Manual relation recompute (admin)
	router.HandleFunc("/api/rematch", requireAdmin(d.Authorizer, matchHandler.Rematch)).Methods("POST")

	// Lost item endpoints
	router.HandleFunc("/api/lost", lostHandler.List).Methods("GET")
	router.HandleFunc("/api/lost", lostHandler.Create).Methods("POST")
	router.HandleFunc("/api/lost/{id}", lostHandler.Get).Methods("GET")
	router.HandleFunc("/api/lost/{id}", requireAdmin(d.Authorizer, lostHandler.Update)).Methods("PUT")
	router.HandleFunc("/api/lost/{id}", requireAdmin(d.Authorizer, lostHandler.Delete)).Methods("DELETE")

	return router
}

// requestLogger emits one line per request with method, path and latency.
func requestLogger(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
