// Package web integrates the dioxide container with HTTP handlers on top of
// chi. The middleware stores the container in every request's context;
// handlers pull dependencies back out with Resolve.
//
// This is the Go counterpart of dioxide's FastAPI integration
// (configure_dioxide + Inject), minus request scoping.
//
//	r := web.NewRouter(c)
//	r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
//	    svc, err := web.Resolve[*UserService](req)
//	    if err != nil {
//	        web.Error(w, http.StatusInternalServerError, err.Error())
//	        return
//	    }
//	    web.JSON(w, http.StatusOK, svc.ListAll())
//	})
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mikelane/dioxide/container"
)

// ErrNoContainer is returned by Resolve when the request context carries no
// container — the middleware was not installed.
var ErrNoContainer = errors.New("web: no container in request context")

type contextKey struct{}

// ── Wiring ───────────────────────────────────────────────────────────────────

// Middleware stores c in the context of every request passing through it.
// It is a standard func(http.Handler) http.Handler, usable with any router.
func Middleware(c *container.Container) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), contextKey{}, c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewRouter creates a chi router with sane defaults (RealIP, Recoverer) and
// the container middleware installed.
func NewRouter(c *container.Container) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(Middleware(c))
	return r
}

// ── Resolution from requests ─────────────────────────────────────────────────

// FromContext extracts the container stored by Middleware.
func FromContext(ctx context.Context) (*container.Container, bool) {
	c, ok := ctx.Value(contextKey{}).(*container.Container)
	return c, ok
}

// Resolve produces a value for T from the request's container.
//
//	// Python: service: UserService = Inject(UserService)
//	svc, err := web.Resolve[*UserService](req)
func Resolve[T any](r *http.Request) (T, error) {
	c, ok := FromContext(r.Context())
	if !ok {
		var zero T
		return zero, ErrNoContainer
	}
	return container.Resolve[T](c)
}

// ── Responses ────────────────────────────────────────────────────────────────

// JSON sends a JSON response.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response: {"message": "..."}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"message": message})
}
