package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mikelane/dioxide/container"
	"github.com/mikelane/dioxide/web"
)

type userService struct {
	names []string
}

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	c := container.New()
	if err := container.Instance(c, &userService{names: []string{"alice", "bob"}}); err != nil {
		t.Fatalf("Instance: %v", err)
	}
	return c
}

// ── Middleware + Resolve ──────────────────────────────────────────────────────

func TestResolve_HandlerGetsInjectedService(t *testing.T) {
	c := newTestContainer(t)
	r := web.NewRouter(c)

	r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
		svc, err := web.Resolve[*userService](req)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		web.JSON(w, http.StatusOK, map[string]any{"users": svc.names})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var body struct {
		Users []string `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.Users) != 2 || body.Users[0] != "alice" {
		t.Errorf("users = %v", body.Users)
	}
}

func TestResolve_UnregisteredTypeSurfacesContainerError(t *testing.T) {
	c := newTestContainer(t)

	var handlerErr error
	r := web.NewRouter(c)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		_, handlerErr = web.Resolve[*http.Client](req)
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var nr *container.NotRegisteredError
	if !errors.As(handlerErr, &nr) {
		t.Fatalf("got %v, want NotRegisteredError", handlerErr)
	}
}

func TestResolve_WithoutMiddleware_ErrNoContainer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := web.Resolve[*userService](req)
	if !errors.Is(err, web.ErrNoContainer) {
		t.Fatalf("got %v, want ErrNoContainer", err)
	}
}

// ── FromContext ───────────────────────────────────────────────────────────────

func TestFromContext_RoundTrip(t *testing.T) {
	c := newTestContainer(t)

	var seen *container.Container
	handler := web.Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seen, _ = web.FromContext(req.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if seen != c {
		t.Error("middleware should store the container in the request context")
	}
}

func TestFromContext_AbsentReportsFalse(t *testing.T) {
	if _, ok := web.FromContext(context.Background()); ok {
		t.Error("FromContext on a bare context should report false")
	}
}

// ── Response helpers ──────────────────────────────────────────────────────────

func TestJSON_SetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	web.JSON(rec, http.StatusCreated, map[string]string{"id": "1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestError_WrapsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	web.Error(rec, http.StatusNotFound, "no such user")

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "no such user" {
		t.Errorf("message = %q", body["message"])
	}
}
