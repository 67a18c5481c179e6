package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mikelane/dioxide/adapter"
	"github.com/mikelane/dioxide/container"
	"github.com/mikelane/dioxide/profile"
	"github.com/mikelane/dioxide/web"
)

// ── Ports ────────────────────────────────────────────────────────────────────

// EmailPort is what the application depends on; adapters implement it.
type EmailPort interface {
	Send(to, subject, body string) error
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// ── Adapters ─────────────────────────────────────────────────────────────────

// SMTPSender is the production email adapter.
type SMTPSender struct {
	Host string
}

func (s *SMTPSender) Send(to, subject, body string) error {
	// A real implementation would dial s.Host here.
	log.Printf("smtp(%s): to=%s subject=%q", s.Host, to, subject)
	return nil
}

// LogSender is the development/test email adapter — it only logs.
type LogSender struct{}

func (s *LogSender) Send(to, subject, body string) error {
	log.Printf("email (not sent): to=%s subject=%q", to, subject)
	return nil
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ── Service ──────────────────────────────────────────────────────────────────

// GreetingService composes the ports.
type GreetingService struct {
	Email EmailPort
	Clock Clock
}

func (g *GreetingService) Greet(name string) (string, error) {
	msg := fmt.Sprintf("Hello, %s! It is %s.", name, g.Clock.Now().Format(time.Kitchen))
	if err := g.Email.Send(name+"@example.com", "Greetings", msg); err != nil {
		return "", err
	}
	return msg, nil
}

func main() {
	active := profile.FromEnv() // loads .env automatically

	// ── Adapter bindings per profile ─────────────────────────────────────────

	reg := adapter.NewRegistry()

	adapter.Bind[EmailPort](reg).
		For(profile.Production, profile.Staging).
		Use(func() (any, error) {
			return &SMTPSender{Host: profile.Env("SMTP_HOST", "localhost:25")}, nil
		})

	adapter.Bind[EmailPort](reg).
		For(profile.Development, profile.Test, profile.CI).
		UseInstance(&LogSender{})

	adapter.Bind[Clock](reg).UseInstance(SystemClock{})

	c := container.New()
	if err := reg.Apply(c, active); err != nil {
		log.Fatalf("wiring: %v", err)
	}

	// Services resolve their own dependencies through the container.
	err := container.Singleton[*GreetingService](c, func() (*GreetingService, error) {
		email, err := container.Resolve[EmailPort](c)
		if err != nil {
			return nil, err
		}
		clock, err := container.Resolve[Clock](c)
		if err != nil {
			return nil, err
		}
		return &GreetingService{Email: email, Clock: clock}, nil
	})
	if err != nil {
		log.Fatalf("wiring: %v", err)
	}

	// ── HTTP ─────────────────────────────────────────────────────────────────

	r := web.NewRouter(c)

	r.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
		svc, err := web.Resolve[*GreetingService](req)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		greeting, err := svc.Greet(chi.URLParam(req, "name"))
		if err != nil {
			web.Error(w, http.StatusBadGateway, err.Error())
			return
		}
		web.JSON(w, http.StatusOK, map[string]any{"greeting": greeting})
	})

	addr := ":" + profile.Env("PORT", "8000")
	fmt.Printf("dioxide demo running on http://localhost%s  [%s]\n", addr, active)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
