package adapter_test

import (
	"errors"
	"testing"

	"github.com/mikelane/dioxide/adapter"
	"github.com/mikelane/dioxide/container"
	"github.com/mikelane/dioxide/profile"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type emailPort interface {
	Send(to string) error
}

type smtpSender struct{}

func (*smtpSender) Send(string) error { return nil }

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(to string) error {
	f.sent = append(f.sent, to)
	return nil
}

// ── profile selection ─────────────────────────────────────────────────────────

func TestApply_SelectsBindingForActiveProfile(t *testing.T) {
	reg := adapter.NewRegistry()

	adapter.Bind[emailPort](reg).
		For(profile.Production).
		Use(func() (any, error) { return &smtpSender{}, nil })

	fake := &fakeSender{}
	adapter.Bind[emailPort](reg).
		For(profile.Test, profile.Development).
		UseInstance(fake)

	c := container.New()
	if err := reg.Apply(c, profile.Test); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got, err := container.Resolve[emailPort](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != emailPort(fake) {
		t.Errorf("test profile resolved %T, want the fake sender", got)
	}
}

func TestApply_ProductionGetsProductionAdapter(t *testing.T) {
	reg := adapter.NewRegistry()

	adapter.Bind[emailPort](reg).
		For(profile.Production).
		Use(func() (any, error) { return &smtpSender{}, nil })
	adapter.Bind[emailPort](reg).
		For(profile.Test).
		UseInstance(&fakeSender{})

	c := container.New()
	if err := reg.Apply(c, profile.Production); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got, err := container.Resolve[emailPort](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := got.(*smtpSender); !ok {
		t.Errorf("production profile resolved %T, want *smtpSender", got)
	}
}

func TestApply_DefaultBindingMatchesEveryProfile(t *testing.T) {
	for _, active := range []profile.Profile{profile.Production, profile.Test, profile.Parse("custom")} {
		reg := adapter.NewRegistry()
		adapter.Bind[emailPort](reg).UseInstance(&fakeSender{})

		c := container.New()
		if err := reg.Apply(c, active); err != nil {
			t.Fatalf("Apply under %s: %v", active, err)
		}
		if !c.Contains(container.TypeOf[emailPort]()) {
			t.Errorf("default binding not applied under %s", active)
		}
	}
}

func TestApply_NonMatchingBindingsAreSkipped(t *testing.T) {
	reg := adapter.NewRegistry()
	adapter.Bind[emailPort](reg).
		For(profile.Production).
		UseInstance(&smtpSender{})

	c := container.New()
	if err := reg.Apply(c, profile.Test); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !c.IsEmpty() {
		t.Error("no binding should have been registered for the test profile")
	}
}

// ── failure modes ─────────────────────────────────────────────────────────────

func TestApply_TwoBindingsSamePortSameProfile_Duplicate(t *testing.T) {
	reg := adapter.NewRegistry()
	adapter.Bind[emailPort](reg).For(profile.Test).UseInstance(&fakeSender{})
	adapter.Bind[emailPort](reg).For(profile.Test).UseInstance(&fakeSender{})

	err := reg.Apply(container.New(), profile.Test)
	var dup *container.DuplicateRegistrationError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, want DuplicateRegistrationError", err)
	}
}

func TestApply_BindingWithoutStrategyFails(t *testing.T) {
	reg := adapter.NewRegistry()
	adapter.Bind[emailPort](reg).For(profile.Test)

	err := reg.Apply(container.New(), profile.Test)
	var re *container.RegistrationError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want RegistrationError", err)
	}
}

// ── scope of applied bindings ─────────────────────────────────────────────────

func TestApply_ConstructorBindingIsSingletonByDefault(t *testing.T) {
	reg := adapter.NewRegistry()
	built := 0
	adapter.Bind[emailPort](reg).Use(func() (any, error) {
		built++
		return &fakeSender{}, nil
	})

	c := container.New()
	if err := reg.Apply(c, profile.Development); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	a := container.MustResolve[emailPort](c)
	b := container.MustResolve[emailPort](c)
	if a != b || built != 1 {
		t.Errorf("adapter should be a singleton: distinct=%v built=%d", a != b, built)
	}
}

func TestApply_TransientBindingConstructsPerResolve(t *testing.T) {
	reg := adapter.NewRegistry()
	built := 0
	adapter.Bind[emailPort](reg).
		Transient().
		Use(func() (any, error) {
			built++
			return &fakeSender{}, nil
		})

	c := container.New()
	if err := reg.Apply(c, profile.Development); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	a := container.MustResolve[emailPort](c)
	b := container.MustResolve[emailPort](c)
	if a == b || built != 2 {
		t.Errorf("transient adapter should construct per resolve: distinct=%v built=%d", a != b, built)
	}
}
