// Package adapter stages port → implementation bindings before a container
// exists, and applies the ones matching the active profile.
//
// It is the explicit-registration counterpart of dioxide's @adapter.for_
// decorator: bindings are declared up front, then Apply selects the set for
// the running environment.
//
//	reg := adapter.NewRegistry()
//
//	adapter.Bind[EmailPort](reg).
//	    For(profile.Production).
//	    Use(func() (any, error) { return NewSMTPSender(cfg), nil })
//
//	adapter.Bind[EmailPort](reg).
//	    For(profile.Test, profile.Development).
//	    UseInstance(&FakeSender{})
//
//	c := container.New()
//	if err := reg.Apply(c, profile.FromEnv()); err != nil { ... }
package adapter

import (
	"reflect"
	"sync"

	"github.com/mikelane/dioxide/container"
	"github.com/mikelane/dioxide/profile"
)

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry collects adapter bindings. It is safe to populate from init
// functions across packages; Apply snapshots the bindings it registers.
type Registry struct {
	mu       sync.Mutex
	bindings []*Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Bind starts a fluent binding chain for a port type. With no For clause
// the binding applies under every profile.
//
//	reg.Bind(container.TypeOf[CachePort]()).For(profile.Production).Use(newRedisCache)
func (r *Registry) Bind(port reflect.Type) *Binding {
	b := &Binding{
		port:     port,
		profiles: []profile.Profile{profile.All},
	}
	r.mu.Lock()
	r.bindings = append(r.bindings, b)
	r.mu.Unlock()
	return b
}

// Bind is the generic form of Registry.Bind.
//
//	adapter.Bind[CachePort](reg).For(profile.Test).UseInstance(&MapCache{})
func Bind[T any](r *Registry) *Binding {
	return r.Bind(container.TypeOf[T]())
}

// Apply registers every binding matching the active profile into c.
// Adapters register as singletons unless marked Transient. Two bindings
// matching the same port under the same profile surface the container's
// DuplicateRegistrationError; a binding with no construction strategy
// surfaces a RegistrationError.
func (r *Registry) Apply(c *container.Container, active profile.Profile) error {
	r.mu.Lock()
	bindings := make([]*Binding, len(r.bindings))
	copy(bindings, r.bindings)
	r.mu.Unlock()

	for _, b := range bindings {
		if !b.matches(active) {
			continue
		}
		if err := b.registerInto(c); err != nil {
			return err
		}
	}
	return nil
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Binding is one staged port → implementation mapping, built via the fluent
// For / Use / UseInstance / Transient chain.
type Binding struct {
	port      reflect.Type
	profiles  []profile.Profile
	ctor      container.Constructor
	instance  any
	hasInst   bool
	transient bool
}

// For restricts the binding to the given profiles. profile.All keeps the
// binding active everywhere.
func (b *Binding) For(profiles ...profile.Profile) *Binding {
	if len(profiles) > 0 {
		b.profiles = profiles
	}
	return b
}

// Use provides the constructor invoked when the binding is applied.
func (b *Binding) Use(ctor container.Constructor) *Binding {
	b.ctor = ctor
	return b
}

// UseInstance provides a pre-built value instead of a constructor.
func (b *Binding) UseInstance(value any) *Binding {
	b.instance = value
	b.hasInst = true
	return b
}

// Transient makes the binding register as a transient factory — a fresh
// value per Resolve — instead of the default singleton.
func (b *Binding) Transient() *Binding {
	b.transient = true
	return b
}

func (b *Binding) matches(active profile.Profile) bool {
	for _, p := range b.profiles {
		if p.Matches(active) {
			return true
		}
	}
	return false
}

func (b *Binding) registerInto(c *container.Container) error {
	switch {
	case b.hasInst:
		return c.RegisterInstance(b.port, b.instance)
	case b.ctor == nil:
		return &container.RegistrationError{Type: b.port, Reason: "binding has no constructor or instance"}
	case b.transient:
		return c.RegisterFactory(b.port, b.ctor)
	default:
		return c.RegisterSingleton(b.port, b.ctor)
	}
}
