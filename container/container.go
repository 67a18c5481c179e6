package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Container ────────────────────────────────────────────────────────────────

// Container maps types to providers and resolves instances on demand.
//
// It owns two maps, each guarded by its own reader-writer lock:
//
//   - the provider registry: type → construction strategy, written once per
//     type (duplicates rejected), never overwritten or removed;
//   - the singleton cache: type → produced value, written lazily on the
//     first resolution of a singleton-factory provider.
//
// The zero Container is not usable; call New. A Container is safe for
// concurrent use by any number of goroutines.
type Container struct {
	pmu       sync.RWMutex
	providers map[reflect.Type]*provider

	smu        sync.RWMutex
	singletons map[reflect.Type]any
}

// New creates an empty container.
func New() *Container {
	return &Container{
		providers:  make(map[reflect.Type]*provider),
		singletons: make(map[reflect.Type]any),
	}
}

// ── Registration ─────────────────────────────────────────────────────────────

// RegisterInstance registers a pre-built value for a type. Every Resolve
// returns the same value.
//
//	// Python: container.register_instance(Config, cfg)
//	c.RegisterInstance(container.TypeOf[*Config](), cfg)
func (c *Container) RegisterInstance(t reflect.Type, value any) error {
	return c.register(t, &provider{kind: kindInstance, value: value})
}

// RegisterClass registers a zero-argument constructor for a type. The
// constructor is invoked fresh on every Resolve.
//
//	// Python: container.register_class(Database, PostgresDatabase)
//	c.RegisterClass(container.TypeOf[Database](), func() (any, error) {
//	    return NewPostgresDatabase(), nil
//	})
func (c *Container) RegisterClass(t reflect.Type, ctor Constructor) error {
	if ctor == nil {
		return &RegistrationError{Type: t, Reason: "nil constructor"}
	}
	return c.register(t, &provider{kind: kindClass, ctor: ctor})
}

// RegisterFactory registers a transient factory for a type. The factory is
// invoked fresh on every Resolve; results are never cached.
//
//	// Python: container.register_factory(Request, make_request)
//	c.RegisterFactory(container.TypeOf[*Request](), newRequest)
func (c *Container) RegisterFactory(t reflect.Type, factory Constructor) error {
	if factory == nil {
		return &RegistrationError{Type: t, Reason: "nil factory"}
	}
	return c.register(t, &provider{kind: kindTransientFactory, ctor: factory})
}

// RegisterSingleton registers a factory whose result is cached after the
// first successful Resolve. Every later Resolve returns the cached value.
//
//	// Python: container.register_singleton(Database, lambda: Database(url))
//	c.RegisterSingleton(container.TypeOf[*Database](), func() (any, error) {
//	    return OpenDatabase(url)
//	})
func (c *Container) RegisterSingleton(t reflect.Type, factory Constructor) error {
	if factory == nil {
		return &RegistrationError{Type: t, Reason: "nil factory"}
	}
	return c.register(t, &provider{kind: kindSingletonFactory, ctor: factory})
}

// register inserts a provider under the registry's write lock. The
// duplicate check and the insert happen inside one critical section so two
// concurrent registrations of the same type cannot both succeed.
func (c *Container) register(t reflect.Type, p *provider) error {
	if t == nil {
		return &RegistrationError{Reason: "nil type"}
	}

	c.pmu.Lock()
	defer c.pmu.Unlock()

	if _, exists := c.providers[t]; exists {
		return &DuplicateRegistrationError{Type: t}
	}
	c.providers[t] = p
	return nil
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve produces a value for a type.
//
// The singleton cache is consulted first, then the provider registry.
// Instance providers return their stored value; class and transient-factory
// providers construct a fresh value on every call; singleton-factory
// providers construct once and cache.
//
// No lock is held while caller-supplied code runs, so a constructor may
// itself call Resolve (a factory wiring its own dependencies).
//
//	// Python: service = container.resolve(UserService)
//	v, err := c.Resolve(container.TypeOf[*UserService]())
func (c *Container) Resolve(t reflect.Type) (any, error) {
	if t == nil {
		return nil, &NotRegisteredError{}
	}

	c.smu.RLock()
	cached, hit := c.singletons[t]
	c.smu.RUnlock()
	if hit {
		return cached, nil
	}

	c.pmu.RLock()
	p, ok := c.providers[t]
	c.pmu.RUnlock()
	if !ok {
		return nil, &NotRegisteredError{Type: t}
	}

	switch p.kind {
	case kindInstance:
		return p.value, nil

	case kindClass, kindTransientFactory:
		return c.construct(t, p.ctor)

	case kindSingletonFactory:
		value, err := c.construct(t, p.ctor)
		if err != nil {
			return nil, err
		}
		// Two goroutines may race the first construction (the factory runs
		// outside any lock). The first store wins; the loser discards its
		// value and returns the cached one, so every caller shares a single
		// instance.
		c.smu.Lock()
		if cached, hit := c.singletons[t]; hit {
			c.smu.Unlock()
			return cached, nil
		}
		c.singletons[t] = value
		c.smu.Unlock()
		return value, nil
	}

	return nil, &NotRegisteredError{Type: t}
}

// construct invokes caller-supplied code, converting both returned errors
// and panics into a ConstructionError. Failures are never retried — a
// factory may have side effects that must not repeat silently.
func (c *Container) construct(t reflect.Type, ctor Constructor) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ConstructionError{Type: t, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	value, err = ctor()
	if err != nil {
		return nil, &ConstructionError{Type: t, Cause: err}
	}
	return value, nil
}

// ── Introspection ────────────────────────────────────────────────────────────

// Len returns the number of registered types. The singleton cache does not
// contribute — only registrations are observable.
//
//	// Python: len(container)
func (c *Container) Len() int {
	c.pmu.RLock()
	defer c.pmu.RUnlock()
	return len(c.providers)
}

// IsEmpty reports whether the container has no registered providers.
//
//	// Python: container.is_empty()
func (c *Container) IsEmpty() bool { return c.Len() == 0 }

// Contains reports whether a provider is registered for t.
func (c *Container) Contains(t reflect.Type) bool {
	c.pmu.RLock()
	defer c.pmu.RUnlock()
	_, ok := c.providers[t]
	return ok
}

// Types returns a copy of all registered type keys (for debugging).
func (c *Container) Types() []reflect.Type {
	c.pmu.RLock()
	defer c.pmu.RUnlock()
	out := make([]reflect.Type, 0, len(c.providers))
	for t := range c.providers {
		out = append(out, t)
	}
	return out
}

// Reset clears the singleton cache. Registrations survive; the next Resolve
// of a singleton-factory type constructs a fresh value. Useful between
// tests.
func (c *Container) Reset() {
	c.smu.Lock()
	defer c.smu.Unlock()
	c.singletons = make(map[reflect.Type]any)
}
