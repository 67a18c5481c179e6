package container

import (
	"fmt"
	"reflect"
)

// ── Type keys ────────────────────────────────────────────────────────────────

// TypeOf returns the container key for T.
//
// reflect.Type values are canonical: two are equal iff they denote the same
// type, and they are stable for the life of the process — exactly the
// identity semantics the registry keys on. The pointer indirection makes
// interface types work too:
//
//	container.TypeOf[EmailPort]()   // the interface type itself
//	container.TypeOf[*SMTPSender]() // a concrete pointer type
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ── Typed registration ───────────────────────────────────────────────────────

// Instance registers a pre-built value under T's type key.
//
//	container.Instance[EmailPort](c, smtp)
func Instance[T any](c *Container, value T) error {
	return c.RegisterInstance(TypeOf[T](), value)
}

// Class registers a zero-argument constructor under T's type key. The
// constructor runs on every Resolve.
func Class[T any](c *Container, ctor func() (T, error)) error {
	if ctor == nil {
		return &RegistrationError{Type: TypeOf[T](), Reason: "nil constructor"}
	}
	return c.RegisterClass(TypeOf[T](), erase(ctor))
}

// Factory registers a transient factory under T's type key. The factory
// runs on every Resolve; results are never cached.
func Factory[T any](c *Container, factory func() (T, error)) error {
	if factory == nil {
		return &RegistrationError{Type: TypeOf[T](), Reason: "nil factory"}
	}
	return c.RegisterFactory(TypeOf[T](), erase(factory))
}

// Singleton registers a factory under T's type key whose result is cached
// after the first successful Resolve.
func Singleton[T any](c *Container, factory func() (T, error)) error {
	if factory == nil {
		return &RegistrationError{Type: TypeOf[T](), Reason: "nil factory"}
	}
	return c.RegisterSingleton(TypeOf[T](), erase(factory))
}

// erase adapts a typed constructor to the untyped Constructor the registry
// stores.
func erase[T any](fn func() (T, error)) Constructor {
	return func() (any, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// ── Typed resolution ─────────────────────────────────────────────────────────

// Resolve produces a value for T without a type assertion at the call site.
//
//	// Instead of: svc := c.Resolve(t).(*UserService)
//	// Write:      svc, err := container.Resolve[*UserService](c)
func Resolve[T any](c *Container) (T, error) {
	var zero T
	t := TypeOf[T]()

	v, err := c.Resolve(t)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &ConstructionError{
			Type:  t,
			Cause: fmt.Errorf("provider produced %T, not assignable to %s", v, t),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. Intended for wiring
// code where a missing provider is a programming error.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(fmt.Sprintf("container: MustResolve[%s]: %v", TypeOf[T](), err))
	}
	return v
}
