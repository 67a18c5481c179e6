// Package container provides the dioxide dependency-injection container: a
// thread-safe registry mapping types to construction strategies, and a
// resolver that produces instances on demand.
//
// It is a Go port of the dioxide Python library's container core. Because Go
// has no runtime constructor reflection, auto-wiring is replaced by explicit
// factory functions that may re-enter the container.
//
// # Provider kinds
//
//	// Pre-built value — same value on every Resolve
//	// Python: container.register_instance(Config, cfg)
//	container.Instance[*Config](c, cfg)
//
//	// Constructor — fresh value on every Resolve
//	// Python: container.register_class(Database, PostgresDatabase)
//	container.Class[Database](c, func() (Database, error) {
//	    return NewPostgresDatabase(), nil
//	})
//
//	// Transient factory — fresh value on every Resolve
//	// Python: container.register_factory(Request, make_request)
//	container.Factory[*Request](c, newRequest)
//
//	// Singleton factory — constructed once, cached
//	// Python: container.register_singleton(Pool, make_pool)
//	container.Singleton[*Pool](c, newPool)
//
// # Resolving
//
//	// Untyped, keyed by reflect.Type
//	v, err := c.Resolve(container.TypeOf[EmailPort]())
//
//	// Generic (preferred — no type assertion required)
//	sender, err := container.Resolve[EmailPort](c)
//
// # Identity keying
//
// Types are keyed by reflect.Type, which is identity-based: two keys are
// equal iff they denote the same Go type. An interface and a concrete type
// that implements it are different keys; register under the interface type
// when callers should depend on the port, not the adapter.
//
// # Errors
//
// All failures are returned as typed errors and never logged or retried:
// NotRegisteredError, DuplicateRegistrationError, RegistrationError, and
// ConstructionError (which wraps the constructor's own error or recovered
// panic). Match with errors.As:
//
//	var dup *container.DuplicateRegistrationError
//	if errors.As(err, &dup) {
//	    log.Fatalf("already bound: %s", dup.Type)
//	}
//
// # Concurrency
//
// A Container may be shared freely across goroutines. Registration holds
// the registry's write lock for the duplicate-check-and-insert; resolution
// takes only read locks, and no lock is held while a constructor or factory
// runs — caller-supplied code can safely resolve further dependencies.
package container
