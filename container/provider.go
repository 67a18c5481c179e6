package container

// ── Providers ────────────────────────────────────────────────────────────────

// Constructor builds a value for a registered type. It is supplied by the
// caller at registration time and invoked by the container during Resolve,
// with no container lock held — a Constructor may therefore re-enter the
// container to resolve its own dependencies.
type Constructor func() (any, error)

// providerKind selects the construction strategy stored for a type.
type providerKind int

const (
	// kindInstance returns the pre-built value as-is on every Resolve.
	kindInstance providerKind = iota
	// kindClass invokes the constructor on every Resolve.
	kindClass
	// kindSingletonFactory invokes the factory once and caches the result.
	kindSingletonFactory
	// kindTransientFactory invokes the factory on every Resolve.
	kindTransientFactory
)

func (k providerKind) String() string {
	switch k {
	case kindInstance:
		return "instance"
	case kindClass:
		return "class"
	case kindSingletonFactory:
		return "singleton factory"
	case kindTransientFactory:
		return "transient factory"
	}
	return "unknown"
}

// provider is a single registry entry. Entries are immutable once
// registered — they are never overwritten or removed — so a provider read
// under the registry's read lock stays valid after the lock is released.
type provider struct {
	kind  providerKind
	value any         // kindInstance only
	ctor  Constructor // every other kind
}
