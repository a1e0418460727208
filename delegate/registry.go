package delegate

import (
	"errors"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/immutable_ive_go/shared/helper"
)

var (
	// ErrNilBuilder is returned when a nil builder is registered.
	ErrNilBuilder = errors.New("delegate: nil builder provided")
	// ErrAlreadyRegistered is returned when a type already has a builder.
	ErrAlreadyRegistered = errors.New("delegate: builder already registered for type")
)

// Entry is a diagnostic snapshot of one type's cache.
type Entry struct {
	Type        reflect.Type
	CacheID     uuid.UUID
	Creation    bool
	Clone       bool
	Serialize   bool
	Deserialize bool
	Accessors   int
}

// entryer is implemented by every *Cache[T]; the registry holds caches type-erased.
type entryer interface {
	Entry() Entry
}

// Registry owns one Cache per closed type, plus the builders registered for them.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	caches   sync.Map // reflect.Type -> *Cache[T]
	builders sync.Map // reflect.Type -> Builder[T]
	count    atomic.Int64

	logger   *zap.Logger
	observer Observer
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used when operations are built. nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets the observer notified about lookups and builds.
func WithObserver(observer Observer) RegistryOption {
	return func(r *Registry) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger:   zap.NewNop(),
		observer: NopObserver(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry())
}

// Default returns the process-wide registry used when no registry is given explicitly.
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault replaces the process-wide registry and returns the previous one.
// Wrappers created earlier keep the caches they were built with.
func SetDefault(r *Registry) *Registry {
	if r == nil {
		return Default()
	}
	return defaultRegistry.Swap(r)
}

// Logger returns the registry logger. It is never nil.
func (r *Registry) Logger() *zap.Logger { return r.logger }

// Observer returns the registry observer. It is never nil.
func (r *Registry) Observer() Observer { return r.observer }

// CacheFor returns the registry's cache for T, creating it on first use.
// Repeated calls return the same instance.
func CacheFor[T any](r *Registry) *Cache[T] {
	key := reflect.TypeFor[T]()
	if c, ok := helper.GetTypedValueOf2[*Cache[T]](func() (any, bool) {
		return r.caches.Load(key)
	}); ok {
		return c
	}
	fresh := NewCache[T]()
	v, loaded := r.caches.LoadOrStore(key, fresh)
	if !loaded {
		r.count.Add(1)
		r.logger.Debug("created delegate cache",
			zap.Stringer("type", key),
			zap.Stringer("cache_id", fresh.ID()),
		)
	}
	return v.(*Cache[T])
}

// Register binds b as the builder for T.
// A type can be registered once; later attempts return ErrAlreadyRegistered. That
// includes the reflective fallback the immutable package stores the first time a
// wrapper of an unregistered T resolves on r, so register before first use.
func Register[T any](r *Registry, b Builder[T]) error {
	if b == nil {
		return ErrNilBuilder
	}
	if _, loaded := r.builders.LoadOrStore(reflect.TypeFor[T](), b); loaded {
		return ErrAlreadyRegistered
	}
	return nil
}

// BuilderFor returns the builder registered for T.
func BuilderFor[T any](r *Registry) (Builder[T], bool) {
	return helper.GetTypedValueOf2[Builder[T]](func() (any, bool) {
		return r.builders.Load(reflect.TypeFor[T]())
	})
}

// BuilderOrStore returns the builder registered for T, registering b when there is none.
func BuilderOrStore[T any](r *Registry, b Builder[T]) Builder[T] {
	if b == nil {
		existing, _ := BuilderFor[T](r)
		return existing
	}
	v, _ := r.builders.LoadOrStore(reflect.TypeFor[T](), b)
	return v.(Builder[T])
}

// Count returns the number of caches created so far.
func (r *Registry) Count() int {
	return int(r.count.Load())
}

// Entries returns a snapshot of every cache, ordered by type name.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, r.Count())
	r.caches.Range(func(_, value any) bool {
		if c, ok := value.(entryer); ok {
			entries = append(entries, c.Entry())
		}
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.String() < entries[j].Type.String()
	})
	return entries
}
