package delegate

import (
	"reflect"
	"sync/atomic"

	"github.com/google/uuid"
)

var _ Store[struct{}] = (*Cache[struct{}])(nil)

// Cache is the per-type store of generated operations.
//
// Slots are plain atomic pointers without compare-and-swap: concurrent builders of
// the same operation overwrite each other with equivalent results.
type Cache[T any] struct {
	id  uuid.UUID
	typ reflect.Type

	creation    atomic.Pointer[CreationOp[T]]
	clone       atomic.Pointer[CloneOp[T]]
	serialize   atomic.Pointer[SerializeOp[T]]
	deserialize atomic.Pointer[DeserializeOp[T]]

	accessors accessorTrie[T]
}

// NewCache returns an empty, unregistered cache for T.
// Most callers want CacheFor, which keeps one cache per type.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{
		id:  uuid.New(),
		typ: reflect.TypeFor[T](),
	}
}

// ID identifies this cache instance in logs and diagnostics.
func (c *Cache[T]) ID() uuid.UUID { return c.id }

// Type is the closed type the cache serves.
func (c *Cache[T]) Type() reflect.Type { return c.typ }

func (c *Cache[T]) LoadAccessor(member MemberID, valueType reflect.Type) AccessorOp[T] {
	return c.accessors.load(member, valueType)
}

func (c *Cache[T]) StoreAccessor(member MemberID, valueType reflect.Type, op AccessorOp[T]) {
	c.accessors.store(member, valueType, op)
}

func (c *Cache[T]) LoadCreation() CreationOp[T] { return loadSlot(&c.creation) }

func (c *Cache[T]) StoreCreation(op CreationOp[T]) {
	if op != nil {
		c.creation.Store(&op)
	}
}

func (c *Cache[T]) LoadClone() CloneOp[T] { return loadSlot(&c.clone) }

func (c *Cache[T]) StoreClone(op CloneOp[T]) {
	if op != nil {
		c.clone.Store(&op)
	}
}

func (c *Cache[T]) LoadSerialize() SerializeOp[T] { return loadSlot(&c.serialize) }

func (c *Cache[T]) StoreSerialize(op SerializeOp[T]) {
	if op != nil {
		c.serialize.Store(&op)
	}
}

func (c *Cache[T]) LoadDeserialize() DeserializeOp[T] { return loadSlot(&c.deserialize) }

func (c *Cache[T]) StoreDeserialize(op DeserializeOp[T]) {
	if op != nil {
		c.deserialize.Store(&op)
	}
}

// Entry is a point-in-time snapshot of what the cache holds.
func (c *Cache[T]) Entry() Entry {
	return Entry{
		Type:        c.typ,
		CacheID:     c.id,
		Creation:    c.creation.Load() != nil,
		Clone:       c.clone.Load() != nil,
		Serialize:   c.serialize.Load() != nil,
		Deserialize: c.deserialize.Load() != nil,
		Accessors:   c.accessors.len(),
	}
}

// loadSlot returns the operation held by slot, or the zero (nil) operation.
func loadSlot[F any](slot *atomic.Pointer[F]) F {
	if p := slot.Load(); p != nil {
		return *p
	}
	var zero F
	return zero
}
