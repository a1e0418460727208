package immutable

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/reflective"
)

// resolver finds generated operations in the store, building and storing them on a miss.
// It is shared, read-only, by every wrapper derived from the same construction.
type resolver[T any] struct {
	typ      reflect.Type
	store    delegate.Store[T]
	builder  delegate.Builder[T]
	logger   *zap.Logger
	observer delegate.Observer
	cacheID  uuid.UUID
}

func newResolver[T any](opts []Option) (*resolver[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	reg := o.registry
	if reg == nil {
		reg = delegate.Default()
	}

	r := &resolver[T]{
		typ:      reflect.TypeFor[T](),
		logger:   reg.Logger(),
		observer: reg.Observer(),
	}
	if o.logger != nil {
		r.logger = o.logger
	}

	switch s := o.store.(type) {
	case nil:
		r.store = delegate.CacheFor[T](reg)
	case delegate.Store[T]:
		r.store = s
	default:
		return nil, fmt.Errorf("%w: store %T for %s", ErrOptionType, o.store, r.typ)
	}
	if c, ok := r.store.(interface{ ID() uuid.UUID }); ok {
		r.cacheID = c.ID()
	}

	switch b := o.builder.(type) {
	case nil:
		if registered, ok := delegate.BuilderFor[T](reg); ok {
			r.builder = registered
			break
		}
		fallback := reflective.New[T]()
		r.builder = delegate.BuilderOrStore[T](reg, fallback)
		if r.builder == delegate.Builder[T](fallback) {
			r.logger.Warn("registered reflective fallback builder; later registrations for the type will fail",
				zap.Stringer("type", r.typ))
		}
	case delegate.Builder[T]:
		r.builder = b
	default:
		return nil, fmt.Errorf("%w: builder %T for %s", ErrOptionType, o.builder, r.typ)
	}
	return r, nil
}

func (r *resolver[T]) creation() (delegate.CreationOp[T], error) {
	if op := r.store.LoadCreation(); op != nil {
		r.observer.ObserveLookup(delegate.KindCreation, true)
		return op, nil
	}
	var op delegate.CreationOp[T]
	if err := r.build(delegate.KindCreation, "", func() (built bool, err error) {
		op, err = r.builder.BuildCreation()
		return op != nil, err
	}); err != nil {
		return nil, err
	}
	r.store.StoreCreation(op)
	return op, nil
}

func (r *resolver[T]) clone() (delegate.CloneOp[T], error) {
	if op := r.store.LoadClone(); op != nil {
		r.observer.ObserveLookup(delegate.KindClone, true)
		return op, nil
	}
	var op delegate.CloneOp[T]
	if err := r.build(delegate.KindClone, "", func() (built bool, err error) {
		op, err = r.builder.BuildClone()
		return op != nil, err
	}); err != nil {
		return nil, err
	}
	r.store.StoreClone(op)
	return op, nil
}

func (r *resolver[T]) accessor(member delegate.MemberID, name string, valueType reflect.Type) (delegate.AccessorOp[T], error) {
	if op := r.store.LoadAccessor(member, valueType); op != nil {
		r.observer.ObserveLookup(delegate.KindAccessor, true)
		return op, nil
	}
	var op delegate.AccessorOp[T]
	if err := r.build(delegate.KindAccessor, name, func() (built bool, err error) {
		op, err = r.builder.BuildAccessor(member, valueType)
		return op != nil, err
	}); err != nil {
		return nil, err
	}
	r.store.StoreAccessor(member, valueType, op)
	return op, nil
}

func (r *resolver[T]) serialize() (delegate.SerializeOp[T], error) {
	if op := r.store.LoadSerialize(); op != nil {
		r.observer.ObserveLookup(delegate.KindSerialize, true)
		return op, nil
	}
	var op delegate.SerializeOp[T]
	if err := r.build(delegate.KindSerialize, "", func() (built bool, err error) {
		op, err = r.builder.BuildSerialize()
		return op != nil, err
	}); err != nil {
		return nil, err
	}
	r.store.StoreSerialize(op)
	return op, nil
}

func (r *resolver[T]) deserialize() (delegate.DeserializeOp[T], error) {
	if op := r.store.LoadDeserialize(); op != nil {
		r.observer.ObserveLookup(delegate.KindDeserialize, true)
		return op, nil
	}
	var op delegate.DeserializeOp[T]
	if err := r.build(delegate.KindDeserialize, "", func() (built bool, err error) {
		op, err = r.builder.BuildDeserialize()
		return op != nil, err
	}); err != nil {
		return nil, err
	}
	r.store.StoreDeserialize(op)
	return op, nil
}

// build runs fn after a cache miss and reports it. Builder errors are returned as is.
func (r *resolver[T]) build(kind delegate.Kind, member string, fn func() (bool, error)) error {
	r.observer.ObserveLookup(kind, false)

	start := time.Now()
	built, err := fn()
	if err == nil && !built {
		err = fmt.Errorf("%w: %s for %s", ErrNilOperation, kind, r.typ)
	}
	event := delegate.BuildEvent{
		Type:    r.typ,
		Kind:    kind,
		Member:  member,
		CacheID: r.cacheID,
		Span:    delegate.SpanSince(start),
		Err:     err,
	}
	r.observer.ObserveBuild(event)

	fields := []zap.Field{
		zap.Stringer("kind", kind),
		zap.Stringer("type", r.typ),
		zap.Duration("took", event.Took()),
	}
	if member != "" {
		fields = append(fields, zap.String("member", member))
	}
	if r.cacheID != uuid.Nil {
		fields = append(fields, zap.Stringer("cache_id", r.cacheID))
	}
	if err != nil {
		r.logger.Warn("failed to build generated operation", append(fields, zap.Error(err))...)
		return err
	}
	r.logger.Debug("built generated operation", fields...)
	return nil
}
