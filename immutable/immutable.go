package immutable

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/immutable_ive_go/delegate"
)

// Immutable holds one private instance of T and never mutates it.
//
// The zero value wraps the zero T and resolves its operations through the default
// registry on first use. Prefer New, which runs T's creation operation.
type Immutable[T any] struct {
	self T
	res  *resolver[T]
}

// New returns a wrapper around a freshly created default instance of T.
func New[T any](opts ...Option) (Immutable[T], error) {
	r, err := newResolver[T](opts)
	if err != nil {
		return Immutable[T]{}, err
	}
	create, err := r.creation()
	if err != nil {
		return Immutable[T]{}, err
	}
	return Immutable[T]{self: create(), res: r}, nil
}

// Create returns a wrapper around a clone of value.
// Later changes to value are not visible through the wrapper.
func Create[T any](value T, opts ...Option) (Immutable[T], error) {
	r, err := newResolver[T](opts)
	if err != nil {
		return Immutable[T]{}, err
	}
	return r.wrapClone(value)
}

// Get applies projection to the wrapped instance and returns its result.
// projection must not modify its argument.
func Get[T, R any](w Immutable[T], projection func(T) R) R {
	return projection(w.self)
}

// Modify returns a new wrapper whose instance equals w's with the selected member set
// to value. w is left untouched; on error the returned wrapper is the zero value.
func Modify[T, V any](w Immutable[T], sel Selector, value V) (Immutable[T], error) {
	r, err := w.resolver()
	if err != nil {
		return Immutable[T]{}, err
	}
	set, err := r.resolveAccessor(sel, reflect.TypeFor[V]())
	if err != nil {
		return Immutable[T]{}, err
	}
	clone, err := r.clone()
	if err != nil {
		return Immutable[T]{}, err
	}
	return Immutable[T]{self: set(clone(w.self), value), res: r}, nil
}

// ToBuilder returns a mutable builder seeded with a clone of the wrapped instance.
func (w Immutable[T]) ToBuilder() (*Builder[T], error) {
	r, err := w.resolver()
	if err != nil {
		return nil, err
	}
	clone, err := r.clone()
	if err != nil {
		return nil, err
	}
	return &Builder[T]{draft: clone(w.self), res: r}, nil
}

// Serialize writes the wrapped instance's members into sink.
// Errors raised by the sink are returned unchanged.
func (w Immutable[T]) Serialize(sink delegate.Sink) error {
	r, err := w.resolver()
	if err != nil {
		return err
	}
	serialize, err := r.serialize()
	if err != nil {
		return err
	}
	return serialize(w.self, sink)
}

// Deserialize creates a default instance of T, populates it from src and wraps it.
func Deserialize[T any](src delegate.Source, opts ...Option) (Immutable[T], error) {
	r, err := newResolver[T](opts)
	if err != nil {
		return Immutable[T]{}, err
	}
	return r.populate(src)
}

func (w Immutable[T]) resolver() (*resolver[T], error) {
	if w.res != nil {
		return w.res, nil
	}
	return newResolver[T](nil)
}

func (r *resolver[T]) wrapClone(value T) (Immutable[T], error) {
	clone, err := r.clone()
	if err != nil {
		return Immutable[T]{}, err
	}
	return Immutable[T]{self: clone(value), res: r}, nil
}

// populate runs creation before deserialization; the source never sees an
// unconstructed instance.
func (r *resolver[T]) populate(src delegate.Source) (Immutable[T], error) {
	create, err := r.creation()
	if err != nil {
		return Immutable[T]{}, err
	}
	deserialize, err := r.deserialize()
	if err != nil {
		return Immutable[T]{}, err
	}
	inst, err := deserialize(create(), src)
	if err != nil {
		return Immutable[T]{}, err
	}
	return Immutable[T]{self: inst, res: r}, nil
}

func (r *resolver[T]) resolveAccessor(sel Selector, valueType reflect.Type) (delegate.AccessorOp[T], error) {
	name, err := memberName(sel)
	if err != nil {
		return nil, err
	}
	member, ok := r.builder.ResolveMember(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no member %q", ErrInvalidSelector, r.typ, name)
	}
	return r.accessor(member, name, valueType)
}
