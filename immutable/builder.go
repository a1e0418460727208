package immutable

import "reflect"

// Builder is a mutable draft of a wrapped instance, for batching several edits before
// sealing them into a new Immutable. Obtain one from Immutable.ToBuilder; the zero
// value starts from the zero T with default options. A Builder is not safe for
// concurrent use.
type Builder[T any] struct {
	draft T
	res   *resolver[T]
}

// Set assigns value to the selected member of the draft in place.
func Set[T, V any](b *Builder[T], sel Selector, value V) error {
	r, err := b.resolver()
	if err != nil {
		return err
	}
	set, err := r.resolveAccessor(sel, reflect.TypeFor[V]())
	if err != nil {
		return err
	}
	b.draft = set(b.draft, value)
	return nil
}

// Update replaces the draft with fn's result.
func (b *Builder[T]) Update(fn func(T) T) {
	b.draft = fn(b.draft)
}

// Value returns the current draft. Changes made through the result show up in the draft.
func (b *Builder[T]) Value() T {
	return b.draft
}

// ToImmutable seals a clone of the draft into a new wrapper.
// The builder stays usable and later edits do not reach the returned wrapper.
func (b *Builder[T]) ToImmutable() (Immutable[T], error) {
	r, err := b.resolver()
	if err != nil {
		return Immutable[T]{}, err
	}
	return r.wrapClone(b.draft)
}

func (b *Builder[T]) resolver() (*resolver[T], error) {
	if b.res != nil {
		return b.res, nil
	}
	r, err := newResolver[T](nil)
	if err != nil {
		return nil, err
	}
	b.res = r
	return r, nil
}
