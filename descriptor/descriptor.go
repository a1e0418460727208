// Package descriptor builds the generated operations of a wrapped type from an explicit
// table of typed getter/setter pairs, declared once when the program starts.
//
// Member values are deep copied on their way through setters, sinks and sources.
//
// Example:
//
//	var personType = descriptor.New(
//	    func() Person { return Person{} },
//	    func(p Person) Person { p.Tags = slices.Clone(p.Tags); return p },
//	)
//
//	func init() {
//	    descriptor.Field(personType, "Name",
//	        func(p Person) string { return p.Name },
//	        func(p Person, v string) Person { p.Name = v; return p })
//	    descriptor.MustRegister(delegate.Default(), personType)
//	}
package descriptor

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/reflective"
	"github.com/on-the-ground/immutable_ive_go/shared/helper"
)

var (
	// ErrUnknownMember is returned when an operation is requested for a member the
	// descriptor does not declare.
	ErrUnknownMember = errors.New("descriptor: unknown member")
	// ErrValueType is returned when an accessor is requested for a value type that can
	// not be stored into the member.
	ErrValueType = errors.New("descriptor: value type not assignable to member")
	// ErrNilFunc is returned when the descriptor lacks the function an operation needs.
	ErrNilFunc = errors.New("descriptor: nil function")
	// ErrDuplicateMember is the panic value when a member name is declared twice.
	ErrDuplicateMember = errors.New("descriptor: duplicate member")
)

var _ delegate.Builder[struct{}] = (*Descriptor[struct{}])(nil)

// Descriptor lists the members of T with their typed accessors.
// Declare every member before the descriptor is first used; it is read-only afterwards.
type Descriptor[T any] struct {
	owner   reflect.Type
	create  func() T
	clone   func(T) T
	members []*member[T]
	byName  map[string]*member[T]
	byID    map[delegate.MemberID]*member[T]
}

type member[T any] struct {
	id     delegate.MemberID
	name   string
	typ    reflect.Type
	get    func(T) any
	set    func(T, any) T
	decode func(T, delegate.Source) (T, bool, error)
}

// New starts a descriptor for T.
// create returns a fresh default instance; clone returns a copy sharing no mutable state.
func New[T any](create func() T, clone func(T) T) *Descriptor[T] {
	return &Descriptor[T]{
		owner:  reflect.TypeFor[T](),
		create: create,
		clone:  clone,
		byName: make(map[string]*member[T]),
		byID:   make(map[delegate.MemberID]*member[T]),
	}
}

// Field declares the member name of type V.
// It panics on an empty name, nil accessors or a name declared twice.
func Field[T, V any](d *Descriptor[T], name string, get func(T) V, set func(T, V) T) *Descriptor[T] {
	if name == "" || get == nil || set == nil {
		panic(fmt.Errorf("%w: member %q", ErrNilFunc, name))
	}
	if _, ok := d.byName[name]; ok {
		panic(fmt.Errorf("%w: %q", ErrDuplicateMember, name))
	}
	m := &member[T]{
		id:   delegate.MemberOf(d.owner, name),
		name: name,
		typ:  reflect.TypeFor[V](),
		get: func(inst T) any {
			return reflective.DeepCopy(get(inst))
		},
		set: func(inst T, raw any) T {
			v, err := helper.Cast[V](raw)
			if err != nil {
				// BuildAccessor only hands out setters for assignable value types
				panic(err)
			}
			return set(inst, reflective.DeepCopy(v))
		},
		decode: func(inst T, src delegate.Source) (T, bool, error) {
			var v V
			found, err := src.Decode(name, &v)
			if err != nil || !found {
				return inst, found, err
			}
			return set(inst, reflective.DeepCopy(v)), true, nil
		},
	}
	d.members = append(d.members, m)
	d.byName[name] = m
	d.byID[m.id] = m
	return d
}

// Members returns the declared member names in declaration order.
func (d *Descriptor[T]) Members() []string {
	names := make([]string, 0, len(d.members))
	for _, m := range d.members {
		names = append(names, m.name)
	}
	return names
}

func (d *Descriptor[T]) ResolveMember(name string) (delegate.MemberID, bool) {
	m, ok := d.byName[name]
	if !ok {
		return 0, false
	}
	return m.id, true
}

func (d *Descriptor[T]) BuildCreation() (delegate.CreationOp[T], error) {
	if d.create == nil {
		return nil, fmt.Errorf("%w: creation for %s", ErrNilFunc, d.owner)
	}
	return d.create, nil
}

func (d *Descriptor[T]) BuildClone() (delegate.CloneOp[T], error) {
	if d.clone == nil {
		return nil, fmt.Errorf("%w: clone for %s", ErrNilFunc, d.owner)
	}
	return d.clone, nil
}

func (d *Descriptor[T]) BuildAccessor(id delegate.MemberID, valueType reflect.Type) (delegate.AccessorOp[T], error) {
	m, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownMember, id, d.owner)
	}
	if !helper.CanAssign(valueType, m.typ) {
		return nil, fmt.Errorf("%w: %s to %s.%s (%s)", ErrValueType, valueType, d.owner, m.name, m.typ)
	}
	return m.set, nil
}

func (d *Descriptor[T]) BuildSerialize() (delegate.SerializeOp[T], error) {
	return func(inst T, sink delegate.Sink) error {
		for _, m := range d.members {
			if err := sink.AddValue(m.name, m.get(inst)); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func (d *Descriptor[T]) BuildDeserialize() (delegate.DeserializeOp[T], error) {
	return func(inst T, src delegate.Source) (T, error) {
		var errs error
		for _, m := range d.members {
			var err error
			inst, _, err = m.decode(inst, src)
			errs = multierr.Append(errs, err)
		}
		return inst, errs
	}, nil
}

// Register binds d as the builder for T on r.
// It fails with delegate.ErrAlreadyRegistered once any wrapper of T has resolved on r
// without a builder, since that stores the reflective fallback.
func Register[T any](r *delegate.Registry, d *Descriptor[T]) error {
	return delegate.Register[T](r, d)
}

// MustRegister is like Register but panics on failure. Call it from init, before any
// wrapper of T exists.
func MustRegister[T any](r *delegate.Registry, d *Descriptor[T]) {
	if err := Register(r, d); err != nil {
		panic(err)
	}
}
