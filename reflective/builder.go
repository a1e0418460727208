// Package reflective synthesises the generated operations of plain struct types at run
// time, from their reflect metadata. It is the fallback used when no explicit
// descriptor has been registered for a type.
//
// Supported wrapped types are structs and pointers to structs. Members are the
// exported fields, addressed by their Go name. The struct tag `immutable:"key"` renames
// a field in serialized form and `immutable:"-"` leaves it out.
//
// Values passed to an accessor, written to a sink or read from a source are deep
// copied, so the wrapped instance never shares memory with them.
package reflective

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/multierr"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/shared/helper"
)

// TagName is the struct tag consulted for serialized keys.
const TagName = "immutable"

var (
	// ErrUnsupportedType is returned for wrapped types that are not a struct or a
	// pointer to a struct.
	ErrUnsupportedType = errors.New("reflective: wrapped type must be a struct or pointer to struct")
	// ErrUnknownMember is returned when an accessor is requested for a member the type
	// does not declare.
	ErrUnknownMember = errors.New("reflective: unknown member")
	// ErrValueType is returned when an accessor is requested for a value type that can
	// not be stored into the field.
	ErrValueType = errors.New("reflective: value type not assignable to field")
)

var _ delegate.Builder[struct{}] = (*Builder[struct{}])(nil)

// Builder derives every operation of T from its struct layout.
type Builder[T any] struct {
	typ     reflect.Type
	structT reflect.Type
	pointer bool
	fields  []*field
	byName  map[string]*field
	byID    map[delegate.MemberID]*field
	err     error
}

type field struct {
	id    delegate.MemberID
	name  string
	key   string
	index int
	typ   reflect.Type
	skip  bool
}

// New inspects T and returns its builder.
// For unsupported types every Build method returns ErrUnsupportedType.
func New[T any]() *Builder[T] {
	b := &Builder[T]{
		typ:    reflect.TypeFor[T](),
		byName: make(map[string]*field),
		byID:   make(map[delegate.MemberID]*field),
	}
	st := b.typ
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
		b.pointer = true
	}
	if st.Kind() != reflect.Struct {
		b.err = fmt.Errorf("%w: %s", ErrUnsupportedType, b.typ)
		return b
	}
	b.structT = st

	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if !sf.IsExported() {
			continue
		}
		f := &field{
			id:    delegate.MemberOf(b.typ, sf.Name),
			name:  sf.Name,
			key:   sf.Name,
			index: i,
			typ:   sf.Type,
		}
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			key, _, _ := strings.Cut(tag, ",")
			switch key {
			case "-":
				f.skip = true
			case "":
			default:
				f.key = key
			}
		}
		b.fields = append(b.fields, f)
		b.byName[f.name] = f
		b.byID[f.id] = f
	}
	return b
}

// Err reports whether T is supported.
func (b *Builder[T]) Err() error { return b.err }

func (b *Builder[T]) ResolveMember(name string) (delegate.MemberID, bool) {
	f, ok := b.byName[name]
	if !ok {
		return 0, false
	}
	return f.id, true
}

func (b *Builder[T]) BuildCreation() (delegate.CreationOp[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.pointer {
		structT := b.structT
		return func() T {
			return reflect.New(structT).Interface().(T)
		}, nil
	}
	return func() T {
		var zero T
		return zero
	}, nil
}

func (b *Builder[T]) BuildClone() (delegate.CloneOp[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return func(inst T) T {
		return DeepCopy(inst)
	}, nil
}

func (b *Builder[T]) BuildAccessor(id delegate.MemberID, valueType reflect.Type) (delegate.AccessorOp[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	f, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownMember, id, b.typ)
	}
	if !helper.CanAssign(valueType, f.typ) {
		return nil, fmt.Errorf("%w: %s to %s.%s (%s)", ErrValueType, valueType, b.typ, f.name, f.typ)
	}
	index := f.index
	return func(inst T, raw any) T {
		target := b.structOf(&inst)
		if err := helper.Assign(target.Field(index), DeepCopy(raw)); err != nil {
			panic(err)
		}
		return inst
	}, nil
}

func (b *Builder[T]) BuildSerialize() (delegate.SerializeOp[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return func(inst T, sink delegate.Sink) error {
		sv := reflect.ValueOf(&inst).Elem()
		if b.pointer {
			if sv.IsNil() {
				return nil
			}
			sv = sv.Elem()
		}
		for _, f := range b.fields {
			if f.skip {
				continue
			}
			if err := sink.AddValue(f.key, CopyValue(sv.Field(f.index)).Interface()); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func (b *Builder[T]) BuildDeserialize() (delegate.DeserializeOp[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return func(inst T, src delegate.Source) (T, error) {
		target := b.structOf(&inst)
		var errs error
		for _, f := range b.fields {
			if f.skip {
				continue
			}
			ptr := reflect.New(f.typ)
			found, err := src.Decode(f.key, ptr.Interface())
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if found {
				target.Field(f.index).Set(CopyValue(ptr.Elem()))
			}
		}
		return inst, errs
	}, nil
}

// structOf returns the settable struct behind inst, allocating it for nil pointers.
func (b *Builder[T]) structOf(inst *T) reflect.Value {
	rv := reflect.ValueOf(inst).Elem()
	if !b.pointer {
		return rv
	}
	if rv.IsNil() {
		rv.Set(reflect.New(b.structT))
	}
	return rv.Elem()
}
