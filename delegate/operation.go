package delegate

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// CreationOp produces a fresh default instance of T.
type CreationOp[T any] func() T

// CloneOp produces a copy of T that shares no mutable state with its input.
type CloneOp[T any] func(T) T

// AccessorOp sets one member of the given instance and returns the instance.
// The value is type-erased; its dynamic type is the value type the operation was built for.
type AccessorOp[T any] func(T, any) T

// SerializeOp writes the members of an instance into a sink.
type SerializeOp[T any] func(T, Sink) error

// DeserializeOp populates an already constructed instance from a source.
type DeserializeOp[T any] func(T, Source) (T, error)

// Sink receives named member values during serialization.
type Sink interface {
	AddValue(name string, value any) error
}

// Source hands out named member values during deserialization.
// Decode stores the value called name into target, which must be a non-nil pointer.
// found is false when the source holds no such name.
type Source interface {
	Decode(name string, target any) (found bool, err error)
}

// MemberID names a declared member of a wrapped type, independently of its value type.
type MemberID uint64

// MemberOf returns the identity of the member called name on owner.
// The result is stable for the life of the program and across processes.
func MemberOf(owner reflect.Type, name string) MemberID {
	return MemberID(xxhash.Sum64String(typePath(owner) + "." + name))
}

func (m MemberID) String() string {
	return fmt.Sprintf("member:%016x", uint64(m))
}

func typePath(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "/" + t.String()
}

// Kind enumerates the generated operations.
type Kind int

const (
	KindCreation Kind = iota
	KindClone
	KindAccessor
	KindSerialize
	KindDeserialize
)

func (k Kind) String() string {
	switch k {
	case KindCreation:
		return "creation"
	case KindClone:
		return "clone"
	case KindAccessor:
		return "accessor"
	case KindSerialize:
		return "serialize"
	case KindDeserialize:
		return "deserialize"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}
