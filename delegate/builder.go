package delegate

import "reflect"

//go:generate mockgen -typed=false -source=builder.go -destination=builder_mock.go -package=delegate

// Builder synthesises the generated operations of a wrapped type T.
//
// Every method must be a pure function of its inputs: building the same operation
// twice yields behaviourally identical results. Callers cache the output and may
// call a Build method more than once under contention.
type Builder[T any] interface {
	// ResolveMember maps a declared member name to its identity.
	// ok is false when T declares no such member.
	ResolveMember(name string) (member MemberID, ok bool)

	BuildCreation() (CreationOp[T], error)
	BuildClone() (CloneOp[T], error)
	// BuildAccessor returns an operation that sets member to a value whose
	// dynamic type is valueType.
	BuildAccessor(member MemberID, valueType reflect.Type) (AccessorOp[T], error)
	BuildSerialize() (SerializeOp[T], error)
	BuildDeserialize() (DeserializeOp[T], error)
}
