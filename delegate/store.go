package delegate

import "reflect"

// Store is the capability set the immutable wrapper programs against.
// *Cache[T] is the default implementation; tests and alternative caches can supply
// their own.
//
// Load methods return nil when nothing has been stored yet. Store methods ignore nil
// operations, so a slot never goes back to empty once filled.
type Store[T any] interface {
	LoadAccessor(member MemberID, valueType reflect.Type) AccessorOp[T]
	StoreAccessor(member MemberID, valueType reflect.Type, op AccessorOp[T])

	LoadCreation() CreationOp[T]
	StoreCreation(op CreationOp[T])

	LoadClone() CloneOp[T]
	StoreClone(op CloneOp[T])

	LoadSerialize() SerializeOp[T]
	StoreSerialize(op SerializeOp[T])

	LoadDeserialize() DeserializeOp[T]
	StoreDeserialize(op DeserializeOp[T])
}
