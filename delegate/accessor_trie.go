package delegate

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/immutable_ive_go/shared/helper"
)

// accessorTrie is a two level concurrent map: member identity first, value type second.
// Levels are created with LoadOrStore so racing writers never drop each other's branch.
type accessorTrie[T any] struct {
	root  sync.Map // MemberID -> *sync.Map (reflect.Type -> AccessorOp[T])
	count atomic.Int64
}

func (t *accessorTrie[T]) load(member MemberID, valueType reflect.Type) AccessorOp[T] {
	level, ok := helper.GetTypedValueOf2[*sync.Map](func() (any, bool) {
		return t.root.Load(member)
	})
	if !ok {
		return nil
	}
	op, _ := helper.GetTypedValueOf2[AccessorOp[T]](func() (any, bool) {
		return level.Load(valueType)
	})
	return op
}

func (t *accessorTrie[T]) store(member MemberID, valueType reflect.Type, op AccessorOp[T]) {
	if op == nil {
		return
	}
	level := t.traverse(member)
	if _, loaded := level.Swap(valueType, op); !loaded {
		t.count.Add(1)
	}
}

func (t *accessorTrie[T]) traverse(member MemberID) *sync.Map {
	if v, ok := t.root.Load(member); ok {
		return v.(*sync.Map)
	}
	v, _ := t.root.LoadOrStore(member, &sync.Map{})
	return v.(*sync.Map)
}

func (t *accessorTrie[T]) len() int {
	return int(t.count.Load())
}
