// Package delegate holds the generated operations that give a wrapped type its
// immutable behaviour, and the caches that keep them.
//
// A generated operation is a pure function of (type, member, value type) metadata:
// building it twice from the same metadata yields equivalent behaviour. That is what
// lets the caches here run without locks. Two goroutines missing the same key may both
// build the operation, and whichever store lands last wins.
//
// Every closed type T has exactly one Cache[T] per Registry. The cache carries four
// scalar slots (creation, clone, serialize, deserialize) and a map of accessor
// operations keyed by (MemberID, value type). Slots only ever fill up: storing a nil
// operation is ignored and nothing is evicted.
//
// Operations are synthesised by a Builder[T], which is a collaborator of this package.
// See the descriptor and reflective packages for implementations.
//
// Example:
//
//	reg := delegate.NewRegistry(delegate.WithLogger(logger))
//	cache := delegate.CacheFor[Person](reg)
//	if op := cache.LoadClone(); op == nil {
//	    op, _ = builder.BuildClone()
//	    cache.StoreClone(op)
//	}
package delegate
