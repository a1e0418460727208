package delegate_test

import (
	"bytes"
	"reflect"
	"sync"
	"testing"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type other struct {
	Name string
}

func TestRegistry_CacheForIsIdentityStable(t *testing.T) {
	reg := delegate.NewRegistry()

	c1 := delegate.CacheFor[point](reg)
	c2 := delegate.CacheFor[point](reg)

	assert.Same(t, c1, c2)
	assert.Equal(t, c1.ID(), c2.ID())
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_CachesArePerType(t *testing.T) {
	reg := delegate.NewRegistry()

	cp := delegate.CacheFor[point](reg)
	cpp := delegate.CacheFor[*point](reg)
	co := delegate.CacheFor[other](reg)

	assert.NotEqual(t, cp.ID(), cpp.ID())
	assert.NotEqual(t, cp.ID(), co.ID())
	assert.Equal(t, 3, reg.Count())
}

func TestRegistry_SeparateRegistriesDoNotShare(t *testing.T) {
	a := delegate.NewRegistry()
	b := delegate.NewRegistry()

	assert.NotSame(t, delegate.CacheFor[point](a), delegate.CacheFor[point](b))
}

func TestRegistry_ConcurrentCacheFor(t *testing.T) {
	reg := delegate.NewRegistry()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		caches = make(map[*delegate.Cache[point]]struct{})
	)
	numGoroutines := 100
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			c := delegate.CacheFor[point](reg)
			mu.Lock()
			caches[c] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, caches, 1)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_DefaultIsStable(t *testing.T) {
	assert.Same(t, delegate.Default(), delegate.Default())
	assert.Same(t, delegate.CacheFor[point](delegate.Default()), delegate.CacheFor[point](delegate.Default()))
}

func TestRegistry_SetDefault(t *testing.T) {
	fresh := delegate.NewRegistry()
	prev := delegate.SetDefault(fresh)
	defer delegate.SetDefault(prev)

	assert.Same(t, fresh, delegate.Default())
	assert.Same(t, fresh, delegate.SetDefault(nil))
}

func TestRegistry_RegisterBuilder(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := delegate.NewRegistry()

	_, ok := delegate.BuilderFor[point](reg)
	assert.False(t, ok)

	b := delegate.NewMockBuilder[point](ctrl)
	require.NoError(t, delegate.Register[point](reg, b))

	got, ok := delegate.BuilderFor[point](reg)
	require.True(t, ok)
	assert.Same(t, b, got)

	assert.ErrorIs(t, delegate.Register[point](reg, delegate.NewMockBuilder[point](ctrl)), delegate.ErrAlreadyRegistered)
	assert.ErrorIs(t, delegate.Register[other](reg, nil), delegate.ErrNilBuilder)
}

func TestRegistry_BuilderOrStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := delegate.NewRegistry()

	first := delegate.NewMockBuilder[point](ctrl)
	second := delegate.NewMockBuilder[point](ctrl)

	assert.Same(t, first, delegate.BuilderOrStore[point](reg, first))
	assert.Same(t, first, delegate.BuilderOrStore[point](reg, second))
	assert.Same(t, first, delegate.BuilderOrStore[point](reg, nil))
	assert.Nil(t, delegate.BuilderOrStore[other](reg, nil))
}

func TestRegistry_LogsCacheCreation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := delegate.NewRegistry(delegate.WithLogger(zap.New(core)))

	delegate.CacheFor[point](reg)
	delegate.CacheFor[point](reg)

	entries := logs.FilterMessage("created delegate cache").All()
	require.Len(t, entries, 1)
	assert.Equal(t, reflect.TypeFor[point]().String(), entries[0].ContextMap()["type"])
}

func TestRegistry_EntriesAndTable(t *testing.T) {
	reg := delegate.NewRegistry()
	cp := delegate.CacheFor[point](reg)
	cp.StoreClone(func(p point) point { return p })
	cp.StoreAccessor(memberX, intType, setX)
	delegate.CacheFor[other](reg)

	entries := reg.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, reflect.TypeFor[other](), entries[0].Type)
	assert.Equal(t, reflect.TypeFor[point](), entries[1].Type)
	assert.True(t, entries[1].Clone)
	assert.Equal(t, 1, entries[1].Accessors)

	var buf bytes.Buffer
	require.NoError(t, reg.WriteTable(&buf))
	out := buf.String()
	assert.Contains(t, out, "delegate_test.point")
	assert.Contains(t, out, "delegate_test.other")
	assert.Contains(t, out, cp.ID().String())
}

func TestRegistry_DefaultsAreNeverNil(t *testing.T) {
	reg := delegate.NewRegistry(delegate.WithLogger(nil), delegate.WithObserver(nil))

	assert.NotNil(t, reg.Logger())
	assert.NotNil(t, reg.Observer())
	reg.Observer().ObserveLookup(delegate.KindClone, true)
	reg.Observer().ObserveBuild(delegate.BuildEvent{Kind: delegate.KindClone})
}
