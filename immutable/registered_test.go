package immutable_test

import (
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/descriptor"
	"github.com/on-the-ground/immutable_ive_go/immutable"
	"github.com/on-the-ground/immutable_ive_go/info"
)

type order struct {
	id    string
	lines []string
}

func orderDescriptor(clones *atomic.Int64) *descriptor.Descriptor[order] {
	d := descriptor.New(
		func() order { return order{id: "new"} },
		func(o order) order {
			clones.Add(1)
			o.lines = slices.Clone(o.lines)
			return o
		},
	)
	descriptor.Field(d, "ID",
		func(o order) string { return o.id },
		func(o order, v string) order { o.id = v; return o })
	descriptor.Field(d, "Lines",
		func(o order) []string { return o.lines },
		func(o order, v []string) order { o.lines = v; return o })
	return d
}

func TestRegisteredDescriptor_IsPreferredOverReflection(t *testing.T) {
	var clones atomic.Int64
	reg := delegate.NewRegistry()
	descriptor.MustRegister(reg, orderDescriptor(&clones))

	w, err := immutable.New[order](immutable.WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, "new", immutable.Get(w, func(o order) string { return o.id }))

	w2, err := immutable.Modify(w, immutable.Member("Lines"), []string{"tea"})
	require.NoError(t, err)
	w3, err := immutable.Modify(w2, immutable.Member("ID"), "o-1")
	require.NoError(t, err)

	assert.EqualValues(t, 2, clones.Load())
	assert.Equal(t, "new", immutable.Get(w2, func(o order) string { return o.id }))
	assert.Equal(t, "o-1", immutable.Get(w3, func(o order) string { return o.id }))
	assert.Equal(t, []string{"tea"}, immutable.Get(w3, func(o order) []string { return o.lines }))

	// unexported fields are reachable only through declared members
	_, err = immutable.Modify(w, immutable.Member("id"), "x")
	assert.ErrorIs(t, err, immutable.ErrInvalidSelector)
}

func TestRegisteredDescriptor_SerializesDeclaredMembers(t *testing.T) {
	var clones atomic.Int64
	reg := delegate.NewRegistry()
	descriptor.MustRegister(reg, orderDescriptor(&clones))

	w, err := immutable.Create(order{id: "o-2", lines: []string{"milk"}}, immutable.WithRegistry(reg))
	require.NoError(t, err)

	sink := info.New()
	require.NoError(t, w.Serialize(sink))
	assert.Equal(t, []string{"ID", "Lines"}, sink.Names())

	got, err := immutable.Deserialize[order](sink, immutable.WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, "o-2", immutable.Get(got, func(o order) string { return o.id }))
	assert.Equal(t, []string{"milk"}, immutable.Get(got, func(o order) []string { return o.lines }))

	entry := delegate.CacheFor[order](reg).Entry()
	assert.True(t, entry.Serialize)
	assert.True(t, entry.Deserialize)
}

func TestRegisterAfterFallback_FailsAndIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := delegate.NewRegistry(delegate.WithLogger(zap.New(core)))

	_, err := immutable.New[person](immutable.WithRegistry(reg))
	require.NoError(t, err)
	_, err = immutable.New[person](immutable.WithRegistry(reg))
	require.NoError(t, err)

	warned := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warned, 1)
	assert.Contains(t, warned[0].Message, "reflective fallback")
	assert.Equal(t, "immutable_test.person", warned[0].ContextMap()["type"])

	var clones atomic.Int64
	err = descriptor.Register(delegate.NewRegistry(), orderDescriptor(&clones))
	require.NoError(t, err)

	_, err = immutable.New[order](immutable.WithRegistry(reg))
	require.NoError(t, err)
	assert.ErrorIs(t, descriptor.Register(reg, orderDescriptor(&clones)), delegate.ErrAlreadyRegistered)
}
