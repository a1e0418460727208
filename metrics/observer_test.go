package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/immutable"
	"github.com/on-the-ground/immutable_ive_go/metrics"
)

type point struct {
	X, Y int
}

func TestObserver_CountsLookups(t *testing.T) {
	o, err := metrics.NewObserver("test", nil)
	require.NoError(t, err)

	o.ObserveLookup(delegate.KindAccessor, false)
	o.ObserveLookup(delegate.KindAccessor, true)
	o.ObserveLookup(delegate.KindAccessor, true)

	lookups := o.Collectors()[0].(*prometheus.CounterVec)
	assert.Equal(t, 2.0, testutil.ToFloat64(lookups.WithLabelValues("accessor", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("accessor", "miss")))
}

func TestObserver_CountsBuildOutcomes(t *testing.T) {
	o, err := metrics.NewObserver("test", nil)
	require.NoError(t, err)

	start := time.Now().Add(-time.Millisecond)
	o.ObserveBuild(delegate.BuildEvent{Kind: delegate.KindClone, Span: delegate.SpanSince(start)})
	o.ObserveBuild(delegate.BuildEvent{Kind: delegate.KindClone, Err: errors.New("boom")})

	builds := o.Collectors()[1].(*prometheus.CounterVec)
	assert.Equal(t, 1.0, testutil.ToFloat64(builds.WithLabelValues("clone", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(builds.WithLabelValues("clone", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(o.Collectors()[2], "test_build_duration_seconds"))
}

func TestNewObserver_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	_, err := metrics.NewObserver("immutable", reg)
	require.NoError(t, err)

	_, err = metrics.NewObserver("immutable", reg)
	assert.Error(t, err, "registering twice under one namespace must fail")
}

func TestObserver_WiredThroughRegistry(t *testing.T) {
	o, err := metrics.NewObserver("wired", nil)
	require.NoError(t, err)
	reg := delegate.NewRegistry(delegate.WithObserver(o))

	w, err := immutable.New[point](immutable.WithRegistry(reg))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		w, err = immutable.Modify(w, immutable.Member("X"), i)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, immutable.Get(w, func(p point) int { return p.X }))

	lookups := o.Collectors()[0].(*prometheus.CounterVec)
	builds := o.Collectors()[1].(*prometheus.CounterVec)
	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("accessor", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(lookups.WithLabelValues("accessor", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("clone", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(lookups.WithLabelValues("clone", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(builds.WithLabelValues("creation", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(builds.WithLabelValues("accessor", "ok")))
}
