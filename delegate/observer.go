package delegate

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// BuildEvent describes one invocation of a Builder method after a cache miss.
type BuildEvent struct {
	Type    reflect.Type
	Kind    Kind
	Member  string // set for accessor builds only
	CacheID uuid.UUID
	Span    timespan.TimeSpan
	Err     error
}

// Took is the wall time the build spent.
func (e BuildEvent) Took() time.Duration {
	return e.Span.Duration()
}

// Observer is notified about cache lookups and builds.
// Implementations must be safe for concurrent use and must not block.
type Observer interface {
	ObserveLookup(kind Kind, hit bool)
	ObserveBuild(event BuildEvent)
}

type nopObserver struct{}

func (nopObserver) ObserveLookup(Kind, bool) {}
func (nopObserver) ObserveBuild(BuildEvent)  {}

// NopObserver discards every observation.
func NopObserver() Observer { return nopObserver{} }

// SpanSince returns the time span from start until now.
func SpanSince(start time.Time) timespan.TimeSpan {
	return timespan.BetweenTimes(start, time.Now())
}
