package oneshot

import (
	"github.com/joeycumines/logiface"
)

// testEvent is a minimal logiface.Event implementation for testing the
// structured logging paths.
type testEvent struct {
	logiface.UnimplementedEvent
	level logiface.Level
}

func (e *testEvent) Level() logiface.Level        { return e.level }
func (e *testEvent) AddField(key string, val any) {}

// testEventFactory creates testEvent instances.
type testEventFactory struct{}

func (f *testEventFactory) NewEvent(level logiface.Level) *testEvent {
	return &testEvent{level: level}
}

// testEventWriter writes testEvent instances.
type testEventWriter struct {
	onWrite func(*testEvent) error
}

func (w *testEventWriter) Write(event *testEvent) error {
	if w.onWrite != nil {
		return w.onWrite(event)
	}
	return nil
}

// newTestLogger builds a fully-configured generic logger backed by
// testEvent, suitable for WithLogger. A logger needs an event factory to
// build events; without one its builders cannot emit anything.
func newTestLogger(onWrite func(*testEvent) error) *logiface.Logger[logiface.Event] {
	return logiface.New[*testEvent](
		logiface.WithEventFactory[*testEvent](&testEventFactory{}),
		logiface.WithWriter[*testEvent](&testEventWriter{onWrite: onWrite}),
	).Logger()
}
