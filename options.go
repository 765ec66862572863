// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package oneshot

import (
	"github.com/joeycumines/logiface"
)

// eventOptions holds configuration options for Event creation.
type eventOptions struct {
	logger       *logiface.Logger[logiface.Event]
	panicHandler func(recovered any)
}

// Option configures an Event instance.
type Option interface {
	applyEvent(*eventOptions)
}

// optionImpl implements Option.
type optionImpl struct {
	applyEventFunc func(*eventOptions)
}

func (o *optionImpl) applyEvent(opts *eventOptions) {
	o.applyEventFunc(opts)
}

// WithLogger attaches a structured logger to the event. It is used to
// report panics recovered from waiter resumption handles during
// [Event.Set]. A nil logger is accepted and leaves the stdlib log
// fallback in place. The logger must be able to build events (i.e. be
// configured with an event factory); if emitting a report fails, the
// report falls back to the stdlib log rather than being dropped.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *eventOptions) {
		opts.logger = logger
	}}
}

// WithPanicHandler registers a callback invoked with the value recovered
// from a panicking waiter resumption handle during [Event.Set]. When set,
// it takes precedence over the logger. The handler runs on the goroutine
// that called [Event.Set], mid-drain; a panic from the handler itself is
// swallowed so it cannot prevent later waiters from resuming.
func WithPanicHandler(handler func(recovered any)) Option {
	return &optionImpl{func(opts *eventOptions) {
		opts.panicHandler = handler
	}}
}

// resolveEventOptions applies Option instances to eventOptions.
func resolveEventOptions(opts []Option) *eventOptions {
	cfg := &eventOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		opt.applyEvent(cfg)
	}
	return cfg
}
