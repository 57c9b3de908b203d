package events

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bmamadou/wacloud/webhook"
)

// Emitter delivers one event to whoever is listening. Implementations decide
// whether publishing is synchronous, queued or deferred, and own all handler
// ordering and cancellation concerns.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(ctx context.Context, event Event) error

// Emit calls the wrapped function.
func (f EmitterFunc) Emit(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Dispatch classifies a normalized webhook and publishes every resulting
// event in order. Publishing continues past emitter failures; the first
// failure is returned once all events have been offered.
func Dispatch(ctx context.Context, wh *webhook.Normalized, emitter Emitter) error {
	var firstErr error

	for _, event := range Classify(wh) {
		if err := emitter.Emit(ctx, event); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("emit %T: %w", event, err)
		}
	}

	return firstErr
}

// LogEmitter is a synchronous Emitter that writes every event to a zap
// logger. Useful as a default sink and for wiring smoke tests.
type LogEmitter struct {
	logger *zap.Logger
}

// NewLogEmitter builds a LogEmitter around the provided logger.
func NewLogEmitter(logger *zap.Logger) *LogEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEmitter{logger: logger}
}

// Emit logs the event type and payload.
func (e *LogEmitter) Emit(_ context.Context, event Event) error {
	e.logger.Info("webhook event",
		zap.String("type", fmt.Sprintf("%T", event)),
		zap.Any("event", event))
	return nil
}
