package action

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/adrianliechti/toolify/pkg/errdefs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateProcessing State = "processing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Observer is notified on every state transition of an operation.
type Observer func(operation string, from, to State)

type requestIDKey struct{}

// WithRequestID attaches a request id that operations use for logging.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type operation struct {
	name string
	id   string

	state State
	start time.Time

	span     trace.Span
	logger   *slog.Logger
	observer Observer
}

func (s *Service) begin(ctx context.Context, name string) (context.Context, *operation) {
	id := RequestID(ctx)

	if id == "" {
		id = uuid.NewString()
		ctx = WithRequestID(ctx, id)
	}

	ctx, span := s.tracer.Start(ctx, "action."+name, trace.WithAttributes(
		attribute.String("request.id", id),
	))

	op := &operation{
		name: name,
		id:   id,

		state: StateIdle,
		start: time.Now(),

		span:     span,
		logger:   s.logger.With("action", name, "request_id", id),
		observer: s.observer,
	}

	op.transition(StateValidating)

	return ctx, op
}

func (o *operation) transition(to State) {
	from := o.state
	o.state = to

	if o.observer != nil {
		o.observer(o.name, from, to)
	}
}

func (o *operation) process() {
	o.transition(StateProcessing)
	o.logger.Debug("action.processing")
}

func (o *operation) succeed() {
	o.transition(StateSucceeded)

	o.span.SetStatus(codes.Ok, "")
	o.span.End()

	o.logger.Info("action.succeeded", "duration_ms", time.Since(o.start).Milliseconds())
}

// fail finishes the operation and returns the user facing message for err.
// Validation failures before processing are rejections.
func (o *operation) fail(err error) string {
	message := UserMessage(err)

	if o.state == StateValidating && (errors.Is(err, errdefs.ErrValidation) || errors.Is(err, errdefs.ErrDecode)) {
		o.transition(StateRejected)
		o.logger.Info("action.rejected", "reason", message, "error", err)
	} else {
		o.transition(StateFailed)
		o.logger.Error("action.failed", "error", err, "duration_ms", time.Since(o.start).Milliseconds())
	}

	o.span.RecordError(err)
	o.span.SetStatus(codes.Error, message)
	o.span.End()

	return message
}

func fail[T any](o *operation, err error) Result[T] {
	return Result[T]{
		message: o.fail(err),
		cause:   err,
	}
}

func succeed[T any](o *operation, data T) Result[T] {
	o.succeed()
	return Ok(data)
}
