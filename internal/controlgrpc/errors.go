package controlgrpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

// ErrorKind classifies control failures seen by clients.
type ErrorKind string

const (
	// ErrorUnknown is an uncategorized failure.
	ErrorUnknown ErrorKind = "unknown"
	// ErrorNotFound indicates the referenced tag, output or window does not exist.
	ErrorNotFound ErrorKind = "not_found"
	// ErrorInvalidArgument indicates a malformed request.
	ErrorInvalidArgument ErrorKind = "invalid_argument"
	// ErrorAlreadyExists indicates a duplicate registration.
	ErrorAlreadyExists ErrorKind = "already_exists"
	// ErrorUnavailable indicates the server is unreachable or shutting down.
	ErrorUnavailable ErrorKind = "unavailable"
	// ErrorTimeout indicates the request timed out.
	ErrorTimeout ErrorKind = "timeout"
	// ErrorCanceled indicates the request was canceled.
	ErrorCanceled ErrorKind = "canceled"
)

// ControlError wraps control failures with a stable classification.
type ControlError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *ControlError) Error() string {
	if e == nil {
		return "control error"
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("control %s failed", e.Op)
}

func (e *ControlError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets callers branch on the schema sentinels.
func (e *ControlError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ErrorNotFound:
		return target == schema.ErrNotFound
	case ErrorInvalidArgument:
		return target == schema.ErrInvalidRequest
	case ErrorAlreadyExists:
		return target == schema.ErrOutputExists
	case ErrorUnavailable:
		return target == schema.ErrServiceClosed
	}
	return false
}

// toStatus maps core failures onto gRPC status codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, schema.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, schema.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, schema.ErrOutputExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, schema.ErrServiceClosed), errors.Is(err, schema.ErrSessionClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func wrapControlError(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *ControlError
	if errors.As(err, &existing) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return &ControlError{Kind: ErrorCanceled, Op: op, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ControlError{Kind: ErrorTimeout, Op: op, Err: err}
	}
	st, ok := status.FromError(err)
	if !ok {
		return &ControlError{Kind: ErrorUnknown, Op: op, Err: err}
	}
	kind := ErrorUnknown
	switch st.Code() {
	case codes.NotFound:
		kind = ErrorNotFound
	case codes.InvalidArgument:
		kind = ErrorInvalidArgument
	case codes.AlreadyExists:
		kind = ErrorAlreadyExists
	case codes.Unavailable:
		kind = ErrorUnavailable
	case codes.DeadlineExceeded:
		kind = ErrorTimeout
	case codes.Canceled:
		kind = ErrorCanceled
	}
	return &ControlError{Kind: kind, Op: op, Message: st.Message(), Err: err}
}

func logGRPCError(log pslog.Logger, msg string, err error) {
	if log == nil || err == nil {
		return
	}
	if st, ok := status.FromError(err); ok {
		log.Warn(msg, "err", err, "code", st.Code().String(), "message", st.Message())
		return
	}
	log.Warn(msg, "err", err)
}
