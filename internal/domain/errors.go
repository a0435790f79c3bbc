package domain

import (
	"context"
	"errors"
	"fmt"
)

// Error classes. Service errors wrap exactly one of them and handlers map
// the class to a status code.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
	ErrTimeout    = errors.New("timed out, retry later")
)

// IsExpected reports whether err is a typed rejection rather than a failure.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrBadRequest)
}

// Classify returns typed rejections untouched and wraps anything else that
// aborted a unit of work as ErrTimeout or ErrInternal.
func Classify(ctx context.Context, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsExpected(err), errors.Is(err, ErrInternal), errors.Is(err, ErrTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
	}
}
