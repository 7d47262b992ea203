package api

import "github.com/cockroachdb/errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
	ErrEncode      = errors.New("encode response failed")
)

// Wrap annotates err with the operation name.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}

// NewKind returns a kind error annotated with the operation name.
func NewKind(op string, kind error) error {
	return errors.Wrap(kind, op)
}

// WrapKind annotates err with op and marks it as kind so errors.Is(err, kind)
// holds while the message keeps the cause.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return errors.Mark(errors.Wrap(err, op), kind)
}
