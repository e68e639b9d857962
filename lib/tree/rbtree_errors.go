package tree

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xrbtree/lib/infra"
)

var (
	ErrOutOfMemory         = errors.New("[rbtree] out of memory to allocate node")
	ErrIteratorAtEnd       = errors.New("[rbtree] iterator is at end")
	ErrIteratorInvalidated = errors.New("[rbtree] iterator refers to an erased node")
	ErrForeignIterator     = errors.New("[rbtree] iterator belongs to another tree")
	ErrInvalidRange        = errors.New("[rbtree] range end precedes range begin")
)

var (
	_ error                   = (*PreconditionError)(nil)
	_ fmt.Formatter           = (*PreconditionError)(nil)
	_ zapcore.ObjectMarshaler = (*PreconditionError)(nil)
)

// PreconditionError reports an iterator misuse, such as
// dereferencing End() or an erased position, together with
// the place it happened.
type PreconditionError struct {
	Op    string
	Err   error
	Frame infra.Frame
}

// newPreconditionError records the frame skip levels above
// the function that calls it. Inlining may shift the frame.
//
//go:noinline
func newPreconditionError(op string, err error, skip int) *PreconditionError {
	return &PreconditionError{
		Op:    op,
		Err:   err,
		Frame: infra.Caller(skip + 1),
	}
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Format
// %s, %v - "op: err"
// %+v - "op: err" followed by the caller frame.
func (e *PreconditionError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, e.Error())
		if s.Flag('+') {
			_, _ = io.WriteString(s, "\n")
			e.Frame.Format(s, 's')
			_, _ = io.WriteString(s, ":")
			e.Frame.Format(s, 'd')
		}
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *PreconditionError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("op", e.Op)
	enc.AddString("error", e.Err.Error())
	enc.AddString("at", fmt.Sprintf("%v", e.Frame))
	return nil
}
