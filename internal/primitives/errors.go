package primitives

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// PreconditionViolated reports a broken call-order or input contract:
// inverting a singular transform, sweeping an unsorted cell store,
// adding scanline cells outside the declared row bounds. It aborts the
// current render; the pipeline is left in a reset-ready state.
type PreconditionViolated struct {
	Op     string
	Detail string
}

func (e *PreconditionViolated) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: precondition violated", e.Op)
	}
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Detail)
}

// Precondition builds a PreconditionViolated carrying a stack trace to
// its construction site.
func Precondition(op, detail string) error {
	return pkgerrors.WithStack(&PreconditionViolated{Op: op, Detail: detail})
}

// IsPrecondition reports whether err wraps a PreconditionViolated.
func IsPrecondition(err error) bool {
	var pv *PreconditionViolated
	return errors.As(err, &pv)
}
