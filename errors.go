package scope

import (
	"errors"
	"fmt"
)

// ErrNoRequest is returned by guarded RequestScope operations when the
// calling goroutine has no active request. Match it with errors.Is.
var ErrNoRequest = errors.New("no active request on calling goroutine")

// FactoryNotCallableError is returned by BindFactory when the supplied
// factory cannot be invoked with zero arguments to produce a value.
// Match it with errors.As.
type FactoryNotCallableError struct {
	// Factory is the rejected value as it was passed to BindFactory.
	Factory any

	// Reason says why the factory was rejected.
	Reason string
}

func (e *FactoryNotCallableError) Error() string {
	return fmt.Sprintf("factory %T is not callable: %s", e.Factory, e.Reason)
}
