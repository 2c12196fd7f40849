package errors

import (
	"fmt"

	"tlog.app/go/loc"
)

// ContractViolation is the panic value raised when an internal invariant
// is broken by the caller. It is never returned as a diagnostic.
type ContractViolation struct {
	Detail string
	Where  loc.PC
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation at %v: %s", e.Where, e.Detail)
}

// Contract panics with a *ContractViolation located at the caller.
func Contract(format string, args ...any) {
	panic(&ContractViolation{
		Detail: fmt.Sprintf(format, args...),
		Where:  loc.Caller(1),
	})
}

// Require panics with a *ContractViolation located at the caller if cond is false.
func Require(cond bool, format string, args ...any) {
	if cond {
		return
	}

	panic(&ContractViolation{
		Detail: fmt.Sprintf(format, args...),
		Where:  loc.Caller(1),
	})
}
