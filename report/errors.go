package report

import "fmt"

// InternalError is an error that results from a malformed AST: a shape the
// parser should never produce.  It is distinct from a type error in the
// checked program and aborts checking.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "internal error: " + ie.Message
}

// Raise aborts the current check by panicking with an internal error.  The
// panic is recovered by CatchInternal.
func Raise(msg string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(msg, args...)})
}

// CatchInternal converts a panic raised by Raise into an error stored in err.
// Any other panic continues unwinding.
// NB: This function must ALWAYS be deferred.
func CatchInternal(err *error) {
	if x := recover(); x != nil {
		if ierr, ok := x.(*InternalError); ok {
			*err = ierr
		} else {
			panic(x)
		}
	}
}
