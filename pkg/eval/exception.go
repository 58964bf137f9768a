package eval

import (
	"bytes"
	"fmt"

	"varcalc.dev/pkg/diag"
)

// Exception represents a failed evaluation. It wraps the cause of the failure
// together with the source context of the node that caused it.
type Exception interface {
	error
	diag.Shower
	Reason() error
	Context() *diag.Context
	// This is not strictly necessary, but it makes sure that there is only one
	// implementation of Exception, so that the compiler may de-virtualize this
	// interface.
	isException()
}

// NewException creates a new Exception.
func NewException(reason error, ctx *diag.Context) Exception {
	return &exception{reason, ctx}
}

// Implementation of the Exception interface.
type exception struct {
	reason  error
	context *diag.Context
}

// Reason returns the Reason field if err is an Exception. Otherwise it returns
// err itself.
func Reason(err error) error {
	if exc, ok := err.(*exception); ok {
		return exc.reason
	}
	return err
}

func (exc *exception) isException() {}

func (exc *exception) Reason() error { return exc.reason }

func (exc *exception) Context() *diag.Context { return exc.context }

// Error returns the message of the cause of the exception.
func (exc *exception) Error() string { return exc.reason.Error() }

// Show shows the exception.
func (exc *exception) Show(indent string) string {
	buf := new(bytes.Buffer)

	var causeDescription string
	if shower, ok := exc.reason.(diag.Shower); ok {
		causeDescription = shower.Show(indent)
	} else if exc.reason == nil {
		causeDescription = "ok"
	} else {
		causeDescription = "\033[31;1m" + exc.reason.Error() + "\033[m"
	}
	fmt.Fprintf(buf, "Exception: %s", causeDescription)

	if exc.context != nil {
		buf.WriteString("\n" + exc.context.ShowCompact(indent))
	}

	return buf.String()
}
