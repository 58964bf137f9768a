package diag

import (
	"fmt"
	"strings"

	"varcalc.dev/pkg/strutil"
)

// Error represents an error with context that can be showed.
type Error[T ErrorTag] struct {
	Message string
	Context Context

	// Indicates that the error may be caused by partial input. More formally,
	// this field should be true iff there exists a string x such that appending
	// x to the input eliminates the error.
	Partial bool
}

// ErrorTag is used to parameterize [Error] into different concrete types. The
// ErrorTag method is called on a zero receiver to get a string tag identifying
// the error type.
type ErrorTag interface {
	ErrorTag() string
}

func tag[T ErrorTag]() string {
	var t T
	return t.ErrorTag()
}

// Error returns a plain text representation of the error.
func (e *Error[T]) Error() string {
	return tag[T]() + ": " + e.errorNoTag()
}

func (e *Error[T]) errorNoTag() string {
	// TODO: Include line and column numbers instead of byte indices.
	return fmt.Sprintf("%d-%d in %s: %s",
		e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error[T]) Range() Ranging {
	return e.Context.Range()
}

// Variables controlling the style of the error message. Can be overridden in
// tests.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Show shows the error.
func (e *Error[T]) Show(indent string) string {
	header := fmt.Sprintf("%s: %s%s%s\n",
		strutil.Title(tag[T]()), messageStart, e.Message, messageEnd)
	return header + e.Context.ShowCompact(indent+"  ")
}

// PackErrors packs multiple instances of [Error] with the same tag into one
// error:
//
//   - If called with no errors, it returns nil.
//   - If called with one error, it returns that error itself.
//   - If called with more than one error, it returns an error that combines
//     all of them, and also implements [Shower].
func PackErrors[T ErrorTag](errs []*Error[T]) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return multiErrors[T](errs)
	}
}

// UnpackErrors returns the constituent [Error] instances in an error if it is
// built from one or more [Error] instances with the same tag. Otherwise it
// returns nil.
func UnpackErrors[T ErrorTag](err error) []*Error[T] {
	switch err := err.(type) {
	case *Error[T]:
		return []*Error[T]{err}
	case multiErrors[T]:
		return err
	default:
		return nil
	}
}

type multiErrors[T ErrorTag] []*Error[T]

func (es multiErrors[T]) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple " + tag[T]() + "s: ")
	for i, e := range es {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.errorNoTag())
	}
	return sb.String()
}

func (es multiErrors[T]) Show(indent string) string {
	var sb strings.Builder
	sb.WriteString("Multiple " + tag[T]() + "s:")
	for _, e := range es {
		sb.WriteString("\n" + indent + "  " + e.Show(indent+"  "))
	}
	return sb.String()
}

func (es multiErrors[T]) Range() Ranging {
	return MixedRanging(es[0], es[len(es)-1])
}
