// Package errs declares error types used as exception causes.
package errs

import "fmt"

// BadValue encodes an error where the value does not meet a general
// requirement.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf(
		"bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}

// Undefined encodes an error where a name is not defined.
type Undefined struct {
	What string
	Name string
}

// Error implements the error interface.
func (e Undefined) Error() string {
	return fmt.Sprintf("undefined %v: %v", e.What, e.Name)
}
