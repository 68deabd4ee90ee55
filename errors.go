package calculator

import (
	"errors"
	"strconv"
)

var (
	// ErrNotConvertible is the error wrapped when an input cannot be coerced
	// to a Scalar or Complex.
	ErrNotConvertible = errors.New("calculator: value not convertible")
	// ErrSyntax is the error wrapped by every error describing malformed
	// expression text. All such errors also implement InputError.
	ErrSyntax = errors.New("calculator: syntax error")
	// ErrUnknownVariable is the error wrapped by NameError.
	ErrUnknownVariable = errors.New("calculator: unknown variable")
	// ErrDivisionByZero is returned when a divisor or reciprocal argument is
	// a concrete zero.
	ErrDivisionByZero = errors.New("calculator: division by zero")
	// ErrSymbolic is returned when a concrete number is requested from a
	// value that still holds symbolic text.
	ErrSymbolic = errors.New("calculator: symbolic value is not numeric")
)

// ConvertError describes an input that could not be coerced. It unwraps to
// ErrNotConvertible.
type ConvertError struct {
	// Type is the Go type of the rejected input.
	Type string
	// To is the name of the type the conversion targeted.
	To string
}

func (err *ConvertError) Error() string {
	return "cannot convert " + err.Type + " to " + err.To
}

func (err *ConvertError) Unwrap() error {
	return ErrNotConvertible
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context. It unwraps to ErrUnknownVariable.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

func (err *NameError) Unwrap() error {
	return ErrUnknownVariable
}

// EvalError is an error raised by an operator or function while evaluating
// an expression, e.g. a division by zero.
type EvalError struct {
	// Col is the position of the operator or function name.
	Col int
	// Op is the operator or function name.
	Op string
	// Err is the underlying error.
	Err error
}

func (err *EvalError) Error() string {
	return errpos(err.Col, err.Op+": "+err.Err.Error())
}

func (err *EvalError) Unwrap() error {
	return err.Err
}
