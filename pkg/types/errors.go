package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a compute error code.
type ErrorCode string

// The closed error taxonomy. Every failure produced by the parser or the
// evaluator carries exactly one of these codes.
const (
	// S0xxx: input/syntax errors
	ErrEmptyExpression ErrorCode = "S0001" // input empty or all whitespace
	ErrInvalidNumber   ErrorCode = "S0102" // number literal outside the representable range
	ErrSyntaxError     ErrorCode = "S0201" // input does not conform to the grammar

	// D0xxx: evaluation errors
	ErrDivisionByZero ErrorCode = "D1001" // divisor evaluated to exactly zero
	ErrInvalidNode    ErrorCode = "D3001" // internally inconsistent AST; indicates a parser defect
)

// Error represents a structured compute error.
//
// Errors are values: nothing in the core panics or terminates the process.
// The Code field supports machine dispatch (retry logic, serialization of
// the error kind); Message, Position and Token carry the human-readable
// diagnostic context.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new compute error.
// Pass a negative position when no source location applies.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// Code returns the error code carried by err, or the empty string when err
// is not a compute *Error.
func Code(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsCode reports whether err is a compute error with the given code.
func IsCode(err error, code ErrorCode) bool {
	return Code(err) == code
}
