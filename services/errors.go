package services

import (
	"errors"
)

// Rejections surfaced to the operator. None of them leave any state behind;
// callers match with errors.Is.
var (
	// ErrInvalidCode is returned when a supplied code matches no employee.
	ErrInvalidCode = errors.New("no employee matches the supplied code")

	// ErrAlreadyLoggedToday is returned when the employee already has a
	// claim for the current calendar day.
	ErrAlreadyLoggedToday = errors.New("meal already logged today")

	// ErrCodeTaken is returned when inserting an employee whose code is
	// already in use.
	ErrCodeTaken = errors.New("employee code already in use")

	// ErrCodeFormat is returned when inserting an employee whose code is
	// not exactly six characters.
	ErrCodeFormat = errors.New("employee code must be exactly 6 characters")

	// ErrUnknownAlternateEndpoint is returned when an alternate pairing
	// references a code that resolves to no employee.
	ErrUnknownAlternateEndpoint = errors.New("alternate pairing references an unknown employee")

	// ErrAlternateTaken is returned when either side of a new pairing is
	// already part of an existing one.
	ErrAlternateTaken = errors.New("employee already participates in an alternate pairing")
)
