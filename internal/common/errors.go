// Package common defines sentinel errors and small helpers shared by the
// diary core and the terminal client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Validation errors.
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrInvalidDate   = errors.New("invalid date")

	// Authentication errors.
	ErrAccessDenied = errors.New("incorrect password")

	// Storage errors. Failed reads of diary entries are not errors; only
	// writes and credential creation report ErrIO.
	ErrIO = errors.New("i/o error")
)
