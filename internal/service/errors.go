package service

import "errors"

// Validation errors surfaced to the user
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidEventWindow = errors.New("event timings are invalid")
	ErrInvalidTimeFormat  = errors.New("invalid time format")
	ErrInvalidYear        = errors.New("invalid graduation year")
)
