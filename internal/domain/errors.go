package domain

import "errors"

var (
	// ErrNotFound is returned when the referenced activity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a required value is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyEnrolled is returned when the email is already on the roster.
	ErrAlreadyEnrolled = errors.New("already signed up")
	// ErrNotEnrolled is returned when withdrawing an email that is not on the roster.
	ErrNotEnrolled = errors.New("not signed up")
	// ErrCapacityExceeded is returned when the roster is already full.
	ErrCapacityExceeded = errors.New("activity is full")
)
