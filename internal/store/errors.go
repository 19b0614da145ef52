package store

import "errors"

var (
	// ErrNotFound is returned when an update, delete or toggle names an unknown id.
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyExists is returned when an add reuses a live id.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrUnknownAction is returned for an action outside the closed set.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidReference is returned when a payload points at a missing book, subject or lesson.
	ErrInvalidReference = errors.New("invalid reference")
)
