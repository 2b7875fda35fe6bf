// Package repository implements the transactional store access for every
// entity. Sentinel errors let the API layer distinguish failure classes
// without inspecting driver errors.
package repository

import "errors"

// Not-found family: a referenced row is absent. The API layer maps these
// to HTTP 404.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrCommentNotFound      = errors.New("comment not found")
)

// Conflict family: uniqueness or blocking-reference violations. The API
// layer maps these to HTTP 400.
var (
	ErrEmailTaken        = errors.New("email already in use")
	ErrCategoryNameTaken = errors.New("category name already in use")
	ErrAlreadyRegistered = errors.New("already registered for event")
	ErrCategoryInUse     = errors.New("category still referenced by events")
)

// ErrInvalidStatus rejects status values outside the event lifecycle enum.
var ErrInvalidStatus = errors.New("invalid event status")
