package domain

import "errors"

// ErrNotFound is returned by catalog, repo and service functions when the
// requested package, destination, activity or passenger does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. blank name, non-positive capacity, negative cost).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a resource with the same identity already
// exists, e.g. a second passenger registered under the same number.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrCapacityReached is the error form of OutcomeCapacityReached.
var ErrCapacityReached = errors.New("activity at capacity")

// ErrInsufficientBalance is the error form of OutcomeInsufficientBalance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrPackageFull is the error form of OutcomePackageFull.
var ErrPackageFull = errors.New("travel package full")
