package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoEligibleMembers indicates a draw was attempted while every member has
// already received the pot.
var ErrNoEligibleMembers = errors.New("no eligible members for draw")

// ErrCycleCompleted indicates a draw was attempted on a cycle that already has
// a winner. A cycle has at most one winner ever.
var ErrCycleCompleted = errors.New("cycle already completed")

// ErrAdvisoryUnavailable indicates the external advice service could not be
// reached or is not configured. Callers degrade to a fallback message instead
// of propagating this as a hard failure.
var ErrAdvisoryUnavailable = errors.New("advisory service unavailable")
