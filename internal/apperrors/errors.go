package apperrors

import "errors"

// ErrNotFound indicates a targeted write affected zero rows: the claim is
// either absent or not in a state eligible for the requested transition.
// The store does not distinguish the two causes, so neither do we.
var ErrNotFound = errors.New("resource not found or not in an eligible state")

// ErrValidation indicates that input data failed validation checks before
// reaching the persistence gateway.
var ErrValidation = errors.New("validation error")
