package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Ownership misses map to the same error so existence is never leaked.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller lacking the required ability.
var ErrForbidden = errors.New("forbidden")

// ErrConversion indicates the exchange rate upstream failed or the target
// currency is absent from the rate table.
var ErrConversion = errors.New("conversion error")

// ErrJobExecution indicates a report pipeline failure, e.g. the owning user
// was deleted before the job ran.
var ErrJobExecution = errors.New("job execution error")
