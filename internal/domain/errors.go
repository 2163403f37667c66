package domain

import "errors"

// ErrNotFound is returned when a referenced entity (museum, favorite, tour,
// custom tour) does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule, e.g. a custom
// tour referencing an unknown museum id. Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when the supplied admin PIN does not match the
// configured secret. Handlers map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
