package scoped

import "errors"

// ErrScopeMismatch is returned when a composition needs two Deep messages and
// gets something else.
var ErrScopeMismatch = errors.New("scope mismatch")
