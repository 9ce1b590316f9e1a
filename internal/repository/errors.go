package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist. Callers
// check with errors.Is; repos wrap it with entity context.
var ErrNotFound = errors.New("not found")
