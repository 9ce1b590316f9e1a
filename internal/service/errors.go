package service

import "errors"

// Validation errors are returned before anything is persisted.
var (
	ErrInvalidRating     = errors.New("self rating must be between 1 and 5")
	ErrInvalidConfidence = errors.New("confidence must be red, yellow, or green")
)
