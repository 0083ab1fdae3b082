package cwa

import "errors"

// Sentinel errors for the cwa package.
// Use errors.Is to check: errors.Is(err, cwa.ErrInvalidCourse)
var (
	ErrInvalidStatus  = errors.New("cwa: invalid status")
	ErrInvalidCourse  = errors.New("cwa: invalid course")
	ErrInvalidState   = errors.New("cwa: academic state out of range")
	ErrInvalidTarget  = errors.New("cwa: target average out of range")
	ErrInvalidConfig  = errors.New("cwa: invalid planner config")
	ErrCreditMismatch = errors.New("cwa: entered credits do not match expected total")
	ErrTooManyCourses = errors.New("cwa: course list exceeds configured maximum")
)
