package cwa

import "fmt"

// AcademicState is the student's standing before the new semester.
type AcademicState struct {
	CurrentAverage      float64 `json:"current_average" validate:"gte=0,lte=100"` // cumulative average to date
	CurrentTotalCredits float64 `json:"current_total_credits" validate:"gte=0"`   // credit hours completed to date
}

// PriorPoints returns the cumulative credit-weighted score banked so far,
// CurrentAverage * CurrentTotalCredits. A non-zero average with zero prior
// credits is degenerate and yields 0 by construction.
func (s AcademicState) PriorPoints() float64 {
	return s.CurrentAverage * s.CurrentTotalCredits
}

// Validate checks that the average lies in [0, 100] and the credit total
// is non-negative. Returns an error wrapping ErrInvalidState otherwise.
func (s AcademicState) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: average %g, credits %g: %v",
			ErrInvalidState, s.CurrentAverage, s.CurrentTotalCredits, err)
	}
	return nil
}

// TargetGoal is the desired cumulative average after the new semester.
type TargetGoal struct {
	TargetAverage float64 `json:"target_average" validate:"gte=0,lte=100"`
}

// Validate checks that the target average lies in [0, 100].
// Returns an error wrapping ErrInvalidTarget otherwise.
func (g TargetGoal) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("%w: %g: %v", ErrInvalidTarget, g.TargetAverage, err)
	}
	return nil
}
