package cwa

import (
	"fmt"
	"math"
)

// Course is one course the student is about to take. Name identifies the
// course to the user (uniqueness is not required); Credit is its
// credit-hour weight.
type Course struct {
	Name   string  `json:"name" validate:"required"`
	Credit float64 `json:"credit" validate:"gt=0"`
}

// Validate checks that the course has a name and a positive credit weight.
// Returns an error wrapping ErrInvalidCourse otherwise.
func (c Course) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %q (credit %g): %v", ErrInvalidCourse, c.Name, c.Credit, err)
	}
	return nil
}

// CourseSet is the ordered batch of courses for the upcoming semester,
// submitted to the Planner in one call. Build it with NewCourseSet.
type CourseSet []Course

// NewCourseSet builds the submitted batch from raw form entries.
// Entries with empty names are dropped (unfinished rows the user never
// filled in); every remaining entry must pass Course.Validate.
func NewCourseSet(entries []Course) (CourseSet, error) {
	set := make(CourseSet, 0, len(entries))
	for _, c := range entries {
		if c.Name == "" {
			continue
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		set = append(set, c)
	}
	return set, nil
}

// TotalCredits returns the summed credit-hour weight of the set.
func (s CourseSet) TotalCredits() float64 {
	var total float64
	for _, c := range s {
		total += c.Credit
	}
	return total
}

// MaxPoints returns the largest credit-weighted score total the set can
// contribute, i.e. perfect scores in every course.
func (s CourseSet) MaxPoints() float64 {
	return 100 * s.TotalCredits()
}

// CheckExpectedCredits verifies that the set's summed credits match an
// independently entered total credit-hour figure. A mismatch is a
// user-input error to surface before solving; the Planner itself never
// performs this check. Returns an error wrapping ErrCreditMismatch.
func (s CourseSet) CheckExpectedCredits(expected float64) error {
	got := s.TotalCredits()
	// Exact match up to float summation noise.
	if math.Abs(got-expected) > 1e-9 {
		return fmt.Errorf("%w: expected %g, got %g", ErrCreditMismatch, expected, got)
	}
	return nil
}
