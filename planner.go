package cwa

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// PlannerConfig configures a Planner.
// Zero values produce sensible defaults; see field comments.
type PlannerConfig struct {
	// Tolerance is the relative feasibility tolerance: a required points
	// total within Tolerance * max(1, |required|) of achievable counts as
	// met. Zero → 1e-6.
	Tolerance float64 `json:"tolerance" env:"CWA_TOLERANCE" envDefault:"1e-6"`

	// MaxCourses caps the number of courses accepted in one solve,
	// mirroring the course-row limit of the entry form. Zero → 64.
	MaxCourses int `json:"max_courses" env:"CWA_MAX_COURSES" envDefault:"64"`
}

// ConfigFromEnv builds a PlannerConfig from CWA_* environment variables,
// falling back to the documented defaults for unset variables.
func ConfigFromEnv() (PlannerConfig, error) {
	var cfg PlannerConfig
	if err := env.Parse(&cfg); err != nil {
		return PlannerConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Planner solves the grade-target feasibility problem.
//
// A Planner holds no mutable state: every Solve is a pure function of its
// inputs, so a single Planner is safe for concurrent use.
type Planner struct {
	tolerance  float64
	maxCourses int
}

// NewPlanner creates a Planner from the given config.
// Zero-value fields are filled with defaults; invalid values return an
// error wrapping ErrInvalidConfig.
func NewPlanner(cfg PlannerConfig) (*Planner, error) {
	tol := cfg.Tolerance
	if tol == 0 {
		tol = 1e-6
	}
	if tol < 0 {
		return nil, fmt.Errorf("%w: tolerance %g must be positive", ErrInvalidConfig, cfg.Tolerance)
	}

	maxCourses := cfg.MaxCourses
	if maxCourses == 0 {
		maxCourses = 64
	}
	if maxCourses < 0 {
		return nil, fmt.Errorf("%w: max courses %d must be positive", ErrInvalidConfig, cfg.MaxCourses)
	}

	return &Planner{
		tolerance:  tol,
		maxCourses: maxCourses,
	}, nil
}
