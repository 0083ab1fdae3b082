package cwa

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance used across the package.
// Range rules live in struct tags on Course, AcademicState and TargetGoal;
// failures are wrapped into the package sentinel errors so callers can
// branch with errors.Is.
var validate = validator.New()
