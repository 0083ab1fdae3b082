package cwa

// CourseScore is the suggested score for one course.
type CourseScore struct {
	Name   string   `json:"name"`
	Credit float64  `json:"credit"`
	Score  *float64 `json:"score"` // nil when no valid suggestion exists.
}

// SolveResult is the outcome of one Planner.Solve call: one CourseScore
// per submitted course, in submission order, plus an overall Status.
//
// Scores carry values rounded to 2 decimal places for presentation; the
// precise optimal objective is retained in MinTotalPoints so that
// presentation rounding never understates feasibility. When Status is not
// StatusOptimal every Score is nil and the derived fields are zero.
type SolveResult struct {
	Status           Status        `json:"status"`
	Scores           []CourseScore `json:"scores"`
	RequiredPoints   float64       `json:"required_points"`   // weighted points the new courses must contribute
	MinTotalPoints   float64       `json:"min_total_points"`  // optimal objective, unrounded
	ProjectedAverage float64       `json:"projected_average"` // cumulative average at the optimum
}
