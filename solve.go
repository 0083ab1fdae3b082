package cwa

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solve computes the minimum per-course scores that lift the cumulative
// average to the goal. The input values are not mutated and the call has
// no side effects.
//
// The required weighted contribution of the new courses is
//
//	required = target * (priorCredits + newCredits) - average * priorCredits
//
// If required ≤ 0 (up to tolerance) the goal is already met and the
// all-zero assignment is returned as StatusOptimal. If even perfect scores
// fall short the result is StatusInfeasible. Otherwise a bounded linear
// program minimizes Σ credit_i·score_i subject to the required total and
// 0 ≤ score_i ≤ 100; solver failures surface as StatusNumericalIssue with
// every score nil.
//
// Validation failures (out-of-range state or target, invalid course,
// course count above the configured maximum) return a non-nil error and
// never reach the solver. Infeasibility and numerical trouble are Status
// values, not errors.
func (p *Planner) Solve(state AcademicState, goal TargetGoal, courses CourseSet) (SolveResult, error) {
	if err := state.Validate(); err != nil {
		return SolveResult{}, err
	}
	if err := goal.Validate(); err != nil {
		return SolveResult{}, err
	}
	if len(courses) > p.maxCourses {
		return SolveResult{}, fmt.Errorf("%w: %d courses, maximum %d",
			ErrTooManyCourses, len(courses), p.maxCourses)
	}
	for _, c := range courses {
		if err := c.Validate(); err != nil {
			return SolveResult{}, err
		}
	}

	prior := state.PriorPoints()
	totalAfter := state.CurrentTotalCredits + courses.TotalCredits()
	required := goal.TargetAverage*totalAfter - prior
	tol := p.tolerance * math.Max(1, math.Abs(required))

	res := SolveResult{RequiredPoints: required}

	// Goal already met by prior history alone.
	if required <= tol {
		res.Status = StatusOptimal
		res.Scores = uniformScores(courses, 0)
		res.ProjectedAverage = projectAverage(state, prior, 0, totalAfter)
		return res, nil
	}

	// Even perfect scores in every course cannot reach the target.
	// Covers the empty course set, which has zero capacity to add points.
	if courses.MaxPoints() < required-tol {
		res.Status = StatusInfeasible
		res.Scores = unavailableScores(courses)
		return res, nil
	}

	credits := make([]float64, len(courses))
	for i, c := range courses {
		credits[i] = c.Credit
	}

	scores, total, err := solveLP(credits, required)
	if err != nil {
		// The pre-checks above decide feasibility exactly, so a backend
		// infeasibility verdict here is unexpected; still report it as
		// such rather than as a generic numerical failure.
		res.Status = StatusNumericalIssue
		if errors.Is(err, lp.ErrInfeasible) {
			res.Status = StatusInfeasible
		}
		res.Scores = unavailableScores(courses)
		return res, nil
	}

	res.Status = StatusOptimal
	res.MinTotalPoints = total
	res.ProjectedAverage = projectAverage(state, prior, total, totalAfter)
	res.Scores = make([]CourseScore, len(courses))
	for i, c := range courses {
		s := round2(clampScore(scores[i]))
		res.Scores[i] = CourseScore{Name: c.Name, Credit: c.Credit, Score: &s}
	}
	return res, nil
}

// projectAverage returns the cumulative average after banking total new
// points on top of the prior points.
func projectAverage(state AcademicState, prior, total, totalAfter float64) float64 {
	if totalAfter == 0 {
		return state.CurrentAverage
	}
	return (prior + total) / totalAfter
}

// uniformScores builds a score list with the same value for every course.
func uniformScores(courses CourseSet, v float64) []CourseScore {
	out := make([]CourseScore, len(courses))
	for i, c := range courses {
		s := v
		out[i] = CourseScore{Name: c.Name, Credit: c.Credit, Score: &s}
	}
	return out
}

// unavailableScores builds a score list with every score marked nil.
func unavailableScores(courses CourseSet) []CourseScore {
	out := make([]CourseScore, len(courses))
	for i, c := range courses {
		out[i] = CourseScore{Name: c.Name, Credit: c.Credit}
	}
	return out
}

// round2 rounds half away from zero to 2 decimal places for presentation.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// clampScore snaps solver noise back into [0, 100].
func clampScore(x float64) float64 {
	return math.Min(math.Max(x, 0), 100)
}
