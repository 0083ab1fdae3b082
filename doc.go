// Package cwa computes the minimum per-course scores a student needs to
// reach a target cumulative weighted average (CWA).
//
// cwa provides a pure-Go Planner that formulates the grade-target problem
// as a bounded linear program: given the student's current average, their
// accumulated credit hours, a target average, and the credit weights of
// the upcoming semester's courses, it finds the smallest credit-weighted
// score total that achieves the target and distributes it across the
// courses, or reports that no assignment within [0, 100] can.
//
// Basic usage:
//
//	p, err := cwa.NewPlanner(cwa.PlannerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	courses, err := cwa.NewCourseSet([]cwa.Course{
//	    {Name: "Calculus II", Credit: 3},
//	    {Name: "Physics I", Credit: 3},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := p.Solve(
//	    cwa.AcademicState{CurrentAverage: 70, CurrentTotalCredits: 60},
//	    cwa.TargetGoal{TargetAverage: 72},
//	    courses,
//	)
//
// Only the minimal total in SolveResult.MinTotalPoints is unique; because
// the program merely bounds the weighted total from below, how that total
// is spread across courses is an artifact of the solver's method, and any
// one course's surplus could equally sit on another.
package cwa
