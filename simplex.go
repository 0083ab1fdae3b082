package cwa

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// solveLP minimizes credits·x subject to credits·x ≥ required and
// 0 ≤ x_i ≤ 100, and returns the per-course scores and the optimal
// objective value.
//
// The program is assembled directly in standard form (minimize cᵀx
// subject to Ax = b, x ≥ 0): one surplus variable t turns the points
// constraint into credits·x − t = required, and one slack variable u_i
// per course turns each cap into x_i + u_i = 100. Columns are laid out
// [x_1..x_n, t, u_1..u_n]. Caller guarantees required > 0 and n ≥ 1.
func solveLP(credits []float64, required float64) ([]float64, float64, error) {
	n := len(credits)
	rows := n + 1
	cols := 2*n + 1

	c := make([]float64, cols)
	copy(c, credits)

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	// credits·x − t = required
	for j, w := range credits {
		a.Set(0, j, w)
	}
	a.Set(0, n, -1)
	b[0] = required

	// x_i + u_i = 100
	for i := 0; i < n; i++ {
		a.Set(i+1, i, 1)
		a.Set(i+1, n+1+i, 1)
		b[i+1] = 100
	}

	// tol = 0 → gonum's default pivot tolerance.
	optF, optX, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, 0, err
	}
	return optX[:n], optF, nil
}
