package engine

import (
	"fmt"
	"sort"

	"decarb_pathways/internal/models"
)

// evalCurve interpolates a tabulated performance curve at x. Queries outside
// the tabulated domain clamp to the nearest boundary point; there is no
// extrapolation, since extrapolated capacity or COP would invalidate sizing
// downstream. The clamped flag makes the boundary hit observable.
func evalCurve(c *models.Curve, x float64) (value float64, clamped bool) {
	xs, ys := sortedCurve(c)
	n := len(xs)

	if x <= xs[0] {
		return ys[0], x < xs[0]
	}
	if x >= xs[n-1] {
		return ys[n-1], x > xs[n-1]
	}

	// find the bracketing segment
	i := sort.SearchFloat64s(xs, x)
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	if x1 == x0 {
		return y0, false
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0), false
}

// sortedCurve returns the curve points ordered by X. Tables may arrive in
// any order; evaluation needs them ascending.
func sortedCurve(c *models.Curve) ([]float64, []float64) {
	n := len(c.X)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return c.X[idx[a]] < c.X[idx[b]] })

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, j := range idx {
		xs[i] = c.X[j]
		ys[i] = c.Y[j]
	}
	return xs, ys
}

// validateCurve checks a curve table is usable: non-empty, matched lengths,
// and strictly positive values when positive is required (COP, capacity).
func validateCurve(name string, c *models.Curve, requirePositive bool) error {
	if c == nil {
		return fmt.Errorf("%w: %s curve is required", ErrInvalidInput, name)
	}
	if len(c.X) == 0 || len(c.X) != len(c.Y) {
		return fmt.Errorf("%w: %s curve has %d x points and %d y points", ErrInvalidInput, name, len(c.X), len(c.Y))
	}
	if requirePositive {
		for i, y := range c.Y {
			if y <= 0 {
				return fmt.Errorf("%w: %s curve point %d is non-positive (%g)", ErrInvalidInput, name, i, y)
			}
		}
	}
	return nil
}
