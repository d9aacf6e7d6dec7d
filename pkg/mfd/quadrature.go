package mfd

import "math"

// Fixed tolerance and depth cap keep the quadrature deterministic and
// reproducible across reimplementations.
const (
	quadTolerance = 1e-10
	quadMaxDepth  = 20
)

func simpson(f func(float64) float64, a, fa, b, fb float64) (float64, float64, float64) {
	m := (a + b) / 2
	fm := f(m)
	return m, fm, (b - a) / 6 * (fa + 4*fm + fb)
}

func adaptiveSimpson(f func(float64) float64, a, fa, b, fb, m, fm, whole, tol float64, depth int) float64 {
	lm, flm, left := simpson(f, a, fa, m, fm)
	rm, frm, right := simpson(f, m, fm, b, fb)
	delta := left + right - whole
	if depth <= 0 || 15*math.Abs(delta) <= tol {
		return left + right + delta/15
	}
	return adaptiveSimpson(f, a, fa, m, fm, lm, flm, left, tol/2, depth-1) +
		adaptiveSimpson(f, m, fm, b, fb, rm, frm, right, tol/2, depth-1)
}

// integrate evaluates the definite integral of f over [a, b] with an
// adaptive Simpson rule at absolute tolerance quadTolerance.
func integrate(f func(float64) float64, a, b float64) float64 {
	if b <= a {
		return 0
	}
	fa, fb := f(a), f(b)
	m, fm, whole := simpson(f, a, fa, b, fb)
	return adaptiveSimpson(f, a, fa, b, fb, m, fm, whole, quadTolerance, quadMaxDepth)
}
