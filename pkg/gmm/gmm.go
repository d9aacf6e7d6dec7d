// Package gmm implements the Abrahamson & Silva (1997) empirical
// ground-motion model for shallow crustal earthquakes. Given a magnitude,
// a rupture distance and site/fault conditions it predicts the mean and
// standard deviation of the natural log of spectral acceleration at any
// period between 0.01s and 5s, interpolating between tabulated anchors.
package gmm

import (
	"math"
	"sort"
)

// FaultStyle selects the style-of-faulting term. The reverse term enters at
// full weight, reverse/oblique at half weight, strike-slip and normal not
// at all.
type FaultStyle int

const (
	StrikeSlip FaultStyle = iota
	ReverseOblique
	Reverse
)

// Tabulated period range. Requests outside it are clamped, not rejected.
const (
	MinPeriod = 0.01
	MaxPeriod = 5.0
)

// Prediction is the conditional lognormal distribution of the intensity
// measure: SA | (m, r, site) ~ LN(MeanLnSA, StdLnSA²).
type Prediction struct {
	MeanLnSA float64
	StdLnSA  float64

	// Period actually evaluated after clamping; Clamped reports whether
	// the requested period fell outside the tabulated range.
	Period  float64
	Clamped bool
}

// Median returns the median spectral acceleration in g.
func (p Prediction) Median() float64 { return math.Exp(p.MeanLnSA) }

// f1 is the base magnitude and distance scaling.
func f1(c *coefficients, m, r float64) float64 {
	lr := math.Log(math.Sqrt(r*r + c.c4*c.c4))
	if m <= c.c1 {
		return c.a1 + c.a2*(m-c.c1) + c.a12*math.Pow(8.5-m, c.n) + (c.a3+c.a13*(m-c.c1))*lr
	}
	return c.a1 + c.a4*(m-c.c1) + c.a12*math.Pow(8.5-m, c.n) + (c.a3+c.a13*(m-c.c1))*lr
}

// f3 is the style-of-faulting term: a5 below m=5.8, a6 above c1, linear
// between, weighted by the fault style.
func f3(c *coefficients, m float64, style FaultStyle) float64 {
	var v float64
	switch {
	case m <= 5.8:
		v = c.a5
	case m < c.c1:
		v = c.a5 + (c.a6-c.a5)*(m-5.8)/(c.c1-5.8)
	default:
		v = c.a6
	}
	return v * float64(style) / 2
}

// f4 is the hanging-wall term, the product of a magnitude ramp over
// [5.5, 6.5] and a piecewise-linear rupture-distance ramp over [4, 8, 18, 24] km.
func f4(c *coefficients, m, r float64, hangingWall bool) float64 {
	if !hangingWall {
		return 0
	}

	var fm float64
	switch {
	case m <= 5.5:
		return 0
	case m < 6.5:
		fm = m - 5.5
	default:
		fm = 1
	}

	var fr float64
	switch {
	case r <= 4:
		fr = 0
	case r < 8:
		fr = c.a9 * (r - 4) / 4
	case r <= 18:
		fr = c.a9
	case r < 24:
		fr = c.a9 * (1 - (r-18)/6)
	default:
		fr = 0
	}

	return fm * fr
}

// sigmaLn is the magnitude-dependent total standard deviation of ln(SA):
// constant below m=5, linearly decreasing to the floor at m=7.
func sigmaLn(c *coefficients, m float64) float64 {
	switch {
	case m < 5:
		return c.b5
	case m <= 7:
		return c.b5 - c.b6*(m-5)
	}
	return c.b5 - 2*c.b6
}

// RockPGA returns the median peak ground acceleration on rock in g. It is
// period-independent and drives the nonlinear soil-amplification term.
func RockPGA(m, r float64, style FaultStyle, hangingWall bool) float64 {
	c := &table[rockPGAIndex]
	return math.Exp(f1(c, m, r) + f3(c, m, style) + f4(c, m, r, hangingWall))
}

// base evaluates the model at tabulated row idx without interpolation.
// pgaRock is only read when soil is set.
func base(idx int, pgaRock, m, r float64, soil bool, style FaultStyle, hangingWall bool) (mean, std float64) {
	c := &table[idx]
	mean = f1(c, m, r) + f3(c, m, style) + f4(c, m, r, hangingWall)
	if soil {
		mean += c.a10 + c.a11*math.Log(pgaRock+c.c5)
	}
	return mean, sigmaLn(c, m)
}

// Evaluate predicts ln(SA) at an arbitrary spectral period. Periods at or
// below zero select PGA; other periods outside [MinPeriod, MaxPeriod] are
// clamped and flagged. Between anchors, mean and standard deviation are
// interpolated linearly in ln(period).
//
// Magnitude and distance are not checked against the model's calibration
// domain (roughly m 4.0-8.5, r up to ~300 km); staying inside it is the
// caller's responsibility.
func Evaluate(period, m, r float64, soil bool, style FaultStyle, hangingWall bool) Prediction {
	p := period
	clamped := false
	switch {
	case p <= 0:
		// Conventional PGA request.
		p = MinPeriod
	case p < MinPeriod:
		p = MinPeriod
		clamped = true
	case p > MaxPeriod:
		p = MaxPeriod
		clamped = true
	}

	var pgaRock float64
	if soil {
		pgaRock = RockPGA(m, r, style, hangingWall)
	}

	idx := sort.SearchFloat64s(anchorPeriods, p)
	if idx < len(anchorPeriods) && anchorPeriods[idx] == p {
		mean, std := base(idx+1, pgaRock, m, r, soil, style, hangingWall)
		return Prediction{MeanLnSA: mean, StdLnSA: std, Period: p, Clamped: clamped}
	}

	// p lies strictly between anchors idx-1 and idx; the clamp above
	// guarantees both exist.
	lo, hi := idx-1, idx
	meanLo, stdLo := base(lo+1, pgaRock, m, r, soil, style, hangingWall)
	meanHi, stdHi := base(hi+1, pgaRock, m, r, soil, style, hangingWall)

	t := (math.Log(p) - math.Log(anchorPeriods[lo])) /
		(math.Log(anchorPeriods[hi]) - math.Log(anchorPeriods[lo]))

	return Prediction{
		MeanLnSA: meanLo + t*(meanHi-meanLo),
		StdLnSA:  stdLo + t*(stdHi-stdLo),
		Period:   p,
		Clamped:  clamped,
	}
}
