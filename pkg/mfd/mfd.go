// Package mfd provides magnitude-frequency distribution models for a single
// seismic source: the doubly-bounded Gutenberg-Richter exponential model and
// the Youngs-Coppersmith characteristic-earthquake model. Both describe the
// relative frequency of earthquake magnitudes and carry the source's total
// annual rate of events at or above the minimum magnitude.
package mfd

import "math"

// Distribution is the capability set shared by all magnitude-frequency
// models. Implementations are immutable once constructed.
type Distribution interface {
	// PDF returns the probability density at magnitude m. Zero outside
	// the distribution's support.
	PDF(m float64) float64

	// CDF returns P(M <= m), clamped to 0 below the support and 1 above.
	CDF(m float64) float64

	// CCDF returns P(M > m), the complement of CDF.
	CCDF(m float64) float64

	// MMin and MMax bound the distribution's support.
	MMin() float64
	MMax() float64

	// AnnualRate is the source's total annual rate of earthquakes with
	// magnitude >= MMin.
	AnnualRate() float64
}

// RateOfExceedance returns the annual rate of earthquakes with magnitude
// greater than m.
func RateOfExceedance(d Distribution, m float64) float64 {
	return d.AnnualRate() * d.CCDF(m)
}

// RateOfNonexceedance returns the annual rate of earthquakes with magnitude
// at or below m.
func RateOfNonexceedance(d Distribution, m float64) float64 {
	return d.AnnualRate() * d.CDF(m)
}

// RateOfOccurrence returns the annual rate of earthquakes with magnitude in
// (lo, hi].
func RateOfOccurrence(d Distribution, lo, hi float64) float64 {
	return d.AnnualRate() * (d.CDF(hi) - d.CDF(lo))
}

// ExpectedMagnitude returns the conditional mean magnitude given that an
// earthquake's magnitude falls in [lo, hi]. The numerator integral is
// evaluated with a deterministic adaptive Simpson rule so results are
// reproducible across platforms. Returns a DegeneracyError when the interval
// carries no probability mass.
func ExpectedMagnitude(d Distribution, lo, hi float64) (float64, error) {
	denom := d.CDF(hi) - d.CDF(lo)
	if denom <= 0 {
		return 0, &DegeneracyError{Op: "expected magnitude", Lo: lo, Hi: hi}
	}

	// The density is zero outside the support, so integrating over the
	// clipped interval avoids wasting subdivisions on flat regions.
	a := math.Max(lo, d.MMin())
	b := math.Min(hi, d.MMax())

	num := integrate(func(m float64) float64 { return m * d.PDF(m) }, a, b)
	return num / denom, nil
}
