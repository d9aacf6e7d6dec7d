package mfd

import "math"

// GutenbergRichter is the doubly-bounded exponential magnitude-frequency
// model. The classic Gutenberg-Richter recurrence law log10 N(m) = a - b·m
// is truncated at mMin and mMax and renormalized to a proper distribution.
type GutenbergRichter struct {
	mMin   float64
	mMax   float64
	bValue float64
	rate   float64

	beta float64 // b·ln(10)
	norm float64 // 1 - exp(-beta·(mMax-mMin))
}

// NewGutenbergRichter constructs a truncated Gutenberg-Richter distribution.
// rate is the annual rate of earthquakes with magnitude >= mMin.
func NewGutenbergRichter(mMin, mMax, bValue, rate float64) (*GutenbergRichter, error) {
	if mMin >= mMax {
		return nil, &InvalidParameterError{Param: "m_min", Value: mMin, Constraint: "m_min < m_max"}
	}
	if bValue <= 0 {
		return nil, &InvalidParameterError{Param: "b_value", Value: bValue, Constraint: "b_value > 0"}
	}
	if rate < 0 {
		return nil, &InvalidParameterError{Param: "rate", Value: rate, Constraint: "rate >= 0"}
	}

	beta := bValue * math.Ln10
	return &GutenbergRichter{
		mMin:   mMin,
		mMax:   mMax,
		bValue: bValue,
		rate:   rate,
		beta:   beta,
		norm:   1 - math.Exp(-beta*(mMax-mMin)),
	}, nil
}

func (g *GutenbergRichter) PDF(m float64) float64 {
	if m < g.mMin || m > g.mMax {
		return 0
	}
	return g.beta * math.Exp(-g.beta*(m-g.mMin)) / g.norm
}

func (g *GutenbergRichter) CDF(m float64) float64 {
	switch {
	case m < g.mMin:
		return 0
	case m > g.mMax:
		return 1
	}
	return (1 - math.Exp(-g.beta*(m-g.mMin))) / g.norm
}

func (g *GutenbergRichter) CCDF(m float64) float64 { return 1 - g.CDF(m) }

func (g *GutenbergRichter) MMin() float64       { return g.mMin }
func (g *GutenbergRichter) MMax() float64       { return g.mMax }
func (g *GutenbergRichter) AnnualRate() float64 { return g.rate }
