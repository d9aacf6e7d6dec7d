package hazard

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/quakemetrics/hazcalc/pkg/mfd"
)

// MagnitudeBin holds everything the hazard integral needs from one slice of
// the magnitude axis: the source's rate of producing earthquakes in the bin,
// the conditional mean magnitude within it, and the GMM prediction at that
// magnitude.
type MagnitudeBin struct {
	Center      float64
	HalfWidth   float64
	Rate        float64 // annual rate of earthquakes in the bin
	ExpectedMag float64 // conditional mean magnitude within the bin

	// Lognormal IM distribution predicted at (ExpectedMag, site distance).
	MeanLnIM float64
	StdLnIM  float64
}

// DiscretizeMagnitudes slices the distribution's support into bins of width
// dm and computes each bin's occurrence rate and conditional mean magnitude.
// The bin rates sum to the distribution's annual rate up to discretization
// error, which callers can verify directly.
func DiscretizeMagnitudes(d mfd.Distribution, dm float64) ([]MagnitudeBin, error) {
	if dm <= 0 {
		return nil, &mfd.InvalidParameterError{Param: "delta_m", Value: dm, Constraint: "delta_m > 0"}
	}

	span := d.MMax() - d.MMin()
	n := int(math.Round(span / dm))
	if n < 1 {
		n = 1
	}

	bins := make([]MagnitudeBin, n)
	for i := range bins {
		center := d.MMin() + (float64(i)+0.5)*dm
		lo, hi := center-dm/2, center+dm/2

		em, err := mfd.ExpectedMagnitude(d, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("magnitude bin %d [%g, %g]: %w", i, lo, hi, err)
		}

		bins[i] = MagnitudeBin{
			Center:      center,
			HalfWidth:   dm / 2,
			Rate:        mfd.RateOfOccurrence(d, lo, hi),
			ExpectedMag: em,
		}
	}
	return bins, nil
}

// EpsilonBin is one interval of the standardized residual
// ε = (ln im - μ_lnIM)/σ_lnIM. Outer bins are open-ended (±Inf bounds).
type EpsilonBin struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// jsonEpsilonBin mirrors EpsilonBin with nullable bounds: JSON has no
// representation for infinite floats, so an open end is encoded as null.
type jsonEpsilonBin struct {
	Lo *float64 `json:"lo"`
	Hi *float64 `json:"hi"`
}

func (b EpsilonBin) MarshalJSON() ([]byte, error) {
	var j jsonEpsilonBin
	if !math.IsInf(b.Lo, 0) {
		lo := b.Lo
		j.Lo = &lo
	}
	if !math.IsInf(b.Hi, 0) {
		hi := b.Hi
		j.Hi = &hi
	}
	return json.Marshal(j)
}

func (b *EpsilonBin) UnmarshalJSON(data []byte) error {
	var j jsonEpsilonBin
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	b.Lo = math.Inf(-1)
	if j.Lo != nil {
		b.Lo = *j.Lo
	}
	b.Hi = math.Inf(1)
	if j.Hi != nil {
		b.Hi = *j.Hi
	}
	return nil
}

// EpsilonBins builds a fixed-width discretization of the epsilon axis with
// interior edges from min to max and open outermost bins (-Inf, min] and
// (max, +Inf).
func EpsilonBins(min, max, width float64) ([]EpsilonBin, error) {
	if width <= 0 {
		return nil, &mfd.InvalidParameterError{Param: "epsilon_width", Value: width, Constraint: "epsilon_width > 0"}
	}
	if min >= max {
		return nil, &mfd.InvalidParameterError{Param: "epsilon_min", Value: min, Constraint: "epsilon_min < epsilon_max"}
	}

	n := int(math.Round((max - min) / width))
	if n < 1 {
		n = 1
	}

	bins := make([]EpsilonBin, 0, n+2)
	bins = append(bins, EpsilonBin{Lo: math.Inf(-1), Hi: min})
	for i := 0; i < n; i++ {
		bins = append(bins, EpsilonBin{Lo: min + float64(i)*width, Hi: min + float64(i+1)*width})
	}
	bins = append(bins, EpsilonBin{Lo: max, Hi: math.Inf(1)})
	return bins, nil
}
