// Package hazard computes probabilistic seismic hazard for a single source:
// the annual rate at which a ground-motion intensity measure at a site
// exceeds given levels, and the decomposition of that rate by contributing
// magnitude and epsilon. It combines a magnitude-frequency distribution
// (pkg/mfd) with the Abrahamson & Silva ground-motion model (pkg/gmm) over
// a discretized magnitude axis.
package hazard

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quakemetrics/hazcalc/pkg/gmm"
	"github.com/quakemetrics/hazcalc/pkg/mfd"
)

// SiteConfig fixes the ground-motion model inputs that do not vary across
// magnitude bins: the spectral period of interest and the site/fault terms.
type SiteConfig struct {
	Period      float64 // spectral period in seconds; <= 0 means PGA
	Distance    float64 // rupture distance in km
	Soil        bool
	FaultStyle  gmm.FaultStyle
	HangingWall bool
}

// CurvePoint is one (IM level, annual exceedance rate) pair of a hazard
// curve.
type CurvePoint struct {
	IM   float64 `json:"im"`
	Rate float64 `json:"rate"`
}

// Engine precomputes the per-magnitude-bin quantities shared by hazard-curve
// aggregation and disaggregation: bin occurrence rates, conditional mean
// magnitudes, and the GMM prediction at each. An Engine is immutable after
// construction and safe for concurrent use.
type Engine struct {
	dist mfd.Distribution
	site SiteConfig
	bins []MagnitudeBin
	std  distuv.Normal

	// PeriodClamped reports whether the site period fell outside the
	// GMM's tabulated range and was clamped. Informational, never fatal.
	PeriodClamped bool
}

// New discretizes the distribution's magnitude range at width dm and
// evaluates the ground-motion model once per bin.
func New(dist mfd.Distribution, site SiteConfig, dm float64) (*Engine, error) {
	if site.Distance <= 0 {
		return nil, &mfd.InvalidParameterError{Param: "distance", Value: site.Distance, Constraint: "distance > 0"}
	}

	bins, err := DiscretizeMagnitudes(dist, dm)
	if err != nil {
		return nil, err
	}

	clamped := false
	for i := range bins {
		pred := gmm.Evaluate(site.Period, bins[i].ExpectedMag, site.Distance,
			site.Soil, site.FaultStyle, site.HangingWall)
		bins[i].MeanLnIM = pred.MeanLnSA
		bins[i].StdLnIM = pred.StdLnSA
		clamped = clamped || pred.Clamped
	}

	return &Engine{
		dist:          dist,
		site:          site,
		bins:          bins,
		std:           distuv.Normal{Mu: 0, Sigma: 1},
		PeriodClamped: clamped,
	}, nil
}

// Bins returns the magnitude discretization. The returned slice is shared;
// callers must not modify it.
func (e *Engine) Bins() []MagnitudeBin { return e.bins }

// Distribution returns the engine's magnitude-frequency model.
func (e *Engine) Distribution() mfd.Distribution { return e.dist }

// Site returns the fixed ground-motion model inputs.
func (e *Engine) Site() SiteConfig { return e.site }

// TotalRate is the sum of all bin occurrence rates. For a discretization
// covering the full magnitude range it equals the distribution's annual
// rate within discretization error.
func (e *Engine) TotalRate() float64 {
	rates := make([]float64, len(e.bins))
	for i, b := range e.bins {
		rates[i] = b.Rate
	}
	return floats.Sum(rates)
}

// Curve computes the annual exceedance rate at each IM level:
// λ(IM > im) = Σ_i λ_i · (1 - Φ((ln im - μ_i)/σ_i)). For increasing IM
// levels the returned rates are non-increasing.
func (e *Engine) Curve(imLevels []float64) ([]CurvePoint, error) {
	points := make([]CurvePoint, len(imLevels))
	contrib := make([]float64, len(e.bins))

	for k, im := range imLevels {
		if im <= 0 {
			return nil, fmt.Errorf("im level %d: %w", k,
				&mfd.InvalidParameterError{Param: "im", Value: im, Constraint: "im > 0"})
		}
		lnIM := math.Log(im)
		for i, b := range e.bins {
			eps := (lnIM - b.MeanLnIM) / b.StdLnIM
			contrib[i] = b.Rate * e.std.Survival(eps)
		}
		points[k] = CurvePoint{IM: im, Rate: floats.Sum(contrib)}
	}
	return points, nil
}

// ExceedanceRate is Curve for a single IM level.
func (e *Engine) ExceedanceRate(im float64) (float64, error) {
	pts, err := e.Curve([]float64{im})
	if err != nil {
		return 0, err
	}
	return pts[0].Rate, nil
}
