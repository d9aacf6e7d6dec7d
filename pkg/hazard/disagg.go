package hazard

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quakemetrics/hazcalc/pkg/mfd"
)

// Matrix is a disaggregation of the hazard at one IM level into annual-rate
// contributions by (magnitude bin, epsilon bin). Summed over all cells it
// reproduces the hazard curve's exceedance rate at that level.
type Matrix struct {
	IM      float64
	MagBins []MagnitudeBin
	EpsBins []EpsilonBin

	// Rates[i][j] is the contribution of magnitude bin i and epsilon
	// bin j, in events per year.
	Rates [][]float64
}

// Disaggregate decomposes the exceedance rate at imStar across the given
// epsilon bins. For each magnitude bin, epsilon bins entirely above the
// threshold residual ε* contribute their full normal mass, the bin
// straddling ε* contributes the mass above it, and bins below contribute
// nothing.
func (e *Engine) Disaggregate(imStar float64, epsBins []EpsilonBin) (*Matrix, error) {
	if imStar <= 0 {
		return nil, &mfd.InvalidParameterError{Param: "im_star", Value: imStar, Constraint: "im_star > 0"}
	}
	if len(epsBins) == 0 {
		return nil, &mfd.InvalidParameterError{Param: "epsilon_bins", Value: 0, Constraint: "at least one epsilon bin"}
	}

	lnIM := math.Log(imStar)
	rates := make([][]float64, len(e.bins))

	for i, b := range e.bins {
		epsStar := (lnIM - b.MeanLnIM) / b.StdLnIM
		row := make([]float64, len(epsBins))
		for j, eb := range epsBins {
			switch {
			case eb.Lo >= epsStar:
				row[j] = b.Rate * (e.std.CDF(eb.Hi) - e.std.CDF(eb.Lo))
			case eb.Hi > epsStar:
				row[j] = b.Rate * (e.std.CDF(eb.Hi) - e.std.CDF(epsStar))
			default:
				row[j] = 0
			}
		}
		rates[i] = row
	}

	return &Matrix{IM: imStar, MagBins: e.bins, EpsBins: epsBins, Rates: rates}, nil
}

// Total is the summed rate over all cells, λ(IM > im).
func (m *Matrix) Total() float64 {
	rowSums := make([]float64, len(m.Rates))
	for i, row := range m.Rates {
		rowSums[i] = floats.Sum(row)
	}
	return floats.Sum(rowSums)
}

// MagnitudeMarginal returns each magnitude bin's fraction of the total
// hazard at the matrix's IM level. The fractions sum to 1. Fails when the
// total rate is zero, since there is no hazard to apportion.
func (m *Matrix) MagnitudeMarginal() ([]float64, error) {
	total := m.Total()
	if total <= 0 {
		return nil, fmt.Errorf("disaggregation at im=%g: %w", m.IM,
			&mfd.DegeneracyError{Op: "disaggregation normalization", Lo: m.IM, Hi: m.IM})
	}

	frac := make([]float64, len(m.Rates))
	for i, row := range m.Rates {
		frac[i] = floats.Sum(row) / total
	}
	return frac, nil
}

// EpsilonMarginal returns each epsilon bin's fraction of the total hazard.
func (m *Matrix) EpsilonMarginal() ([]float64, error) {
	total := m.Total()
	if total <= 0 {
		return nil, fmt.Errorf("disaggregation at im=%g: %w", m.IM,
			&mfd.DegeneracyError{Op: "disaggregation normalization", Lo: m.IM, Hi: m.IM})
	}

	frac := make([]float64, len(m.EpsBins))
	for j := range m.EpsBins {
		col := make([]float64, len(m.Rates))
		for i, row := range m.Rates {
			col[i] = row[j]
		}
		frac[j] = floats.Sum(col) / total
	}
	return frac, nil
}
