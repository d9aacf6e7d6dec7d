package gmm

import (
	"math"
	"testing"
)

func TestEvaluateMatchesBaseAtEveryAnchor(t *testing.T) {
	// Interpolation must short-circuit at tabulated periods: Evaluate at
	// an anchor equals the direct table-row evaluation.
	const (
		m    = 6.5
		r    = 12.0
		soil = true
	)
	pgaRock := RockPGA(m, r, Reverse, true)

	for idx := range table {
		p := table[idx].period
		got := Evaluate(p, m, r, soil, Reverse, true)

		// Period 0.0 conventionally resolves to the PGA row.
		wantIdx := idx
		if idx == 0 {
			wantIdx = rockPGAIndex
		}
		wantMean, wantStd := base(wantIdx, pgaRock, m, r, soil, Reverse, true)

		if math.Abs(got.MeanLnSA-wantMean) > 1e-12 {
			t.Errorf("anchor %g s: mean = %g, expected %g", p, got.MeanLnSA, wantMean)
		}
		if math.Abs(got.StdLnSA-wantStd) > 1e-12 {
			t.Errorf("anchor %g s: std = %g, expected %g", p, got.StdLnSA, wantStd)
		}
		if got.Clamped {
			t.Errorf("anchor %g s: unexpected clamp flag", p)
		}
	}
}

func TestEvaluateInterpolatesBetweenAnchors(t *testing.T) {
	// A period strictly between two anchors must land strictly between
	// the two anchor evaluations.
	const (
		pLo = 0.75
		pHi = 0.85
		p   = 0.80
	)
	lo := Evaluate(pLo, 7.0, 25.0, false, StrikeSlip, false)
	hi := Evaluate(pHi, 7.0, 25.0, false, StrikeSlip, false)
	mid := Evaluate(p, 7.0, 25.0, false, StrikeSlip, false)

	lower, upper := math.Min(lo.MeanLnSA, hi.MeanLnSA), math.Max(lo.MeanLnSA, hi.MeanLnSA)
	if mid.MeanLnSA <= lower || mid.MeanLnSA >= upper {
		t.Errorf("interpolated mean %g not between anchor means [%g, %g]", mid.MeanLnSA, lower, upper)
	}

	// Log-linear weights: verify against the closed form.
	w := (math.Log(p) - math.Log(pLo)) / (math.Log(pHi) - math.Log(pLo))
	wantMean := lo.MeanLnSA + w*(hi.MeanLnSA-lo.MeanLnSA)
	if math.Abs(mid.MeanLnSA-wantMean) > 1e-12 {
		t.Errorf("interpolated mean = %g, expected %g", mid.MeanLnSA, wantMean)
	}
	wantStd := lo.StdLnSA + w*(hi.StdLnSA-lo.StdLnSA)
	if math.Abs(mid.StdLnSA-wantStd) > 1e-12 {
		t.Errorf("interpolated std = %g, expected %g", mid.StdLnSA, wantStd)
	}
}

func TestPeriodClamping(t *testing.T) {
	tests := []struct {
		name        string
		period      float64
		wantPeriod  float64
		wantClamped bool
	}{
		{name: "pga convention", period: 0.0, wantPeriod: MinPeriod, wantClamped: false},
		{name: "below floor", period: 0.005, wantPeriod: MinPeriod, wantClamped: true},
		{name: "above cap", period: 7.5, wantPeriod: MaxPeriod, wantClamped: true},
		{name: "in range", period: 1.0, wantPeriod: 1.0, wantClamped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.period, 6.0, 10.0, false, StrikeSlip, false)
			if got.Period != tt.wantPeriod {
				t.Errorf("Period = %g, expected %g", got.Period, tt.wantPeriod)
			}
			if got.Clamped != tt.wantClamped {
				t.Errorf("Clamped = %v, expected %v", got.Clamped, tt.wantClamped)
			}
		})
	}
}

func TestMedianDecaysWithDistance(t *testing.T) {
	prev := math.Inf(1)
	for _, r := range []float64{1, 5, 10, 25, 50, 100, 200} {
		pred := Evaluate(0.0, 6.5, r, false, StrikeSlip, false)
		if pred.MeanLnSA >= prev {
			t.Errorf("mean ln SA did not decay: %g at r=%g km (previous %g)", pred.MeanLnSA, r, prev)
		}
		prev = pred.MeanLnSA
	}
}

func TestSigmaMagnitudeDependence(t *testing.T) {
	c := &table[rockPGAIndex]

	if got := sigmaLn(c, 4.5); got != c.b5 {
		t.Errorf("sigma below m=5: %g, expected %g", got, c.b5)
	}
	if got, want := sigmaLn(c, 6.0), c.b5-c.b6; math.Abs(got-want) > 1e-12 {
		t.Errorf("sigma at m=6: %g, expected %g", got, want)
	}
	floor := c.b5 - 2*c.b6
	if got := sigmaLn(c, 7.8); got != floor {
		t.Errorf("sigma above m=7: %g, expected floor %g", got, floor)
	}

	// Monotone non-increasing across the full range.
	prev := math.Inf(1)
	for m := 4.0; m <= 8.5; m += 0.25 {
		s := sigmaLn(c, m)
		if s > prev {
			t.Errorf("sigma increased at m=%g: %g > %g", m, s, prev)
		}
		prev = s
	}
}

func TestSoilAmplification(t *testing.T) {
	// At long periods on weak motions, soil amplifies relative to rock.
	rock := Evaluate(1.0, 6.0, 50.0, false, StrikeSlip, false)
	soil := Evaluate(1.0, 6.0, 50.0, true, StrikeSlip, false)
	if soil.MeanLnSA <= rock.MeanLnSA {
		t.Errorf("long-period soil mean %g not above rock mean %g", soil.MeanLnSA, rock.MeanLnSA)
	}
}

func TestHangingWallTerm(t *testing.T) {
	// The hanging-wall term is non-negative and vanishes outside its
	// magnitude and distance ramps.
	with := Evaluate(0.0, 7.0, 10.0, false, Reverse, true)
	without := Evaluate(0.0, 7.0, 10.0, false, Reverse, false)
	if with.MeanLnSA <= without.MeanLnSA {
		t.Errorf("hanging wall did not increase mean: %g <= %g", with.MeanLnSA, without.MeanLnSA)
	}

	for _, r := range []float64{2.0, 30.0} {
		w := Evaluate(0.0, 7.0, r, false, Reverse, true)
		wo := Evaluate(0.0, 7.0, r, false, Reverse, false)
		if w.MeanLnSA != wo.MeanLnSA {
			t.Errorf("hanging wall term nonzero at r=%g km", r)
		}
	}

	small := Evaluate(0.0, 5.2, 10.0, false, Reverse, true)
	smallNo := Evaluate(0.0, 5.2, 10.0, false, Reverse, false)
	if small.MeanLnSA != smallNo.MeanLnSA {
		t.Error("hanging wall term nonzero below the magnitude ramp")
	}
}

func TestFaultStyleOrdering(t *testing.T) {
	// Reverse > reverse/oblique > strike-slip at magnitudes where the
	// style term is positive.
	ss := Evaluate(0.0, 6.0, 10.0, false, StrikeSlip, false)
	ro := Evaluate(0.0, 6.0, 10.0, false, ReverseOblique, false)
	rv := Evaluate(0.0, 6.0, 10.0, false, Reverse, false)
	if !(rv.MeanLnSA > ro.MeanLnSA && ro.MeanLnSA > ss.MeanLnSA) {
		t.Errorf("fault style ordering violated: ss=%g ro=%g rv=%g", ss.MeanLnSA, ro.MeanLnSA, rv.MeanLnSA)
	}
}

func TestPeriodsTable(t *testing.T) {
	periods := Periods()
	if len(periods) != len(table) {
		t.Fatalf("Periods() returned %d anchors, expected %d", len(periods), len(table))
	}
	for i := 1; i < len(periods); i++ {
		if periods[i] <= periods[i-1] {
			t.Errorf("anchor periods not strictly increasing at index %d: %g <= %g", i, periods[i], periods[i-1])
		}
	}
	if periods[0] != 0.0 || periods[len(periods)-1] != MaxPeriod {
		t.Errorf("anchor endpoints = [%g, %g], expected [0, %g]", periods[0], periods[len(periods)-1], MaxPeriod)
	}
}
