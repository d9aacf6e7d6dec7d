package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quakemetrics/hazcalc/pkg/mfd"
)

const validYAML = `
source:
  model: gutenberg-richter
  m_min: 5.0
  m_max: 8.0
  b_value: 1.0
  rate: 0.05
site:
  period: 0.0
  distance_km: 10
  fault_style: strike-slip
delta_m: 0.2
im_grid:
  min: 0.001
  max: 2.0
  count: 50
disaggregation:
  im: 0.2
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidScenario(t *testing.T) {
	s, err := Load(writeScenario(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dist, err := s.Distribution()
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	if dist.MMin() != 5.0 || dist.MMax() != 8.0 || dist.AnnualRate() != 0.05 {
		t.Errorf("distribution = [%g, %g] rate %g, expected [5, 8] rate 0.05",
			dist.MMin(), dist.MMax(), dist.AnnualRate())
	}

	levels := s.Levels()
	if len(levels) != 50 {
		t.Fatalf("level count = %d, expected 50", len(levels))
	}
	if levels[0] != 0.001 || levels[len(levels)-1] != 2.0 {
		t.Errorf("grid endpoints = [%g, %g], expected [0.001, 2]", levels[0], levels[len(levels)-1])
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("grid not increasing at %d", i)
		}
	}

	// Epsilon grid defaults applied.
	bins, err := s.EpsilonBins()
	if err != nil {
		t.Fatalf("EpsilonBins: %v", err)
	}
	if len(bins) != 8 {
		t.Errorf("default epsilon bin count = %d, expected 8", len(bins))
	}

	if s.DeltaM != 0.2 {
		t.Errorf("delta_m = %g, expected 0.2", s.DeltaM)
	}
}

func TestLoadYoungsCoppersmith(t *testing.T) {
	s, err := Load(writeScenario(t, `
source:
  model: youngs-coppersmith
  m_min: 5.0
  m_char: 7.0
  delta_m_char: 0.5
  p_char: 0.3
  b_value: 1.0
  rate: 0.02
site:
  period: 1.0
  distance_km: 25
  soil: true
  fault_style: reverse
  hanging_wall: true
im_levels: [0.01, 0.05, 0.1, 0.5]
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dist, err := s.Distribution()
	if err != nil {
		t.Fatal(err)
	}
	if dist.MMax() != 7.25 {
		t.Errorf("MMax = %g, expected 7.25", dist.MMax())
	}
	site, err := s.SiteConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !site.Soil || !site.HangingWall {
		t.Error("site flags not carried through")
	}
	if s.DeltaM != 0.1 {
		t.Errorf("default delta_m = %g, expected 0.1", s.DeltaM)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantParam bool // expect an InvalidParameterError
	}{
		{
			name: "inverted magnitude bounds",
			body: `
source: {model: gutenberg-richter, m_min: 8.0, m_max: 5.0, b_value: 1.0, rate: 0.05}
site: {period: 0, distance_km: 10}
im_levels: [0.1]
`,
			wantParam: true,
		},
		{
			name: "negative b value",
			body: `
source: {model: gutenberg-richter, m_min: 5.0, m_max: 8.0, b_value: -1.0, rate: 0.05}
site: {period: 0, distance_km: 10}
im_levels: [0.1]
`,
			wantParam: true,
		},
		{
			name: "p_char out of range",
			body: `
source: {model: youngs-coppersmith, m_min: 5.0, m_char: 7.0, delta_m_char: 0.5, p_char: 1.5, b_value: 1.0, rate: 0.02}
site: {period: 0, distance_km: 10}
im_levels: [0.1]
`,
			wantParam: true,
		},
		{
			name: "zero distance",
			body: `
source: {model: gutenberg-richter, m_min: 5.0, m_max: 8.0, b_value: 1.0, rate: 0.05}
site: {period: 0, distance_km: 0}
im_levels: [0.1]
`,
			wantParam: true,
		},
		{
			name: "unknown model",
			body: `
source: {model: bounded-pareto, m_min: 5.0, m_max: 8.0, b_value: 1.0, rate: 0.05}
site: {period: 0, distance_km: 10}
im_levels: [0.1]
`,
		},
		{
			name: "no im levels",
			body: `
source: {model: gutenberg-richter, m_min: 5.0, m_max: 8.0, b_value: 1.0, rate: 0.05}
site: {period: 0, distance_km: 10}
`,
		},
		{
			name: "non-increasing im levels",
			body: `
source: {model: gutenberg-richter, m_min: 5.0, m_max: 8.0, b_value: 1.0, rate: 0.05}
site: {period: 0, distance_km: 10}
im_levels: [0.1, 0.1]
`,
		},
		{
			name: "unknown fault style",
			body: `
source: {model: gutenberg-richter, m_min: 5.0, m_max: 8.0, b_value: 1.0, rate: 0.05}
site: {period: 0, distance_km: 10, fault_style: transform}
im_levels: [0.1]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tt.body))
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if tt.wantParam {
				var ipe *mfd.InvalidParameterError
				if !errors.As(err, &ipe) {
					t.Errorf("expected InvalidParameterError, got %T: %v", err, err)
				}
			}
		})
	}
}
