// Package config loads and validates hazard-scenario definitions. A
// scenario fixes one seismic source, one site configuration, the magnitude
// discretization, the IM levels of the hazard curve, and an optional
// disaggregation target. Scenarios are read from YAML files; the same
// structs carry JSON tags so the REST API accepts them directly.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/quakemetrics/hazcalc/pkg/gmm"
	"github.com/quakemetrics/hazcalc/pkg/hazard"
	"github.com/quakemetrics/hazcalc/pkg/mfd"
)

// Source model names accepted in scenario files.
const (
	ModelGutenbergRichter  = "gutenberg-richter"
	ModelYoungsCoppersmith = "youngs-coppersmith"
)

// Scenario is one complete hazard computation request.
type Scenario struct {
	Source         Source          `yaml:"source" json:"source"`
	Site           Site            `yaml:"site" json:"site"`
	DeltaM         float64         `yaml:"delta_m,omitempty" json:"delta_m,omitempty"`
	IMLevels       []float64       `yaml:"im_levels,omitempty" json:"im_levels,omitempty"`
	IMGrid         *IMGrid         `yaml:"im_grid,omitempty" json:"im_grid,omitempty"`
	Disaggregation *Disaggregation `yaml:"disaggregation,omitempty" json:"disaggregation,omitempty"`
}

// Source selects and parameterizes the magnitude-frequency model.
type Source struct {
	Model  string  `yaml:"model" json:"model"`
	MMin   float64 `yaml:"m_min" json:"m_min"`
	MMax   float64 `yaml:"m_max,omitempty" json:"m_max,omitempty"`
	BValue float64 `yaml:"b_value" json:"b_value"`
	Rate   float64 `yaml:"rate" json:"rate"`

	// Characteristic-model parameters, youngs-coppersmith only.
	MChar      float64 `yaml:"m_char,omitempty" json:"m_char,omitempty"`
	DeltaMChar float64 `yaml:"delta_m_char,omitempty" json:"delta_m_char,omitempty"`
	PChar      float64 `yaml:"p_char,omitempty" json:"p_char,omitempty"`
}

// Site fixes the ground-motion model terms.
type Site struct {
	Period      float64 `yaml:"period" json:"period"` // seconds; 0 means PGA
	DistanceKM  float64 `yaml:"distance_km" json:"distance_km"`
	Soil        bool    `yaml:"soil,omitempty" json:"soil,omitempty"`
	FaultStyle  string  `yaml:"fault_style,omitempty" json:"fault_style,omitempty"`
	HangingWall bool    `yaml:"hanging_wall,omitempty" json:"hanging_wall,omitempty"`
}

// IMGrid describes a log-spaced IM grid, an alternative to listing levels
// explicitly.
type IMGrid struct {
	Min   float64 `yaml:"min" json:"min"`
	Max   float64 `yaml:"max" json:"max"`
	Count int     `yaml:"count" json:"count"`
}

// Disaggregation selects the IM level to decompose and the epsilon grid.
type Disaggregation struct {
	IM           float64 `yaml:"im" json:"im"`
	EpsilonMin   float64 `yaml:"epsilon_min,omitempty" json:"epsilon_min,omitempty"`
	EpsilonMax   float64 `yaml:"epsilon_max,omitempty" json:"epsilon_max,omitempty"`
	EpsilonWidth float64 `yaml:"epsilon_width,omitempty" json:"epsilon_width,omitempty"`
}

// Defaults applied by Validate when fields are left zero.
const (
	defaultDeltaM       = 0.1
	defaultEpsilonMin   = -3.0
	defaultEpsilonMax   = 3.0
	defaultEpsilonWidth = 1.0
)

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate fills defaults and checks everything that can be checked without
// running the computation. Distribution-parameter invariants are enforced
// again by the model constructors; this catches them early with the same
// error type.
func (s *Scenario) Validate() error {
	if s.DeltaM == 0 {
		s.DeltaM = defaultDeltaM
	}
	if s.DeltaM < 0 {
		return &mfd.InvalidParameterError{Param: "delta_m", Value: s.DeltaM, Constraint: "delta_m > 0"}
	}

	if _, err := s.Distribution(); err != nil {
		return err
	}
	if _, err := s.SiteConfig(); err != nil {
		return err
	}

	if len(s.IMLevels) == 0 && s.IMGrid == nil {
		return fmt.Errorf("scenario must set im_levels or im_grid")
	}
	if s.IMGrid != nil {
		if s.IMGrid.Min <= 0 || s.IMGrid.Max <= s.IMGrid.Min {
			return &mfd.InvalidParameterError{Param: "im_grid.min", Value: s.IMGrid.Min, Constraint: "0 < min < max"}
		}
		if s.IMGrid.Count < 2 {
			return &mfd.InvalidParameterError{Param: "im_grid.count", Value: float64(s.IMGrid.Count), Constraint: "count >= 2"}
		}
	}
	for i := 1; i < len(s.IMLevels); i++ {
		if s.IMLevels[i] <= s.IMLevels[i-1] {
			return fmt.Errorf("im_levels must be strictly increasing (index %d)", i)
		}
	}

	if d := s.Disaggregation; d != nil {
		if d.IM <= 0 {
			return &mfd.InvalidParameterError{Param: "disaggregation.im", Value: d.IM, Constraint: "im > 0"}
		}
		if d.EpsilonWidth == 0 {
			d.EpsilonMin = defaultEpsilonMin
			d.EpsilonMax = defaultEpsilonMax
			d.EpsilonWidth = defaultEpsilonWidth
		}
		if _, err := s.EpsilonBins(); err != nil {
			return err
		}
	}
	return nil
}

// Distribution builds the configured magnitude-frequency model.
func (s *Scenario) Distribution() (mfd.Distribution, error) {
	switch s.Source.Model {
	case ModelGutenbergRichter:
		return mfd.NewGutenbergRichter(s.Source.MMin, s.Source.MMax, s.Source.BValue, s.Source.Rate)
	case ModelYoungsCoppersmith:
		return mfd.NewYoungsCoppersmith(s.Source.MMin, s.Source.MChar, s.Source.DeltaMChar,
			s.Source.PChar, s.Source.BValue, s.Source.Rate)
	}
	return nil, fmt.Errorf("unknown source model %q (want %q or %q)",
		s.Source.Model, ModelGutenbergRichter, ModelYoungsCoppersmith)
}

// SiteConfig converts the site section to engine inputs.
func (s *Scenario) SiteConfig() (hazard.SiteConfig, error) {
	style, err := parseFaultStyle(s.Site.FaultStyle)
	if err != nil {
		return hazard.SiteConfig{}, err
	}
	if s.Site.DistanceKM <= 0 {
		return hazard.SiteConfig{}, &mfd.InvalidParameterError{
			Param: "distance_km", Value: s.Site.DistanceKM, Constraint: "distance_km > 0"}
	}
	return hazard.SiteConfig{
		Period:      s.Site.Period,
		Distance:    s.Site.DistanceKM,
		Soil:        s.Site.Soil,
		FaultStyle:  style,
		HangingWall: s.Site.HangingWall,
	}, nil
}

// Levels returns the IM levels of the hazard curve, expanding the grid
// form when used.
func (s *Scenario) Levels() []float64 {
	if len(s.IMLevels) > 0 {
		return s.IMLevels
	}
	g := s.IMGrid
	levels := make([]float64, g.Count)
	llo, lhi := math.Log(g.Min), math.Log(g.Max)
	for i := range levels {
		levels[i] = math.Exp(llo + (lhi-llo)*float64(i)/float64(g.Count-1))
	}
	// Round-tripping through exp(log(x)) perturbs the last ulp; the grid
	// must be exact at its declared bounds.
	levels[0] = g.Min
	levels[g.Count-1] = g.Max
	return levels
}

// EpsilonBins builds the disaggregation epsilon grid.
func (s *Scenario) EpsilonBins() ([]hazard.EpsilonBin, error) {
	d := s.Disaggregation
	if d == nil {
		return nil, fmt.Errorf("scenario has no disaggregation section")
	}
	return hazard.EpsilonBins(d.EpsilonMin, d.EpsilonMax, d.EpsilonWidth)
}

func parseFaultStyle(name string) (gmm.FaultStyle, error) {
	switch name {
	case "", "strike-slip", "normal":
		return gmm.StrikeSlip, nil
	case "reverse-oblique":
		return gmm.ReverseOblique, nil
	case "reverse":
		return gmm.Reverse, nil
	}
	return 0, fmt.Errorf("unknown fault_style %q (want strike-slip, reverse-oblique or reverse)", name)
}
