package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/quakemetrics/hazcalc/pkg/config"
	"github.com/quakemetrics/hazcalc/pkg/gmm"
	"github.com/quakemetrics/hazcalc/pkg/hazard"
	"github.com/quakemetrics/hazcalc/pkg/mfd"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{controller: ctrl}
}

// CurveResponse is the JSON body returned by the hazard-curve endpoint.
type CurveResponse struct {
	Points        []hazard.CurvePoint `json:"points"`
	TotalBinRate  float64             `json:"total_bin_rate"`
	AnnualRate    float64             `json:"annual_rate"`
	PeriodClamped bool                `json:"period_clamped,omitempty"`
}

// DisaggResponse is the JSON body returned by the disaggregation endpoint.
type DisaggResponse struct {
	IM                float64             `json:"im"`
	MagnitudeCenters  []float64           `json:"magnitude_centers"`
	EpsilonBins       []hazard.EpsilonBin `json:"epsilon_bins"`
	Rates             [][]float64         `json:"rates"`
	Total             float64             `json:"total"`
	MagnitudeMarginal []float64           `json:"magnitude_marginal"`
	EpsilonMarginal   []float64           `json:"epsilon_marginal"`
}

// HazardCurve computes a hazard curve from a JSON scenario.
func (h *Handlers) HazardCurve(w http.ResponseWriter, req *http.Request) {
	eng, scenario, ok := h.buildEngine(w, req)
	if !ok {
		return
	}

	points, err := eng.Curve(scenario.Levels())
	if err != nil {
		h.writeError(w, err)
		return
	}

	dist, _ := scenario.Distribution()
	h.writeJSON(w, CurveResponse{
		Points:        points,
		TotalBinRate:  eng.TotalRate(),
		AnnualRate:    dist.AnnualRate(),
		PeriodClamped: eng.PeriodClamped,
	})
}

// Disaggregation computes a magnitude-epsilon disaggregation matrix from a
// JSON scenario carrying a disaggregation section.
func (h *Handlers) Disaggregation(w http.ResponseWriter, req *http.Request) {
	eng, scenario, ok := h.buildEngine(w, req)
	if !ok {
		return
	}
	if scenario.Disaggregation == nil {
		http.Error(w, "scenario has no disaggregation section", http.StatusBadRequest)
		return
	}

	epsBins, err := scenario.EpsilonBins()
	if err != nil {
		h.writeError(w, err)
		return
	}

	mtx, err := eng.Disaggregate(scenario.Disaggregation.IM, epsBins)
	if err != nil {
		h.writeError(w, err)
		return
	}

	magMarginal, err := mtx.MagnitudeMarginal()
	if err != nil {
		h.writeError(w, err)
		return
	}
	epsMarginal, err := mtx.EpsilonMarginal()
	if err != nil {
		h.writeError(w, err)
		return
	}

	centers := make([]float64, len(mtx.MagBins))
	for i, b := range mtx.MagBins {
		centers[i] = b.Center
	}

	h.writeJSON(w, DisaggResponse{
		IM:                mtx.IM,
		MagnitudeCenters:  centers,
		EpsilonBins:       mtx.EpsBins,
		Rates:             mtx.Rates,
		Total:             mtx.Total(),
		MagnitudeMarginal: magMarginal,
		EpsilonMarginal:   epsMarginal,
	})
}

// Periods returns the GMM's tabulated anchor periods so clients can offer
// validated index-based period selection.
func (h *Handlers) Periods(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, map[string][]float64{"periods": gmm.Periods()})
}

func (h *Handlers) buildEngine(w http.ResponseWriter, req *http.Request) (*hazard.Engine, *config.Scenario, bool) {
	var scenario config.Scenario
	if err := json.NewDecoder(req.Body).Decode(&scenario); err != nil {
		http.Error(w, "malformed scenario JSON: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	if err := scenario.Validate(); err != nil {
		h.writeError(w, err)
		return nil, nil, false
	}

	dist, err := scenario.Distribution()
	if err != nil {
		h.writeError(w, err)
		return nil, nil, false
	}
	site, err := scenario.SiteConfig()
	if err != nil {
		h.writeError(w, err)
		return nil, nil, false
	}

	eng, err := hazard.New(dist, site, scenario.DeltaM)
	if err != nil {
		h.writeError(w, err)
		return nil, nil, false
	}
	if eng.PeriodClamped {
		h.controller.logger.Warnf("scenario period %g s outside tabulated range, clamped", site.Period)
	}
	return eng, &scenario, true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.controller.logger.Errorf("error encoding response: %v", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: invalid parameters
// are the client's fault, numeric degeneracies are unprocessable scenarios,
// everything else is a server error.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	var ipe *mfd.InvalidParameterError
	var de *mfd.DegeneracyError
	switch {
	case errors.As(err, &ipe):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &de):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

// requestLogger tags each request with an ID and logs method, path and
// remote address.
func (c *Controller) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		c.logger.Infow("request",
			"id", id,
			"method", req.Method,
			"path", req.URL.Path,
			"remote", req.RemoteAddr,
		)
		next.ServeHTTP(w, req)
	})
}
