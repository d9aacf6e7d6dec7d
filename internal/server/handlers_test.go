package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
)

const scenarioJSON = `{
	"source": {"model": "gutenberg-richter", "m_min": 5.0, "m_max": 8.0, "b_value": 1.0, "rate": 0.05},
	"site": {"period": 0.0, "distance_km": 10},
	"delta_m": 0.2,
	"im_levels": [0.01, 0.05, 0.1, 0.5, 1.0],
	"disaggregation": {"im": 0.2}
}`

func testController(t *testing.T) *Controller {
	t.Helper()
	var wg sync.WaitGroup
	return NewController(context.Background(), &wg, "127.0.0.1:0", zap.NewNop().Sugar())
}

func TestHazardCurveEndpoint(t *testing.T) {
	ctrl := testController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/hazard-curve", strings.NewReader(scenarioJSON))
	rec := httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp CurveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Points) != 5 {
		t.Fatalf("point count = %d, expected 5", len(resp.Points))
	}
	for k := 1; k < len(resp.Points); k++ {
		if resp.Points[k].Rate > resp.Points[k-1].Rate {
			t.Errorf("rates not non-increasing at %d", k)
		}
	}
	if rel := math.Abs(resp.TotalBinRate-resp.AnnualRate) / resp.AnnualRate; rel > 1e-6 {
		t.Errorf("total bin rate %g != annual rate %g", resp.TotalBinRate, resp.AnnualRate)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestDisaggregationEndpoint(t *testing.T) {
	ctrl := testController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/disaggregation", strings.NewReader(scenarioJSON))
	rec := httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty response body")
	}

	var resp DisaggResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Rates) != len(resp.MagnitudeCenters) {
		t.Fatalf("rate rows = %d, magnitude centers = %d", len(resp.Rates), len(resp.MagnitudeCenters))
	}

	// Open outer epsilon bins must survive the JSON boundary.
	if n := len(resp.EpsilonBins); n == 0 {
		t.Fatal("no epsilon bins in response")
	} else {
		if !math.IsInf(resp.EpsilonBins[0].Lo, -1) {
			t.Errorf("first epsilon bin Lo = %g, expected -Inf", resp.EpsilonBins[0].Lo)
		}
		if !math.IsInf(resp.EpsilonBins[n-1].Hi, 1) {
			t.Errorf("last epsilon bin Hi = %g, expected +Inf", resp.EpsilonBins[n-1].Hi)
		}
	}

	var sum float64
	for _, f := range resp.MagnitudeMarginal {
		sum += f
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("magnitude marginal sums to %g, expected 1", sum)
	}

	var total float64
	for _, row := range resp.Rates {
		for _, r := range row {
			total += r
		}
	}
	if rel := math.Abs(total-resp.Total) / resp.Total; rel > 1e-9 {
		t.Errorf("cell sum %g != reported total %g", total, resp.Total)
	}
}

func TestPeriodsEndpoint(t *testing.T) {
	ctrl := testController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/periods", nil)
	rec := httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string][]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp["periods"]) != 29 {
		t.Errorf("period count = %d, expected 29", len(resp["periods"]))
	}
}

func TestInvalidScenarioRejected(t *testing.T) {
	ctrl := testController(t)

	bad := `{
		"source": {"model": "gutenberg-richter", "m_min": 8.0, "m_max": 5.0, "b_value": 1.0, "rate": 0.05},
		"site": {"period": 0.0, "distance_km": 10},
		"im_levels": [0.1]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/hazard-curve", strings.NewReader(bad))
	rec := httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "m_min") {
		t.Errorf("error body does not name the offending parameter: %s", rec.Body.String())
	}
}

func TestDisaggregationRequiresSection(t *testing.T) {
	ctrl := testController(t)

	noDisagg := `{
		"source": {"model": "gutenberg-richter", "m_min": 5.0, "m_max": 8.0, "b_value": 1.0, "rate": 0.05},
		"site": {"period": 0.0, "distance_km": 10},
		"im_levels": [0.1]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/disaggregation", strings.NewReader(noDisagg))
	rec := httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rec.Code)
	}
}
