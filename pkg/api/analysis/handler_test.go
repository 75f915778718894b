package analysis

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	coreanalysis "bizlens/pkg/core/analysis"
	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/core/report"
	"bizlens/pkg/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()
	bench, err := benchmark.Load()
	require.NoError(t, err)

	h := NewHandler(report.NewAssembler(bench), nil)

	r := chi.NewRouter()
	r.Post("/analysis/report", h.CreateReport)
	r.Post("/analysis/score", h.Score)
	r.Get("/reports/{businessID}", h.GetReport)
	return r
}

func validRequest() AnalyzeRequest {
	series := make([]float64, models.PeriodLength)
	expenses := make([]float64, models.PeriodLength)
	for i := range series {
		series[i] = 700000
		expenses[i] = 560000
	}
	return AnalyzeRequest{
		Business: &models.BusinessSnapshot{
			BusinessID:      "biz-9",
			Sector:          models.SectorFood,
			Location:        models.LocationMidwest,
			MonthlyRevenue:  series,
			MonthlyExpenses: expenses,
			CurrentCash:     3000000,
			EmployeeCount:   25,
			YearsInBusiness: 9,
		},
	}
}

func post(t *testing.T, router *chi.Mux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateReport(t *testing.T) {
	router := testRouter(t)

	rec := post(t, router, "/analysis/report", validRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var rep report.BusinessReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "biz-9", rep.BusinessID)
	assert.NotEmpty(t, rep.ReportID)
	assert.NotEmpty(t, rep.PrimaryInsight.Type)
	assert.NotEmpty(t, rep.Analysis.Overall.Grade)
	assert.Len(t, rep.Plan.Milestones, 3)
}

func TestScoreReturnsAnalysisOnly(t *testing.T) {
	router := testRouter(t)

	rec := post(t, router, "/analysis/score", validRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var res coreanalysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	// 700000 against the 600000 food/midwest benchmark.
	assert.InDelta(t, 700000.0/600000.0, res.Market.PerformanceRatio, 0.001)
	assert.NotEmpty(t, res.Overall.Grade)
}

func TestValidationRejectsUnknownSector(t *testing.T) {
	router := testRouter(t)

	req := validRequest()
	req.Business.Sector = "mining"

	rec := post(t, router, "/analysis/report", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error      string   `json:"error"`
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.NotEmpty(t, resp.Violations)
}

func TestValidationRejectsShortSeries(t *testing.T) {
	router := testRouter(t)

	req := validRequest()
	req.Business.MonthlyRevenue = req.Business.MonthlyRevenue[:3]

	rec := post(t, router, "/analysis/report", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedBodyRejected(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/analysis/report", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingBusinessRejected(t *testing.T) {
	router := testRouter(t)

	rec := post(t, router, "/analysis/report", AnalyzeRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReportWithoutStore(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/biz-9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
