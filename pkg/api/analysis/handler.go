package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"bizlens/pkg/core/report"
	"bizlens/pkg/core/store"
	"bizlens/pkg/core/validate"
	"bizlens/pkg/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AnalyzeRequest is the request body for the analysis endpoints.
type AnalyzeRequest struct {
	Business *models.BusinessSnapshot `json:"business"`
	Economic *models.EconomicSnapshot `json:"economic,omitempty"`
}

type errorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}

// Handler serves the analysis endpoints. reports may be nil, which
// disables persistence but not analysis.
type Handler struct {
	assembler *report.Assembler
	reports   *store.ReportRepo
}

// NewHandler creates the analysis handler.
func NewHandler(assembler *report.Assembler, reports *store.ReportRepo) *Handler {
	return &Handler{assembler: assembler, reports: reports}
}

// CreateReport runs the full pipeline over the posted snapshot and returns
// the composed report. The report is persisted when a store is configured.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	rep, err := h.assembler.Assemble(req.Business, req.Economic)
	if err != nil {
		logger.Error().Err(err).Str("business_id", req.Business.BusinessID).Msg("analysis failed")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	if h.reports != nil {
		if err := h.reports.Save(ctx, rep); err != nil {
			// Persistence is best-effort; the caller still gets the report.
			logger.Error().Err(err).Str("business_id", rep.BusinessID).Msg("failed to persist report")
		}
	}

	logger.Info().
		Str("business_id", rep.BusinessID).
		Str("report_id", rep.ReportID).
		Str("grade", rep.Analysis.Overall.Grade).
		Msg("report generated")
	writeJSON(w, http.StatusOK, rep)
}

// Score runs the analyzer only, without insights or recommendations.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	res, err := h.assembler.Analyzer().Analyze(req.Business, req.Economic)
	if err != nil {
		logger.Error().Err(err).Str("business_id", req.Business.BusinessID).Msg("analysis failed")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetReport returns the latest stored report for a business.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.loadReport(w, r, func(w http.ResponseWriter, rep *report.BusinessReport) {
		writeJSON(w, http.StatusOK, rep)
	})
}

// GetReportHTML returns the stored report rendered as HTML.
func (h *Handler) GetReportHTML(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	h.loadReport(w, r, func(w http.ResponseWriter, rep *report.BusinessReport) {
		html, err := rep.HTML()
		if err != nil {
			logger.Error().Err(err).Msg("failed to render report")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render report"})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	})
}

func (h *Handler) loadReport(w http.ResponseWriter, r *http.Request, respond func(http.ResponseWriter, *report.BusinessReport)) {
	logger := zerolog.Ctx(r.Context())

	if h.reports == nil {
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "report persistence is not enabled"})
		return
	}
	businessID := chi.URLParam(r, "businessID")

	rep, err := h.reports.Load(r.Context(), businessID)
	if err != nil {
		logger.Warn().Err(err).Str("business_id", businessID).Msg("report lookup failed")
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	respond(w, rep)
}

// decodeAndValidate enforces the input contract before anything reaches
// the core: enum membership, series lengths, and finite non-negative
// monetary values.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (*AnalyzeRequest, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return nil, false
	}
	if req.Business == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "business snapshot is required"})
		return nil, false
	}

	if err := validate.BusinessSnapshot(req.Business); err != nil {
		writeValidationError(w, err)
		return nil, false
	}
	if err := validate.EconomicSnapshot(req.Economic); err != nil {
		writeValidationError(w, err)
		return nil, false
	}
	return &req, true
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Violations: verr.Violations})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
