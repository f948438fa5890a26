package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rgehrsitz/finsim/internal/breakeven"
	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/rgehrsitz/finsim/internal/config"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/internal/logging"
	"github.com/rgehrsitz/finsim/internal/output"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error     string              `json:"error"`
	Issues    []config.FieldIssue `json:"issues,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

// ScheduleRequest asks for a standalone amortization table.
type ScheduleRequest struct {
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annualRate"`
	TermMonths int             `json:"termMonths"`
}

// ScheduleResponse is an amortization table and its totals.
type ScheduleResponse struct {
	Summary output.ScheduleSummary   `json:"summary"`
	Rows    []domain.AmortizationRow `json:"rows"`
}

// BreakevenRequest searches one parameter of a projection input for the point
// where a goal is just met. Target "all" searches every applicable parameter.
type BreakevenRequest struct {
	Input       domain.ProjectionInput       `json:"input"`
	Target      breakeven.OptimizationTarget `json:"target"`
	Goal        breakeven.OptimizationGoal   `json:"goal"`
	Constraints *breakeven.Constraints       `json:"constraints,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !s.decode(w, r, &input) {
		return
	}

	if err := s.parser.NormalizeInput(&input); err != nil {
		s.writeInputError(w, r, err)
		return
	}
	if err := s.parser.ValidateInput(&input); err != nil {
		s.writeInputError(w, r, err)
		return
	}

	result, err := s.engine(r).ComputeProjection(&input)
	if err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBreakeven(w http.ResponseWriter, r *http.Request) {
	var req BreakevenRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.parser.NormalizeInput(&req.Input); err != nil {
		s.writeInputError(w, r, err)
		return
	}
	if err := s.parser.ValidateInput(&req.Input); err != nil {
		s.writeInputError(w, r, err)
		return
	}
	if req.Target == "" {
		req.Target = breakeven.OptimizeInitialCash
	}
	if req.Goal == "" {
		req.Goal = breakeven.GoalNoShortfall
	}
	constraints := breakeven.DefaultConstraints()
	if req.Constraints != nil {
		constraints = *req.Constraints
	}

	scenario := &domain.Scenario{Name: "request", ProjectionInput: req.Input}
	solver := breakeven.NewDefaultSolver(s.engine(r))

	var result interface{}
	var err error
	if req.Target == breakeven.OptimizeAll {
		result, err = solver.OptimizeAllTargets(r.Context(), scenario, req.Goal, constraints)
	} else {
		result, err = solver.Optimize(r.Context(), breakeven.OptimizationRequest{
			BaseScenario: scenario,
			Target:       req.Target,
			Goal:         req.Goal,
			Constraints:  constraints,
		})
	}
	if err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMortgageSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !s.decode(w, r, &req) {
		return
	}

	var issues []config.FieldIssue
	if !req.Principal.IsPositive() {
		issues = append(issues, config.FieldIssue{Field: "principal", Message: "must be greater than 0"})
	}
	if req.AnnualRate.IsNegative() {
		issues = append(issues, config.FieldIssue{Field: "annualRate", Message: "must be at least 0"})
	}
	if req.TermMonths <= 0 || req.TermMonths > 1200 {
		issues = append(issues, config.FieldIssue{Field: "termMonths", Message: "must be between 1 and 1200"})
	}
	if len(issues) > 0 {
		s.writeError(w, r, http.StatusBadRequest, "invalid schedule request", issues)
		return
	}

	rows := calculation.BuildAmortizationTable(req.Principal, req.AnnualRate, req.TermMonths)
	s.writeJSON(w, http.StatusOK, ScheduleResponse{Summary: output.SummarizeSchedule(rows), Rows: rows})
}

// engine returns a projection engine logging with the request ID.
func (s *Server) engine(r *http.Request) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logging.ForEngine(s.logger, logrus.Fields{"request_id": RequestID(r.Context())}))
	engine.Debug = s.logger.IsLevelEnabled(logrus.DebugLevel)
	return engine
}

// decode reads a JSON body into v, writing the error response itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), nil)
		return false
	}
	s.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err), nil)
	return false
}

func (s *Server) writeInputError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		s.writeError(w, r, http.StatusBadRequest, "invalid projection input", verr.Issues)
		return
	}
	s.writeError(w, r, http.StatusBadRequest, err.Error(), nil)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, issues []config.FieldIssue) {
	s.writeJSON(w, status, ErrorResponse{
		Error:     msg,
		Issues:    issues,
		RequestID: RequestID(r.Context()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}
