package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/carllingstrom/AI-Delning-sub000/internal/analytics"
	"github.com/carllingstrom/AI-Delning-sub000/internal/db"
	"github.com/carllingstrom/AI-Delning-sub000/internal/observability"
	"github.com/carllingstrom/AI-Delning-sub000/internal/scoring"
	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
)

// ProjectSummary is one row of GET /projects
type ProjectSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Percentage  int     `json:"percentage"`
	Level       string  `json:"level"`
	EconomicROI float64 `json:"economicROI"`
	Error       string  `json:"error,omitempty"`
}

// EvaluateResponse is the response for POST /evaluate
type EvaluateResponse struct {
	Valuation types.Valuation    `json:"valuation"`
	Score     types.ProjectScore `json:"score"`
	Warnings  []string           `json:"warnings"`
}

// BatchRequest is the request body for POST /evaluate/batch
type BatchRequest struct {
	Projects []json.RawMessage `json:"projects" validate:"required,min=1,max=500"`
}

// handleListProjects lists stored projects with their headline figures
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	report, records, err := s.evaluateStored(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	summaries := make([]ProjectSummary, len(records))
	for i, rec := range records {
		summaries[i] = ProjectSummary{ID: rec.ID.String(), Title: rec.Title}
	}
	for _, res := range report.Results {
		row := &summaries[res.Index]
		if res.Title != "" {
			row.Title = res.Title
		}
		row.Percentage = res.Score.Percentage
		row.Level = res.Score.Level
		row.EconomicROI = res.Valuation.Metrics.EconomicROI
	}
	for _, f := range report.Failures {
		summaries[f.Index].Error = f.Error
	}

	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleProjectValuation returns the valuation of one stored project
func (s *Server) handleProjectValuation(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadProject(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.evaluator.Engine.Evaluate(p))
}

// handleProjectScore returns the completeness score of one stored project
func (s *Server) handleProjectScore(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadProject(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.ScoreProject(p))
}

// handleProjectSummary returns a plain-text summary of one stored project
func (s *Server) handleProjectSummary(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadProject(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	v := s.evaluator.Engine.Evaluate(p)
	score := scoring.ScoreProject(p)

	var buf bytes.Buffer
	observability.NewPrinter(&buf).PrintSummary(p, &v, &score)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleEvaluate values and scores one submitted project
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := types.DecodeProject(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project: "+err.Error())
		return
	}

	resp := EvaluateResponse{
		Valuation: s.evaluator.Engine.Evaluate(p),
		Score:     scoring.ScoreProject(p),
		Warnings:  []string{},
	}
	if s.schema != nil {
		if warnings := s.schema.Warnings(body); warnings != nil {
			resp.Warnings = warnings
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleEvaluateBatch runs the batch evaluator over submitted projects
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorFromErr(w, validationError(err))
		return
	}

	inputs := make([]analytics.ProjectInput, len(req.Projects))
	for i, raw := range req.Projects {
		inputs[i] = analytics.ProjectInput{Raw: raw}
	}

	report, err := s.evaluator.Evaluate(r.Context(), inputs)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handlePortfolio runs the batch evaluator over all stored projects
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	report, _, err := s.evaluateStored(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) evaluateStored(r *http.Request) (*analytics.Report, []db.ProjectRecord, error) {
	records, err := s.store.ListProjects(r.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}

	inputs := make([]analytics.ProjectInput, len(records))
	for i, rec := range records {
		inputs[i] = analytics.ProjectInput{ID: rec.ID.String(), Raw: rec.Data}
	}

	report, err := s.evaluator.Evaluate(r.Context(), inputs)
	if err != nil {
		return nil, nil, err
	}
	return report, records, nil
}

func (s *Server) loadProject(r *http.Request) (*types.Project, error) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, &ErrInvalidID{Value: idStr}
	}

	rec, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		return nil, err
	}

	p, err := rec.Project()
	if err != nil {
		return nil, &ErrUnreadableProject{Err: err}
	}
	return p, nil
}
