package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/profile-analyzer/internal/content"
	"github.com/jonathan/profile-analyzer/internal/parsing"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// List pagination bounds.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// TokenResponse is the reply to a successful token exchange.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in_hours"`
}

// AnalyzeResponse is the reply to a successful analysis.
type AnalyzeResponse struct {
	ID          *uuid.UUID           `json:"id,omitempty"`
	Profile     *types.Profile       `json:"profile"`
	Analysis    *types.Analysis      `json:"analysis"`
	Suggestions *content.Suggestions `json:"suggestions,omitempty"`
}

// handleToken exchanges the configured API key for a bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.deps.Auth.VerifyAPIKey(req.APIKey) {
		s.errorResponse(w, http.StatusUnauthorized, "invalid API key")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{
		Token:     token,
		ExpiresIn: s.deps.Auth.ExpirationHours,
	})
}

// handleAnalyze resolves the profile and job sources, runs the analysis, and
// optionally persists the result and adds content suggestions.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	raw := req.Profile
	if req.ProfileURL != "" {
		if s.deps.Extractor == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "profile extraction is not configured")
			return
		}
		extracted, err := s.deps.Extractor.ExtractProfile(ctx, req.ProfileURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "profile extraction failed: "+err.Error())
			return
		}
		raw = extracted
	}

	jobDescription := req.JobDescription
	if req.JobURL != "" {
		if s.deps.Fetcher == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "job fetching is not configured")
			return
		}
		fetched, err := s.deps.Fetcher.JobDescription(ctx, req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "job fetch failed: "+err.Error())
			return
		}
		jobDescription = fetched
	}

	profile := parsing.Normalize(raw)
	result, err := s.deps.Analyzer.Analyze(ctx, profile, jobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}

	resp := AnalyzeResponse{Profile: profile, Analysis: result}

	if req.Suggest && s.deps.Suggester != nil {
		resp.Suggestions = s.deps.Suggester.Suggest(ctx, profile, result, jobDescription)
	}

	if s.deps.Store != nil {
		id, err := s.deps.Store.SaveAnalysis(ctx, req.ProfileURL, profile, result)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist analysis: "+err.Error())
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetAnalysis returns one stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	stored, err := s.deps.Store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeleteAnalysis removes a stored analysis. Deleting an ID that does
// not exist succeeds, so the operation is idempotent.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	if err := s.deps.Store.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListAnalyses returns recent analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(parsed, maxListLimit)
	}

	analyses, err := s.deps.Store.ListRecent(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []types.StoredAnalysis{}
	}

	s.jsonResponse(w, http.StatusOK, analyses)
}
