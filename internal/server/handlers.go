package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/snehagrian/proofmap/internal/github"
	"github.com/snehagrian/proofmap/internal/types"
)

// handleScan runs a full proof scan for the posted request body.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req types.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.scanService.Scan(r.Context(), &req)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("scan failed",
				zap.String("user", req.GithubUsername),
				zap.Int("status", status),
				zap.Error(err))
		} else {
			s.logger.Warn("scan rejected",
				zap.String("user", req.GithubUsername),
				zap.Int("status", status),
				zap.Error(err))
		}

		var quotaErr *github.QuotaError
		if errors.As(err, &quotaErr) {
			if wait := time.Until(quotaErr.Reset); wait > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(wait.Seconds())+1))
			}
		}

		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
