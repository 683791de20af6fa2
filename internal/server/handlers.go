package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/fibmatrix/internal/errors"
	"github.com/agbru/fibmatrix/internal/service"
)

// calculateResponse is the JSON document returned by the fibonacci
// endpoint.
type calculateResponse struct {
	N          int64  `json:"n"`
	Algorithm  string `json:"algorithm"`
	Value      string `json:"value"`
	Digits     int    `json:"digits"`
	DurationMs int64  `json:"duration_ms"`
}

// errorResponse is the JSON body for every non-2xx outcome.
type errorResponse struct {
	Error string `json:"error"`
}

// handleHealth responds to health checks with a 200 and a small JSON body.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// handleAlgorithms returns the registered algorithm names.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"algorithms": s.service.Algorithms(),
	})
}

// handleCalculate processes GET /api/v1/fibonacci?n=<index>&algo=<name>.
// The index must parse as a signed integer so that a negative value reaches
// the engine's own domain check and comes back as a proper invalid-argument
// failure instead of a generic syntax error.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	nStr := r.URL.Query().Get("n")
	if nStr == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'n' parameter")
		return
	}
	n, err := strconv.ParseInt(nStr, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid 'n' parameter: must be an integer")
		return
	}
	algo := r.URL.Query().Get("algo")
	if algo == "" {
		algo = "matrix"
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.service.Calculate(ctx, algo, n)
	duration := time.Since(start)

	switch {
	case err == nil:
		value := result.String()
		s.writeJSON(w, http.StatusOK, calculateResponse{
			N:          n,
			Algorithm:  algo,
			Value:      value,
			Digits:     len(value),
			DurationMs: duration.Milliseconds(),
		})
	case errors.Is(err, service.ErrMaxValueExceeded):
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("value of 'n' exceeds the maximum allowed (%d)", s.service.MaxN()))
	case apperrors.IsInvalidArgument(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, "calculation timed out")
	default:
		s.logger.Error("calculation request failed", err)
		s.writeError(w, http.StatusInternalServerError, "calculation failed")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
