// Package api exposes the career assistant over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/knnakr/careeragent/agent"
	"github.com/knnakr/careeragent/logstore"
)

// Processor is the part of the assistant the HTTP layer needs.
type Processor interface {
	ProcessMessage(ctx context.Context, employerName, message string) (*agent.ProcessResult, error)
	Evaluate(ctx context.Context, employerMessage, response string) (*agent.Evaluation, error)
}

type Server struct {
	processor Processor
	logs      logstore.Store
	logger    *zap.Logger
	router    chi.Router
}

func NewServer(processor Processor, logs logstore.Store, logger *zap.Logger) *Server {
	s := &Server{
		processor: processor,
		logs:      logs,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/messages", s.handleMessage)
	r.Post("/evaluate", s.handleEvaluate)
	r.Get("/logs/{category}", s.handleLogs)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "career-assistant",
	})
}

type messageRequest struct {
	EmployerName string `json:"employer_name"`
	Message      string `json:"message"`
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.EmployerName == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "employer_name and message are required")
		return
	}

	result, err := s.processor.ProcessMessage(r.Context(), req.EmployerName, req.Message)
	if err != nil {
		s.logger.Error("message processing failed", zap.String("employer", req.EmployerName), zap.Error(err))
		writeError(w, http.StatusBadGateway, "message processing failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type evaluateRequest struct {
	EmployerMessage string `json:"employer_message"`
	Response        string `json:"response"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.EmployerMessage == "" || req.Response == "" {
		writeError(w, http.StatusBadRequest, "employer_message and response are required")
		return
	}

	eval, err := s.processor.Evaluate(r.Context(), req.EmployerMessage, req.Response)
	if err != nil {
		s.logger.Error("evaluation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "evaluation failed")
		return
	}

	writeJSON(w, http.StatusOK, eval)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	category := logstore.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown log category")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := s.logs.Tail(r.Context(), category, limit)
	if err != nil {
		s.logger.Error("log read failed", zap.String("category", string(category)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "log read failed")
		return
	}
	if records == nil {
		records = []json.RawMessage{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"count":    len(records),
		"records":  records,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
