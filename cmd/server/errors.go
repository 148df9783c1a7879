package main

import (
	"log/slog"
	"net/http"
	"strings"
)

func (s *server) logError(r *http.Request, err error) {
	s.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
	)
}

// errorResponse writes message as JSON for API routes and as plain text elsewhere.
func (s *server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		http.Error(w, message, status)
		return
	}
	if err := writeJSON(w, status, envelope{"error": message}); err != nil {
		s.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverError logs err and hides it from the client.
func (s *server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logError(r, err)
	s.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (s *server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	s.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (s *server) failedValidation(w http.ResponseWriter, r *http.Request, err error) {
	s.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (s *server) rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	s.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
