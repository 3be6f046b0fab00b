package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"handball-tracker/internal/corpus"
	"handball-tracker/internal/service"
)

type envelope map[string]any

func (s *StatsServer) writeJSON(w http.ResponseWriter, status int, data envelope) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	body = append(body, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to write response")
	}
}

// errorResponse maps service errors onto HTTP statuses: unknown league and
// unknown game are 404, an unreachable crawler index is 502, the rest 500.
func (s *StatsServer) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, corpus.ErrUnknownLeague), errors.Is(err, service.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, corpus.ErrIndexUnavailable):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	s.writeJSON(w, status, envelope{"error": err.Error()})
}

func (s *StatsServer) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, envelope{"error": "the requested resource could not be found"})
}

func (s *StatsServer) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusMethodNotAllowed, envelope{"error": "method not allowed"})
}
