// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/davetashner/plotsleuth/internal/identify"
	"github.com/davetashner/plotsleuth/internal/redact"
)

// identifyRequest is the wire shape for POST /api/identify. The field name
// is exactly "User_query"; a missing field is treated as an empty plot.
type identifyRequest struct {
	UserQuery string `json:"User_query"`
}

// detailResponse is the wire shape for every error body.
type detailResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req identifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.svc.Identify(r.Context(), req.UserQuery)
	if err != nil {
		s.logger.Error("identification failed",
			slog.String("kind", errorKind(err)),
			slog.String("error", redact.String(err.Error())))
		s.writeDetail(w, http.StatusInternalServerError, redact.String(err.Error()))
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorKind labels the pipeline error for logs. The wire response carries
// only the detail message; all three kinds map to the same status.
func errorKind(err error) string {
	var (
		upstream  *identify.UpstreamError
		malformed *identify.MalformedResponseError
		schema    *identify.SchemaValidationError
	)
	switch {
	case errors.As(err, &upstream):
		return "upstream"
	case errors.As(err, &malformed):
		return "malformed-response"
	case errors.As(err, &schema):
		return "schema-validation"
	default:
		return "unknown"
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeDetail(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, detailResponse{Detail: detail})
}
