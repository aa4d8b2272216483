// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/api"
	"github.com/telekom/netpath/pkg/provider"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/state"
	"gopkg.in/yaml.v3"
)

// defaultDestinationParam selects the configured default destination
const defaultDestinationParam = "-"

type errorResponse struct {
	Error string `json:"error"`
}

// handlePath traces the destination of the request and
// answers with the report holding the requested views.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	raw := chi.URLParam(r, "destination")
	if raw == defaultDestinationParam {
		raw = ""
	}
	dest, err := provider.ValidateDestination(state.ResolveDestination(raw, s.config.Destination))
	if err != nil {
		log.DebugContext(ctx, "Rejected destination", "destination", raw, "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	views, err := api.ParseViews(r.URL.Query().Get("view"))
	if err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	p, err := s.client.Trace(ctx, dest)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, provider.ErrInvalidDestination) {
			status = http.StatusBadRequest
		}
		writeJSON(ctx, w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(ctx, w, http.StatusOK, render.NewReport(dest, p, views...))
}

// handleOpenAPI serves the openapi document as yaml
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	doc, err := api.GetOpenapi(s.version)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create openapi document", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		log.ErrorContext(ctx, "Failed to marshal openapi document", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(b); err != nil {
		log.ErrorContext(ctx, "Failed to write response", "error", err)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to write response", "error", err)
	}
}
