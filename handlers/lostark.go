// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/lostark"
	"github.com/elfaka/site/middleware"
)

// CharacterClient fetches raw armory data for a character.
type CharacterClient interface {
	CharacterInfo(ctx context.Context, name string) (json.RawMessage, error)
}

type LostArkHandler struct {
	cfg    cliparse.Config
	client CharacterClient
}

func NewLostArkHandler(cfg cliparse.Config, client CharacterClient) *LostArkHandler {
	return &LostArkHandler{cfg: cfg, client: client}
}

// CharacterInfo handles GET /api/lostark/character-info?name=
func (h *LostArkHandler) CharacterInfo(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	body, err := h.client.CharacterInfo(r.Context(), name)
	switch {
	case errors.Is(err, lostark.ErrEmptyName):
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	case errors.Is(err, lostark.ErrNoAPIKey):
		slog.Error("lost ark api key is not configured")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Lost Ark API is not configured")
		return
	case errors.Is(err, lostark.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Character not found")
		return
	case err != nil:
		upstreamError(w, "failed to fetch character", err, "name", name)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
