// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/elfaka/site/jsonfmt"
	"github.com/elfaka/site/middleware"
)

type JSONFormatHandler struct{}

func NewJSONFormatHandler() *JSONFormatHandler {
	return &JSONFormatHandler{}
}

// Format handles POST /api/json/format
//
// Every rejected input comes back as 400 with ok=false and an error object.
func (h *JSONFormatHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req jsonfmt.Request
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp := jsonfmt.Format(req)
	if !resp.OK {
		slog.Debug("json format rejected", "code", resp.Error.Code, "message", resp.Error.Message)
		middleware.JSONResponse(w, http.StatusBadRequest, resp)
		return
	}

	slog.Debug("json formatted",
		"mode", resp.Mode,
		"input", humanize.Comma(int64(resp.Stats.InputLength)),
		"output", humanize.Comma(int64(resp.Stats.OutputLength)),
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}
