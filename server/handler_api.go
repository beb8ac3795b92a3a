package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	URL string `json:"url"`
}

type AnalyzeResponse struct {
	ID string `json:"id"`

	Analysis string `json:"analysis"`
	Fallback bool   `json:"fallback,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

func (h *Handler) handleAnalyzeAPI(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing url"))
		return
	}

	var warnings []string

	notify := func(message string) {
		slog.Warn("analysis warning", "message", message)

		warnings = append(warnings, message)
	}

	result, err := h.run(r.Context(), req.URL, notify)

	if err != nil {
		code := http.StatusInternalServerError

		if errors.Is(err, ErrDownload) || errors.Is(err, ErrExtract) {
			code = http.StatusUnprocessableEntity
		}

		writeError(w, code, err)
		return
	}

	writeJson(w, AnalyzeResponse{
		ID: uuid.New().String(),

		Analysis: result.Text,
		Fallback: result.Fallback,

		Warnings: warnings,
	})
}
