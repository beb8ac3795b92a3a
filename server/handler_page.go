package server

import (
	"errors"
	"log/slog"
	"net/http"
)

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("pdf_link")

	if link == "" {
		renderPage(w, page{
			Usage: true,
		})

		return
	}

	renderPage(w, page{
		Link: link,
	})
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	link := r.FormValue("pdf_link")

	if link == "" {
		renderPage(w, page{
			Usage: true,
		})

		return
	}

	var warnings []string

	notify := func(message string) {
		slog.Warn("analysis warning", "message", message)

		warnings = append(warnings, message)
	}

	result, err := h.run(r.Context(), link, notify)

	if err != nil {
		slog.Error("analysis failed", "url", link, "error", err)

		message := err.Error()

		switch {
		case errors.Is(err, ErrDownload):
			message = "Failed to download the PDF from URL: " + link

		case errors.Is(err, ErrExtract):
			message = "Failed to extract text from the PDF."
		}

		renderPage(w, page{
			Link: link,

			Warnings: warnings,
			Error:    message,
		})

		return
	}

	renderPage(w, page{
		Link: link,

		Analysis: result.Text,
		Warnings: warnings,
	})
}
