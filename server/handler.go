package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/medscan/medscan/config"
	"github.com/medscan/medscan/pkg/analyzer"

	"github.com/go-chi/chi/v5"
)

var (
	ErrDownload = errors.New("download failed")
	ErrExtract  = errors.New("no text extracted")
)

type Handler struct {
	*config.Config
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/analyze", h.handleAnalyze)

	r.Post("/v1/analyze", h.handleAnalyzeAPI)
}

// run drives one full pipeline pass: download, extract, analyze. Each
// invocation is a fresh run; nothing is shared or kept across requests.
func (h *Handler) run(ctx context.Context, link string, notify func(string)) (*analyzer.Analysis, error) {
	file, err := h.Fetcher.Fetch(ctx, link)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	e, err := h.Extractor("")

	if err != nil {
		return nil, err
	}

	document, err := e.Extract(ctx, *file, nil)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtract, err)
	}

	a, err := h.Analyzer("")

	if err != nil {
		return nil, err
	}

	input := analyzer.Input{
		Content: document.Text,

		Kind: analyzer.ContentKindText,
	}

	options := &analyzer.AnalyzeOptions{
		Notify: notify,
	}

	return a.Analyze(ctx, input, options)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}
