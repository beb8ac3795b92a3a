package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/medscan/medscan/config"
	"github.com/medscan/medscan/pkg/analyzer"
	"github.com/medscan/medscan/pkg/extractor"
	"github.com/medscan/medscan/pkg/fetcher"
	"github.com/medscan/medscan/server"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	document *extractor.Document
	err      error
}

func (s *stubExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.document, nil
}

type stubAnalyzer struct {
	calls int

	last analyzer.Input
	text string
}

func (s *stubAnalyzer) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Analysis, error) {
	s.calls++
	s.last = input

	return &analyzer.Analysis{Text: s.text}, nil
}

func newTestHandler(t *testing.T, e extractor.Provider, a *stubAnalyzer) http.Handler {
	t.Helper()

	f, err := fetcher.New()
	require.NoError(t, err)

	cfg := &config.Config{
		Fetcher: f,
	}

	cfg.RegisterExtractor("", e)
	cfg.RegisterAnalyzer("report", a)

	h, err := server.NewHandler(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	return r
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func TestIndexWithoutLink(t *testing.T) {
	upstream := 0

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream++
	}))

	defer remote.Close()

	a := &stubAnalyzer{text: "ok"}
	h := newTestHandler(t, &stubExtractor{}, a)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "How to use this tool")
	require.Contains(t, w.Body.String(), "pdf_link=YOUR_PDF_URL")

	// no trigger yet, so no network call and no analysis
	require.Equal(t, 0, upstream)
	require.Equal(t, 0, a.calls)
}

func TestIndexWithLink(t *testing.T) {
	a := &stubAnalyzer{text: "ok"}
	h := newTestHandler(t, &stubExtractor{}, a)

	req := httptest.NewRequest(http.MethodGet, "/?pdf_link="+url.QueryEscape("https://example.org/report.pdf"), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Analyze PDF Report")
	require.Contains(t, w.Body.String(), "https://example.org/report.pdf")

	// rendering the trigger does not run the pipeline
	require.Equal(t, 0, a.calls)
}

func TestAnalyzeSuccess(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 payload"))
	}))

	defer remote.Close()

	e := &stubExtractor{document: &extractor.Document{Text: "Patient stable"}}
	a := &stubAnalyzer{text: "**Response:** nothing to worry about"}

	h := newTestHandler(t, e, a)

	w := postForm(t, h, "/analyze", url.Values{"pdf_link": {remote.URL + "/report.pdf"}})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Analysis Results")
	require.Contains(t, w.Body.String(), "nothing to worry about")

	require.Equal(t, 1, a.calls)
	require.Equal(t, "Patient stable", a.last.Content)
	require.Equal(t, analyzer.ContentKindText, a.last.Kind)
}

func TestAnalyzeDownloadFailed(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	defer remote.Close()

	a := &stubAnalyzer{text: "ok"}
	h := newTestHandler(t, &stubExtractor{}, a)

	w := postForm(t, h, "/analyze", url.Values{"pdf_link": {remote.URL + "/missing.pdf"}})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Failed to download the PDF from URL")

	// the analyzer must never run when the download fails
	require.Equal(t, 0, a.calls)
}

func TestAnalyzeNoText(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 payload"))
	}))

	defer remote.Close()

	e := &stubExtractor{err: extractor.ErrNoText}
	a := &stubAnalyzer{text: "ok"}

	h := newTestHandler(t, e, a)

	w := postForm(t, h, "/analyze", url.Values{"pdf_link": {remote.URL + "/blank.pdf"}})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Failed to extract text from the PDF.")

	require.Equal(t, 0, a.calls)
}

func TestAnalyzeMissingLink(t *testing.T) {
	a := &stubAnalyzer{text: "ok"}
	h := newTestHandler(t, &stubExtractor{}, a)

	w := postForm(t, h, "/analyze", url.Values{})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "How to use this tool")

	require.Equal(t, 0, a.calls)
}

func TestAnalyzeAPI(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 payload"))
	}))

	defer remote.Close()

	e := &stubExtractor{document: &extractor.Document{Text: "Patient stable"}}
	a := &stubAnalyzer{text: "all clear"}

	h := newTestHandler(t, e, a)

	body, _ := json.Marshal(server.AnalyzeRequest{URL: remote.URL + "/report.pdf"})

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp server.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.ID)
	require.Equal(t, "all clear", resp.Analysis)
	require.False(t, resp.Fallback)
}

func TestAnalyzeAPIMissingURL(t *testing.T) {
	a := &stubAnalyzer{text: "ok"}
	h := newTestHandler(t, &stubExtractor{}, a)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, 0, a.calls)
}
