package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/medscan/medscan/pkg/extractor"

	"github.com/ledongthuc/pdf"
)

var _ extractor.Provider = &Extractor{}

type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !detectPDF(file) {
		return nil, extractor.ErrUnsupported
	}

	pages, err := extractPages(file.Content)

	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	if len(pages) == 0 {
		return nil, extractor.ErrNoText
	}

	var texts []string

	for _, page := range pages {
		texts = append(texts, page.Text)
	}

	text := strings.Join(texts, "\n")

	if strings.TrimSpace(text) == "" {
		return nil, extractor.ErrNoText
	}

	return &extractor.Document{
		Text: text,

		Pages: pages,
	}, nil
}

// extractPages parses the document from a uniquely named temporary file that
// is removed again on every path, including parser panics.
func extractPages(content []byte) (pages []extractor.Page, err error) {
	tmp, err := os.CreateTemp("", "report-*.pdf")

	if err != nil {
		return nil, err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, err
	}

	if err := tmp.Close(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed document: %v", r)
		}
	}()

	f, reader, err := pdf.Open(tmp.Name())

	if err != nil {
		return nil, err
	}

	defer f.Close()

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)

		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)

		if err != nil {
			return nil, err
		}

		pages = append(pages, extractor.Page{
			Page: i,
			Text: text,
		})
	}

	return pages, nil
}

func detectPDF(file extractor.File) bool {
	if bytes.HasPrefix(file.Content, []byte("%PDF-")) {
		return true
	}

	if file.Name != "" && strings.ToLower(path.Ext(file.Name)) == ".pdf" {
		return true
	}

	return file.ContentType == "application/pdf"
}
