package multi

import (
	"context"
	"testing"

	"github.com/medscan/medscan/pkg/extractor"
)

type stub struct {
	document *extractor.Document
	err      error

	calls int
}

func (s *stub) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	s.calls++

	if s.err != nil {
		return nil, s.err
	}

	return s.document, nil
}

func TestExtractFirstSupporting(t *testing.T) {
	first := &stub{err: extractor.ErrUnsupported}
	second := &stub{document: &extractor.Document{Text: "Patient stable"}}
	third := &stub{document: &extractor.Document{Text: "never reached"}}

	e := New(first, second, third)

	result, err := e.Extract(context.Background(), extractor.File{}, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Text != "Patient stable" {
		t.Errorf("Text = %q", result.Text)
	}

	if first.calls != 1 || second.calls != 1 || third.calls != 0 {
		t.Errorf("calls = %d/%d/%d, want 1/1/0", first.calls, second.calls, third.calls)
	}
}

func TestExtractAllUnsupported(t *testing.T) {
	e := New(&stub{err: extractor.ErrUnsupported}, &stub{err: extractor.ErrNoText})

	_, err := e.Extract(context.Background(), extractor.File{}, nil)

	if err != extractor.ErrUnsupported {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestExtractEmpty(t *testing.T) {
	e := New()

	if _, err := e.Extract(context.Background(), extractor.File{}, nil); err != extractor.ErrUnsupported {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
