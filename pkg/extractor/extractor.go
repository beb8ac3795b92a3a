package extractor

import (
	"context"
	"errors"

	"github.com/medscan/medscan/pkg/provider"
)

type Provider interface {
	Extract(ctx context.Context, file File, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
	ErrNoText      = errors.New("no text found")
)

type File = provider.File

type ExtractOptions struct {
}

type Document struct {
	Text string

	Pages []Page
}

type Page struct {
	Page int
	Text string
}
