package analyzer

import (
	"context"
)

type Provider interface {
	Analyze(ctx context.Context, input Input, options *AnalyzeOptions) (*Analysis, error)
}

type ContentKind string

const (
	ContentKindText  ContentKind = "text"
	ContentKindImage ContentKind = "image"
)

type Input struct {
	Content string

	Kind ContentKind
}

type AnalyzeOptions struct {
	// Notify receives advisory, non-blocking warnings (retry in progress,
	// fallback engaged).
	Notify func(message string)
}

type Analysis struct {
	Text string

	// Fallback marks a locally computed substitute produced after the
	// remote service stayed unavailable.
	Fallback bool
}
