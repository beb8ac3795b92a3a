package google

import (
	"errors"
	"fmt"
	"testing"

	"github.com/medscan/medscan/pkg/provider"

	"google.golang.org/genai"
)

func TestConvertError(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		transient bool
	}{
		{"rate limited", 429, true},
		{"server fault", 500, true},
		{"unavailable", 503, true},
		{"bad request", 400, false},
		{"unauthorized", 401, false},
		{"not found", 404, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := convertError(genai.APIError{Code: tt.code, Message: tt.name})

			var perr *provider.Error

			if !errors.As(err, &perr) {
				t.Fatalf("expected *provider.Error, got %T", err)
			}

			if perr.Code != tt.code {
				t.Errorf("code = %d, want %d", perr.Code, tt.code)
			}

			if provider.IsTemporary(err) != tt.transient {
				t.Errorf("IsTemporary = %v, want %v", provider.IsTemporary(err), tt.transient)
			}
		})
	}
}

func TestConvertErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", genai.APIError{Code: 503, Message: "overloaded"})

	if !provider.IsTemporary(convertError(wrapped)) {
		t.Error("wrapped transient API error not classified as temporary")
	}
}

func TestConvertErrorPassthrough(t *testing.T) {
	plain := errors.New("connection refused")

	if got := convertError(plain); got != plain {
		t.Errorf("non-API error should pass through unchanged, got %v", got)
	}

	if provider.IsTemporary(plain) {
		t.Error("plain error should not be temporary")
	}
}
