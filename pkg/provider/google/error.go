package google

import (
	"errors"
	"net/http"

	"github.com/medscan/medscan/pkg/provider"

	"google.golang.org/genai"
)

func convertError(err error) error {
	var apiError genai.APIError

	if !errors.As(err, &apiError) {
		return err
	}

	return &provider.Error{
		Code:    apiError.Code,
		Message: apiError.Message,

		Transient: isTransient(apiError.Code),
	}
}

func isTransient(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	return false
}
