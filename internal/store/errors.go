package store

import (
	"errors"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

// errMalformedPayload marks a response body that could not be decoded.
// Its details are logged but never shown to staff.
var errMalformedPayload = errors.New("malformed backend payload")

// errorMessage picks the backend detail, then the error text, then fallback.
func errorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errMalformedPayload) {
		return fallback
	}
	if be, ok := backend.AsError(err); ok {
		if be.Detail != "" {
			return be.Detail
		}
		if be.Message != "" {
			return be.Message
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

func classify(err error) domainErrors.Kind {
	switch {
	case err == nil:
		return domainErrors.KindNone
	case domainErrors.IsValidation(err):
		return domainErrors.KindValidation
	}
	if be, ok := backend.AsError(err); ok {
		if be.StatusCode == 0 {
			return domainErrors.KindTransport
		}
		return domainErrors.KindServer
	}
	return domainErrors.KindUnknown
}
