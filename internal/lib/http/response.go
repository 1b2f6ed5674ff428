package httpresponse

import (
	"encoding/json"
	"errors"
	"net/http"

	internalErrors "github.com/tumbleweedd/order_pipeline/internal/lib/errors"
)

type H map[string]any

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(payload)
}

var publicErrors = []error{
	internalErrors.ErrValidation,
	internalErrors.ErrInvalidTransition,
	internalErrors.ErrProcessor,
	internalErrors.ErrSignatureVerification,
	internalErrors.ErrOrderNotFound,
	internalErrors.ErrPaymentNotFound,
	internalErrors.ErrUpstreamUnavailable,
}

// WriteError writes {"message": ...}. Errors that map to 500 are replaced with
// a generic message so internals never reach the caller.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusFor(err)

	message := "internal error"
	if status != http.StatusInternalServerError {
		message = publicMessage(err)
	}

	_ = WriteJSON(w, status, H{"message": message})

	return status
}

// publicMessage renders the sentinel text and, when present, the detail
// attached to it with WithDetail. Wrapped causes stay in the logs.
func publicMessage(err error) string {
	for _, sentinel := range publicErrors {
		if !errors.Is(err, sentinel) {
			continue
		}

		var detailErr *internalErrors.DetailError
		if errors.As(err, &detailErr) && errors.Is(detailErr.Sentinel, sentinel) {
			return detailErr.Error()
		}

		return sentinel.Error()
	}

	return "internal error"
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	_ = WriteJSON(w, status, H{"message": message})
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, internalErrors.ErrValidation),
		errors.Is(err, internalErrors.ErrInvalidTransition),
		errors.Is(err, internalErrors.ErrProcessor),
		errors.Is(err, internalErrors.ErrSignatureVerification):
		return http.StatusBadRequest
	case errors.Is(err, internalErrors.ErrOrderNotFound),
		errors.Is(err, internalErrors.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, internalErrors.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
