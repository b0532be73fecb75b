package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ocrd/internal/service"
	"ocrd/pkg/types"
)

// internalMessage is the sanitized reply for server-fault failures; the
// detailed message only goes to the log.
const internalMessage = "An internal server error has occurred."

// writeError maps a taxonomy error to its HTTP shape and returns the status
// written. The detailed message is always logged; the externally visible one
// is precise only for client-correctable validation failures.
func writeError(w http.ResponseWriter, r *http.Request, err error) int {
	var status int
	var message string
	switch {
	case service.IsInvalidBody(err):
		status = http.StatusBadRequest
		message = err.Error()
	case service.IsInvalidRequest(err):
		status = http.StatusBadRequest
		message = err.Error()
	case service.IsInternal(err):
		status = http.StatusInternalServerError
		message = internalMessage
	default:
		status = http.StatusInternalServerError
		message = internalMessage
	}
	logError(r).Int("status", status).Msg(err.Error())
	writeJSON(w, status, types.ErrorResponse{Message: message})
	return status
}

// errBadMultipart converts a multipart reader setup failure into the taxonomy.
// A missing or non-multipart Content-Type header is the transport boundary's
// fault; an oversized body surfaces as a buffering failure.
func errBadMultipart(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return service.ErrInvalidBody(service.BodyBuffering)
	}
	if errors.Is(err, http.ErrNotMultipart) || strings.Contains(err.Error(), "Content-Type") {
		return service.ErrInvalidRequest("Request body is not multipart/form-data")
	}
	return service.ErrInvalidRequest(err.Error())
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
