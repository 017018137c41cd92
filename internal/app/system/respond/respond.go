// Package respond writes the JSON result object every API call returns:
//
//	{"success": true, "message": "...", <payload fields>}
//
// Failures carry the user-facing message of the outcome error and an HTTP
// status derived from its kind.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/limits"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"go.uber.org/zap"
)

// Fields is extra payload merged into the result object.
type Fields map[string]any

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a successful result.
func OK(w http.ResponseWriter, message string, payload Fields) {
	Result(w, http.StatusOK, true, message, payload)
}

// Created writes a successful result with 201.
func Created(w http.ResponseWriter, message string, payload Fields) {
	Result(w, http.StatusCreated, true, message, payload)
}

// Fail writes a failed result with an explicit status.
func Fail(w http.ResponseWriter, status int, message string) {
	Result(w, status, false, message, nil)
}

// Result writes the result object.
func Result(w http.ResponseWriter, status int, success bool, message string, payload Fields) {
	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = success
	if message != "" {
		body["message"] = message
	}
	JSON(w, status, body)
}

// Error writes err as a failed result. Outcome errors keep their message;
// anything else is logged and reported generically.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("request failed", zap.Error(err))
	}
	Fail(w, status, outcome.Message(err))
}

// Status maps an error kind to an HTTP status.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, outcome.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, outcome.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, outcome.ErrNotFound), errors.Is(err, outcome.ErrNotFoundOrForbidden):
		return http.StatusNotFound
	case errors.Is(err, outcome.ErrDuplicateApplication),
		errors.Is(err, outcome.ErrEmailInUse),
		errors.Is(err, outcome.ErrAlreadyRegistered),
		errors.Is(err, outcome.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, outcome.ErrInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, outcome.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON request body into v. A malformed body is an
// ErrInvalid outcome.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBody))
	if err := dec.Decode(v); err != nil {
		return outcome.Fail(outcome.ErrInvalid, "Request body is not valid JSON")
	}
	return nil
}

// DecodeOptional is Decode for requests whose body may be absent. An
// empty body leaves v untouched, however the client framed it.
func DecodeOptional(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return outcome.Fail(outcome.ErrInvalid, "Request body is not valid JSON")
	}
	return nil
}
