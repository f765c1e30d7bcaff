package api

import (
	"encoding/json"
	"net/http"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
)

// Envelope is the uniform wrapper every backend endpoint returns. Data
// is kept raw here; callers go through DecodeData so nobody reads Data
// without branching on Success first.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Timestamp  string          `json:"timestamp"`
}

// DecodeData unwraps the envelope into a typed value. A failed envelope
// never yields data; a successful envelope with null/absent data yields
// the zero value (empty result, not an error).
func DecodeData[T any](env *Envelope) (T, error) {
	var zero T
	if env == nil {
		return zero, apperr.Wrap(errEmptyEnvelope)
	}
	if !env.Success {
		return zero, env.Err()
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return zero, nil
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, apperr.Wrap(err)
	}
	return out, nil
}

// Err maps a failed envelope onto the error taxonomy using the
// backend-reported status code and message.
func (env *Envelope) Err() error {
	msg := env.Message
	if msg == "" {
		msg = "The request could not be completed."
	}
	switch env.StatusCode {
	case http.StatusBadRequest:
		return apperr.InvalidErr(msg, nil)
	case http.StatusUnauthorized:
		return apperr.UnauthorizedErr(msg)
	case http.StatusForbidden:
		return apperr.ForbiddenErr(msg)
	case http.StatusNotFound:
		return apperr.NotFoundErr(msg)
	case http.StatusConflict:
		return apperr.ConflictErr(msg)
	default:
		return &apperr.AppError{Kind: apperr.Internal, PublicMsg: msg}
	}
}
