package api

import (
	"errors"
	"net/http"

	"shoplens/internal/auth"
	"shoplens/pkg/problems"
	"shoplens/pkg/tenants"
	"shoplens/pkg/tokens"
)

type errorResponse struct {
	Type   string            `json:"type,omitempty"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, errorResponse{
		Type:  problems.Type("unauthorized"),
		Error: "Unauthorized",
	}, http.StatusUnauthorized)
}

func writeValidation(w http.ResponseWriter, msg string, fields map[string]string) {
	writeJSON(w, errorResponse{
		Type:   problems.Type("validation"),
		Error:  msg,
		Fields: fields,
	}, http.StatusBadRequest)
}

// writeServiceError maps auth/store failures onto the response
// taxonomy. Credential and token failures stay uniform; anything
// unrecognized becomes a generic 500 with the detail logged only
// server-side.
func (a *App) writeServiceError(w http.ResponseWriter, err error) {
	var unreachable *auth.IntegrationUnreachableError
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrWeakPassword):
		writeValidation(w, err.Error(), map[string]string{"password": err.Error()})
	case errors.Is(err, tenants.ErrDuplicateEmail):
		writeValidation(w, err.Error(), map[string]string{"email": err.Error()})
	case errors.Is(err, auth.ErrIncompleteIntegration):
		writeJSON(w, errorResponse{
			Type:  problems.Type("incomplete-integration"),
			Error: err.Error(),
		}, http.StatusBadRequest)
	case errors.As(err, &unreachable):
		writeJSON(w, errorResponse{
			Type:  problems.Type("integration-unreachable"),
			Error: "could not reach Shopify with the provided credentials",
		}, http.StatusBadRequest)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSON(w, errorResponse{
			Type:  problems.Type("invalid-credentials"),
			Error: "Invalid credentials",
		}, http.StatusUnauthorized)
	case errors.Is(err, tokens.ErrInvalidToken):
		writeUnauthorized(w)
	default:
		a.log.Errorw("internal error", "err", err)
		writeJSON(w, errorResponse{
			Type:  problems.Type("internal"),
			Error: "Internal server error",
		}, http.StatusInternalServerError)
	}
}
