package httputil

import (
	"encoding/json"
	"net/http"
)

// Error codes used in response bodies. The extension matches on these
// strings, so they are part of the wire contract.
const (
	CodeUnauthorized       = "unauthorized"
	CodeTextRequired       = "text_required"
	CodeInvalidParent      = "invalid_parent"
	CodeNotFound           = "not_found"
	CodeBadRequest         = "bad_request"
	CodeInvalidState       = "invalid_state"
	CodeMissingCode        = "missing_code"
	CodeInvalidProfile     = "invalid_profile"
	CodeTokenExchange      = "token_exchange_failed"
	CodeOAuthNotConfigured = "google_oauth_not_configured"
	CodeInternal           = "internal_error"
)

// ErrorResponse is the flat error body: {"error": "<code>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already sent; nothing left to do.
			return
		}
	}
}

// WriteError writes {"error": "<code>"} with the given status.
func WriteError(w http.ResponseWriter, status int, code string) {
	WriteJSON(w, status, ErrorResponse{Error: code})
}

// WriteUnauthorized writes a 401 with the unauthorized code.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, CodeUnauthorized)
}

// WriteNotFound writes a 404 with the not_found code.
func WriteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, CodeNotFound)
}

// WriteBadRequest writes a 400 with the given code.
func WriteBadRequest(w http.ResponseWriter, code string) {
	WriteError(w, http.StatusBadRequest, code)
}

// WriteInternalError writes a 500 with the internal_error code.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, CodeInternal)
}
