// Package api exposes a preferences domain over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CreativeUnicorns/switcherprefs"
)

// maxBodyBytes limits request bodies to 1MB.
const maxBodyBytes = 1024 * 1024

// decodeBody decodes the JSON body of r into v, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// statusFor maps store errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, switcherprefs.ErrPreferenceNotDefined), errors.Is(err, switcherprefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, switcherprefs.ErrInvalidKey), errors.Is(err, switcherprefs.ErrInvalidValue),
		errors.Is(err, switcherprefs.ErrInvalidInput), errors.Is(err, switcherprefs.ErrSerialization):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondWithStoreError sends err with the status statusFor assigns to it.
func (s *Server) respondWithStoreError(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.respondWithError(w, r, statusFor(err), message, err)
}

// respondWithError is a helper to send JSON error responses.
func (s *Server) respondWithError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	resp := map[string]interface{}{
		"error": map[string]string{
			"message": message,
		},
	}
	if err != nil {
		resp["error"].(map[string]string)["details"] = err.Error()
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("API Error", "status", status, "message", message, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("API request rejected", "status", status, "message", message, "path", r.URL.Path, "error", err)
	}
	respondWithJSONRaw(w, status, resp)
}

// respondWithJSON is a helper to send JSON responses.
func (s *Server) respondWithJSON(w http.ResponseWriter, _ *http.Request, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"Failed to marshal response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// respondWithJSONRaw is a lower-level helper, useful when payload is already a map for error responses.
func respondWithJSONRaw(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"Critical: Failed to marshal error response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
