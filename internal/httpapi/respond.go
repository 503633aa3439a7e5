package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, e *HTTPError) {
	if e.RequestID == "" {
		e.RequestID = GetRequestID(r.Context())
	}
	writeJSON(w, e.Code, map[string]*HTTPError{"error": e})
}

// decodeJSON reads a single JSON object and rejects unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return newHTTPError(http.StatusRequestEntityTooLarge, CodeInvalidRequest, "request body too large", err)
		}
		return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf("invalid JSON body: %v", err), err)
	}
	if dec.More() {
		return errBadRequest("request body must contain a single JSON object")
	}
	return nil
}
