package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every non-2xx gateway response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] carrying the request's trace id.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	traceID, _ := GetTraceIDFromContext(r.Context())
	_, _ = WriteJSON(w, ErrorResponse{Error: message, TraceID: traceID}, statusCode)
}
