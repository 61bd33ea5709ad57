package config

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Hint      string `json:"hint,omitempty"`
	ElapsedMS *int64 `json:"elapsed_ms,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a structured error without timing information, for
// validation failures and other pre-storage rejections.
func Error(w http.ResponseWriter, status int, errMsg, message string) {
	JSON(w, status, ErrorBody{Error: errMsg, Message: message})
}

// QueryError classifies a storage error and writes the matching response:
// lock contention and exceeded deadlines become 504s, everything else is a
// 500 carrying the underlying message. The elapsed time since the handler
// started is included as a diagnostic.
func QueryError(w http.ResponseWriter, start time.Time, err error) {
	elapsed := time.Since(start).Milliseconds()
	body := ErrorBody{ElapsedMS: &elapsed}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		body.Error = "timeout"
		body.Message = "request exceeded the storage deadline"
		JSON(w, http.StatusGatewayTimeout, body)
	case isLockTimeout(err):
		body.Error = "lock timeout"
		body.Message = "could not acquire the write lock within the busy timeout"
		JSON(w, http.StatusGatewayTimeout, body)
	default:
		body.Error = "query failed"
		body.Message = err.Error()
		JSON(w, http.StatusInternalServerError, body)
	}
}

func isLockTimeout(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
