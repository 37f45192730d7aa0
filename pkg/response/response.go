package response

import (
	"encoding/json"
	"net/http"

	"github.com/tair/storefront/pkg/apperr"
)

// Response is the envelope every JSON endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON writes payload with the given status code
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// OK writes a successful envelope
func OK(w http.ResponseWriter, status int, message string, data interface{}) {
	JSON(w, status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failed envelope with an explicit status
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// FromError maps a use-case error onto status and message
func FromError(w http.ResponseWriter, err error) {
	Error(w, apperr.HTTPStatus(err), apperr.Message(err))
}
