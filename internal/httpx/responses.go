package httpx

import (
	"net/http"

	"github.com/goccy/go-json"

	"travelogues/internal/logging"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the body of every non-2xx JSON response. The request id
// travels in the X-Request-Id header.
type ErrorResponse struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v as the response body.
func JSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		InternalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string, details []ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:  statusCode,
		Message: message,
		Details: details,
	})
}

// InternalError logs err with the request id and answers with a generic 500.
// The cause never reaches the client.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	JSONError(w, r, http.StatusInternalServerError, internalErrorMessage, nil)
}
