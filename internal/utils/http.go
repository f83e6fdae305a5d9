package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// fallbackErrorBody is written when data cannot be encoded.
var fallbackErrorBody = mustMarshal(models.ErrorResponse{
	Status:  models.StatusError,
	Message: app.MsgInternalServerError,
})

// WriteJSON writes data, usually a [models.Response] or
// [models.ErrorResponse], as an application/json body with statusCode.
//
// If data cannot be encoded nothing of it is sent: the client gets a 500
// error envelope and the encoding error is returned for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(fallbackErrorBody)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
