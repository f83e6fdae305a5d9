package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sparxrahulpawar/tsxChat/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage extracts the message of a {status, message} body, falling
// back to the raw body and then to the status text.
func errorMessage(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
