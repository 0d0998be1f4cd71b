package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp.Body())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	rejected := &RejectedError{StatusCode: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		rejected.status = ErrBadRequest
	case http.StatusNotFound:
		rejected.status = ErrNotFound
	case http.StatusConflict:
		rejected.status = ErrConflict
	case http.StatusInternalServerError:
		rejected.status = ErrInternalServerError
	case http.StatusBadGateway:
		rejected.status = ErrBadGateway
	case http.StatusServiceUnavailable:
		rejected.status = ErrServiceUnavailable
	}

	return rejected
}

// errorBody extracts the message of an {"error": "..."} body, falling back to
// the trimmed raw text.
func errorBody(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
