package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/utils"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", fhe.ErrGrantRejected, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", fhe.ErrUnknownHandle, body)
	case http.StatusGone:
		return fmt.Errorf("%w: %s", fhe.ErrGrantExpired, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", fhe.ErrInvalidProof, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", fhe.ErrNotReady, body)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrServerError, body)
		}
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts the message of a gateway error body, falling back
// to the raw text.
func errorMessage(body []byte) string {
	var er utils.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		if er.TraceID != "" {
			return fmt.Sprintf("%s (trace %s)", er.Error, er.TraceID)
		}
		return er.Error
	}
	return strings.TrimSpace(string(body))
}
