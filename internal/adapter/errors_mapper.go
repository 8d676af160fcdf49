package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/vaultward/vaultward/models"
)

// mapHTTPError converts a non-2xx response into an [*APIError] wrapped
// with the matching sentinel. 2xx responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := newAPIError(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, apiErr)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConflict, apiErr)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, apiErr)
	default:
		return apiErr
	}
}

// newAPIError extracts the service-provided error code and message from
// the response body, substituting "http_<status>" and the status text
// when the body carries none.
func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Code:       fmt.Sprintf("http_%d", resp.StatusCode()),
	}

	body := strings.TrimSpace(string(resp.Body()))

	var parsed models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil {
		if parsed.Code != "" {
			apiErr.Code = parsed.Code
		}
		switch {
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = body
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
