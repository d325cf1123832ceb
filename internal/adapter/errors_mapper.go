package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Tristano1/friend-library-system/internal/utils"
)

// statusErrors maps response status codes to the sentinels of this package.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Other statuses yield the
// matching sentinel wrapped with the server's message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}

	if message == "" {
		message = http.StatusText(status)
	}
	return fmt.Errorf("unexpected status %d: %s", status, message)
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw text.
func errorMessage(raw []byte) string {
	var errResp utils.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(raw))
}
