package adapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx response into an error wrapping one of the
// sentinels of this package. The message and reason are read from the
// JSON error envelope when the body carries one.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message, reason := errorDetails(resp.Body())
	if message == "" {
		message = http.StatusText(status)
	}
	if reason != "" {
		message += " (" + reason + ")"
	}

	sentinel, ok := statusErrors[status]
	if !ok {
		return fmt.Errorf("http %d: %s", status, message)
	}

	if status == http.StatusForbidden && reason == reasonRevoked {
		return fmt.Errorf("%w: %w: %s", sentinel, ErrTokenRevoked, message)
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

func errorDetails(body []byte) (message, reason string) {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body)), ""
	}

	fields := gjson.GetManyBytes(body, "error", "reason")
	return fields[0].String(), fields[1].String()
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
