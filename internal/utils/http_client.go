package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent        = "go-api-hub-client"
	retryCount       = 2
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// HTTPClient embeds *resty.Client so every resty method is available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself as the
// API hub client and retries transport errors, 429 and 503 responses a few
// times with backoff.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(retryableResponse)

	return &HTTPClient{Client: client}
}

func retryableResponse(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return true
	}
	return false
}
