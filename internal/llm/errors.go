package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"github.com/openai/openai-go"
)

// IsQuotaExceeded reports whether err is an API quota or rate-limit
// rejection. Quota errors are deterministic for the remainder of the window
// and must not be retried.
func IsQuotaExceeded(err error) bool {
	var apiErr *openai.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// IsNetworkError reports whether err is a transport-level failure that a
// bounded retry may recover from. Deadline expiry is not a network error.
func IsNetworkError(err error) bool {
	if err == nil || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// The OpenAI client surfaces transport failures as *url.Error.
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
