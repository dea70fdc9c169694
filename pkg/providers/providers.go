// Package providers contains the upstream vendor clients and the plumbing
// they share. Every client is a thin pass-through: it builds the vendor
// request, injects the credential, and hands the raw JSON back to the API
// layer without modeling the vendor's field shapes.
package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// UpstreamError is returned for any non-2xx vendor response. It carries
// the vendor's own status code and raw body so the API layer can propagate
// both to the caller.
type UpstreamError struct {
	// StatusCode is the HTTP status the vendor answered with.
	StatusCode int

	// Body is the raw response body, trimmed.
	Body string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// AsUpstreamError unwraps err into an *UpstreamError if one is in the
// chain.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// NewRestyClient creates the shared resty client used by all vendor
// clients.
func NewRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// Raw returns the response body for a 2xx response, otherwise an
// *UpstreamError with the vendor's status and body. A 2xx body that is
// not valid JSON is an error: it cannot be embedded in a JSON envelope.
func Raw(resp *resty.Response) (json.RawMessage, error) {
	if err := responseError(resp); err != nil {
		return nil, err
	}
	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf(
			"upstream returned invalid JSON (status %d)", resp.StatusCode())
	}
	return json.RawMessage(body), nil
}

// Field extracts a top-level field (e.g. Cloudflare's "result") from a
// 2xx JSON response. The field's value is returned untouched.
func Field(resp *resty.Response, name string) (json.RawMessage, error) {
	if err := responseError(resp); err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("error decoding upstream response: %w", err)
	}

	value, ok := envelope[name]
	if !ok {
		return nil, fmt.Errorf("upstream response missing %q field", name)
	}
	return value, nil
}

func responseError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}
	return &UpstreamError{
		StatusCode: code,
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}
