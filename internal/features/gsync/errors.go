package gsync

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies provider failures so callers can branch without
// sniffing message strings.
type ErrorKind string

const (
	// KindAuthRequired means the workspace has no valid OAuth grant; the UI
	// must offer a re-authorize action instead of a generic error banner.
	KindAuthRequired ErrorKind = "auth_required"
	// KindInvalid means the request itself was rejected.
	KindInvalid ErrorKind = "invalid"
	// KindTransient covers network failures and provider 5xx responses.
	KindTransient ErrorKind = "transient"
)

// ProviderError is any failure from the contacts provider bridge.
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider: %s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider: %s: %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// IsAuthRequired reports whether err is an authorization-required provider
// failure.
func IsAuthRequired(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Kind == KindAuthRequired
}

// ErrPollTimeout is returned when a poll loop exhausts its attempts without
// the job reaching a terminal status. Distinct from a provider-reported
// failure.
var ErrPollTimeout = errors.New("sync status polling timed out before job completion")

// classifyProvider maps an HTTP status plus upstream message to an error kind.
// The provider bridge predates structured error codes, so an oauth-shaped
// message on any status still counts as auth-required.
func classifyProvider(statusCode int, message string) ErrorKind {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return KindAuthRequired
	}

	lower := strings.ToLower(message)
	for _, marker := range []string{"oauth", "token", "authorize", "authorization"} {
		if strings.Contains(lower, marker) {
			return KindAuthRequired
		}
	}

	if statusCode >= 400 && statusCode < 500 {
		return KindInvalid
	}
	return KindTransient
}
