package openload

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure into exactly one category.
type Kind int

const (
	// KindConfiguration covers invalid client construction or arguments,
	// raised before any I/O.
	KindConfiguration Kind = iota + 1
	// KindLocalIO means the local file for an upload could not be read.
	KindLocalIO
	// KindNetwork covers transport failures and timeouts.
	KindNetwork
	// KindProtocol means the response body does not match the expected
	// envelope shape.
	KindProtocol
	// KindAuthentication means the service rejected the credentials.
	KindAuthentication
	// KindNotFound means the service does not know the requested file.
	KindNotFound
	// KindRemoteRejection covers every other failure status reported by
	// the service, such as quota or bandwidth limits.
	KindRemoteRejection
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindLocalIO:
		return "local I/O error"
	case KindNetwork:
		return "network error"
	case KindProtocol:
		return "protocol error"
	case KindAuthentication:
		return "authentication error"
	case KindNotFound:
		return "not found"
	case KindRemoteRejection:
		return "remote rejection"
	default:
		return "unknown error"
	}
}

// Error is the single error type returned by all client operations. Remote
// failures carry the envelope's message verbatim and its status code, so
// callers can tell a legal block (451) from a bandwidth limit (509) without
// extra kinds.
type Error struct {
	Kind       Kind
	StatusCode int    // envelope status for remote failures, 0 otherwise
	Message    string // remote message verbatim, or a local description
	Body       []byte // raw response body, set on protocol errors
	Err        error  // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("openload: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("openload: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("openload: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classifyStatus maps a decoded envelope status to a typed error. A nil
// return means the status is in the success range.
func classifyStatus(status int, msg string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusForbidden:
		return &Error{Kind: KindAuthentication, StatusCode: status, Message: msg}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: status, Message: msg}
	case status >= 400:
		return &Error{Kind: KindRemoteRejection, StatusCode: status, Message: msg}
	default:
		return &Error{Kind: KindProtocol, StatusCode: status, Message: fmt.Sprintf("envelope status %d is outside the API contract", status)}
	}
}

func isKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return isKind(err, KindConfiguration) }

// IsLocalIO reports whether err is a local I/O error.
func IsLocalIO(err error) bool { return isKind(err, KindLocalIO) }

// IsNetwork reports whether err is a network error.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsProtocol reports whether err is a protocol error.
func IsProtocol(err error) bool { return isKind(err, KindProtocol) }

// IsAuthentication reports whether err is an authentication error.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsRemoteRejection reports whether err is a remote rejection.
func IsRemoteRejection(err error) bool { return isKind(err, KindRemoteRejection) }
