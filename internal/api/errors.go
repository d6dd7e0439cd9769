package api

import (
	"fmt"
	"net/http"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindDomain is a non-2xx answer the backend explained in its body.
	KindDomain Kind = iota + 1
	// KindNotFound is a 404: the requested record does not exist.
	KindNotFound
	// KindConflict is a 409: the record already exists.
	KindConflict
	// KindUnauthorized is a 401: the token is missing, expired or invalid.
	KindUnauthorized
	// KindNetwork means no HTTP answer was received at all.
	KindNetwork
	// KindDecode means a 2xx body could not be decoded.
	KindDecode
	// KindInvalid means the request failed validation and was never sent.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NetworkErrorMessage is shown for every transport failure.
const NetworkErrorMessage = "Network error. Please try again."

// Error is the failure variant of every Client call.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, zero for network/invalid failures
	Message string // human readable, backend supplied when available
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the package sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is. Only their Kind is compared.
var (
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "conflict"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrNetwork      = &Error{Kind: KindNetwork, Message: NetworkErrorMessage}
	ErrInvalid      = &Error{Kind: KindInvalid, Message: "invalid request"}
)

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnauthorized:
		return KindUnauthorized
	default:
		return KindDomain
	}
}
