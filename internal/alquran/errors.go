package alquran

import "errors"

// Kind classifies a failed API call. Every error returned by Client carries
// exactly one kind so consumers can branch without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindRateLimited
	KindServerError
	KindTimeout
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindServerError:
		return "server_error"
	case KindTimeout:
		return "timeout"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a failed API call translated into the client's taxonomy. Message
// is human-readable and safe to show to the user as-is.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the kind from an error returned by Client. Errors from
// other sources report KindUnknown.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}
