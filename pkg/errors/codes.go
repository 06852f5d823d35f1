package errors

import "net/http"

// ErrorCode uniquely identifies a failure category across all layers of the
// service.  Codes are stable integers; never reorder existing entries.
type ErrorCode int

const (
	// CodeOK is the zero value and means "no error".
	CodeOK ErrorCode = 0

	// CodeUnknown marks errors that could not be classified.
	CodeUnknown ErrorCode = 1

	// ── Request / validation errors (4xx) ────────────────────────────────────

	// CodeInvalidParam marks malformed or out-of-range caller input.
	CodeInvalidParam ErrorCode = 1001

	// CodeNotFound marks a missing entity (category, lead, …).
	CodeNotFound ErrorCode = 1002

	// CodeConflict marks a domain state violation (e.g. illegal lead
	// status transition).
	CodeConflict ErrorCode = 1003

	// CodeRateLimit marks a request rejected by the rate limiter.
	CodeRateLimit ErrorCode = 1004

	// ── Server-side errors (5xx) ─────────────────────────────────────────────

	// CodeInternal marks unexpected server-side failures.
	CodeInternal ErrorCode = 2001

	// CodeUnavailable marks a temporarily unreachable dependency.
	CodeUnavailable ErrorCode = 2002

	// CodeDatabaseError marks postgres failures.
	CodeDatabaseError ErrorCode = 2101

	// CodeCacheError marks redis failures.
	CodeCacheError ErrorCode = 2102

	// CodeMessagingError marks kafka publish failures.
	CodeMessagingError ErrorCode = 2103

	// CodeSerialization marks encode/decode failures of stored or
	// transported payloads.
	CodeSerialization ErrorCode = 2104
)

// codeNames maps each code to its canonical snake_case name, used in error
// strings, API bodies, and metric labels.
var codeNames = map[ErrorCode]string{
	CodeOK:             "ok",
	CodeUnknown:        "unknown",
	CodeInvalidParam:   "invalid_param",
	CodeNotFound:       "not_found",
	CodeConflict:       "conflict",
	CodeRateLimit:      "rate_limit",
	CodeInternal:       "internal",
	CodeUnavailable:    "unavailable",
	CodeDatabaseError:  "database_error",
	CodeCacheError:     "cache_error",
	CodeMessagingError: "messaging_error",
	CodeSerialization:  "serialization_error",
}

// String returns the canonical name for the code, or "unknown" for
// unregistered values.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[CodeUnknown]
}

// HTTPStatus maps the code to the HTTP status the interface layer should
// respond with.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
