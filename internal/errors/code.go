package errors

import "net/http"

// map[code]status ; canonical status text per HTTP code
var statusMap = map[int32]string{
	// [400]x
	http.StatusBadRequest:         "BAD_REQUEST",
	http.StatusUnauthorized:       "UNAUTHORIZED",
	http.StatusForbidden:          "FORBIDDEN",
	http.StatusNotFound:           "NOT_FOUND",
	http.StatusMethodNotAllowed:   "METHOD_NOT_ALLOWED",
	http.StatusRequestTimeout:     "REQUEST_TIMEOUT",
	http.StatusConflict:           "CONFLICT",
	http.StatusPreconditionFailed: "PRECONDITION_FAILED",
	http.StatusTooManyRequests:    "TOO_MANY_REQUESTS",
	// [500]x
	http.StatusInternalServerError: "INTERNAL_SERVER_ERROR",
	http.StatusNotImplemented:      "NOT_IMPLEMENTED",
	http.StatusBadGateway:          "BAD_GATEWAY",
	http.StatusServiceUnavailable:  "SERVICE_UNAVAILABLE",
	http.StatusGatewayTimeout:      "GATEWAY_TIMEOUT",
}

func StatusText(code int32) string {
	if code < 0 {
		code *= -1 // make positive !
	}
	if text, ok := statusMap[code]; ok {
		return text
	}
	return "UNKNOWN"
}

// FromResponse builds an *Error out of a non-2xx response body.
// A JSON body is parsed for details; anything else becomes the message.
// Blank Code/Status fields are backfilled from the HTTP status code.
func FromResponse(code int, body string) *Error {
	err, _ := Parse(body)
	if err == nil {
		err = New()
	}
	if err.Code == 0 {
		err.Code = int32(code)
	}
	if err.Status == "" {
		err.Status = StatusText(err.Code)
	}
	if err.Message == "" {
		err.Message = http.StatusText(code)
	}
	return err
}

// Canonical "session expired" error raised for ANY request
// the remote API rejects with 401: all callers catch identically.
func SessionExpired() *Error {
	return Unauthorized(
		Status("SESSION_EXPIRED"),
		Message("console: session expired ; sign in again"),
	)
}

// IsSessionExpired reports whether [src] is the canonical session-expiry error.
func IsSessionExpired(src error) bool {
	err, ok := FromError(src)
	return ok && err != nil && err.Status == "SESSION_EXPIRED"
}
