package errors

import "net/http"

// Surfaced to the client as a plain access-denied response; the
// membership detail stays server side.
var ErrNotAMember = &Exception{
	Message:    "access denied",
	StatusCode: http.StatusForbidden,
}
