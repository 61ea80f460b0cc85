package errors

import (
	"errors"
	"net/http"
)

// Exception is the one error shape the API layer renders: the message
// goes to the client verbatim and the status code picks the response.
// The access denials deliberately share one opaque message so a caller
// cannot tell a membership failure from a scope failure.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode extracts the HTTP status of a service error; anything
// that is not an Exception renders as a 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
