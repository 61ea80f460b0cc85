package errors

import "net/http"

var ErrScopeMismatch = &Exception{
	Message:    "access denied",
	StatusCode: http.StatusForbidden,
}
