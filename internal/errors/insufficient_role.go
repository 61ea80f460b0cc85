package errors

import "net/http"

var ErrInsufficientRole = &Exception{
	Message:    "access denied",
	StatusCode: http.StatusForbidden,
}
