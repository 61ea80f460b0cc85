package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "unknown role name",
	StatusCode: http.StatusBadRequest,
}
