package errors

import "net/http"

var ErrListNotFound = &Exception{
	Message:    "list not found",
	StatusCode: http.StatusNotFound,
}
