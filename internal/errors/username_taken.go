package errors

import "net/http"

var ErrUsernameTaken = &Exception{
	Message:    "this username is already taken",
	StatusCode: http.StatusConflict,
}
