package errors

import "net/http"

var ErrBoardNotFound = &Exception{
	Message:    "board not found",
	StatusCode: http.StatusNotFound,
}
