package errors

import "net/http"

var ErrCommentNotFound = &Exception{
	Message:    "comment not found",
	StatusCode: http.StatusNotFound,
}
