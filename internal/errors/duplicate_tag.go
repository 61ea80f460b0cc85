package errors

import "net/http"

var ErrDuplicateTag = &Exception{
	Message:    "a tag with this name already exists in the workspace",
	StatusCode: http.StatusConflict,
}
