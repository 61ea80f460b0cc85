package errors

import "net/http"

var ErrInvalidInvite = &Exception{
	Message:    "invite link is invalid or has expired",
	StatusCode: http.StatusForbidden,
}
