// Package apierror gives every huma error response the same body
// shape as the record handlers: {"status":"error","message":...}.
package apierror

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const statusError = "error"

// Error is the body of every failed API response.
type Error struct {
	status  int
	Status  string `json:"status" example:"error" doc:"Always \"error\""`
	Message string `json:"message" example:"Data not found" doc:"Human readable reason"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// New builds an Error. Details are appended to client errors only, so
// 5xx bodies never leak internals.
func New(status int, msg string, errs ...error) huma.StatusError {
	if status < 500 && len(errs) > 0 {
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) > 0 {
			msg = msg + ": " + strings.Join(details, "; ")
		}
	}
	return &Error{status: status, Status: statusError, Message: msg}
}

// Install replaces huma's default RFC 7807 error constructor.
func Install() {
	huma.NewError = New
}
