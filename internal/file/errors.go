package file

import (
	"net/http"
)

// Error is a service failure with a stable machine-matchable reason and its
// HTTP-equivalent status.
type Error struct {
	Status int
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

var (
	ErrUnauthorized    = &Error{Status: http.StatusUnauthorized, Reason: "Unauthorized"}
	ErrNotFound        = &Error{Status: http.StatusNotFound, Reason: "Not found"}
	ErrMissingName     = &Error{Status: http.StatusBadRequest, Reason: "Missing name"}
	ErrMissingType     = &Error{Status: http.StatusBadRequest, Reason: "Missing type"}
	ErrMissingData     = &Error{Status: http.StatusBadRequest, Reason: "Missing data"}
	ErrParentNotFound  = &Error{Status: http.StatusBadRequest, Reason: "Parent not found"}
	ErrParentNotFolder = &Error{Status: http.StatusBadRequest, Reason: "Parent is not a folder"}
	ErrFolderNoContent = &Error{Status: http.StatusBadRequest, Reason: "A folder doesn't have content"}
	ErrStorageFailure  = &Error{Status: http.StatusInternalServerError, Reason: "Error saving the file"}
)
