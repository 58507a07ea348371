package constants

import "net/http"

// CodedError is an error carrying the HTTP status it should surface as.
type CodedError struct {
	message string
	code    int
}

func NewCodedError(message string, code int) *CodedError {
	return &CodedError{message: message, code: code}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidCoordinates = NewCodedError("invalid coordinates", http.StatusBadRequest)
	ErrInvalidRadius      = NewCodedError("invalid radius: must be between 100 and 10000 meters", http.StatusBadRequest)
	ErrInvalidRequest     = NewCodedError("invalid request", http.StatusBadRequest)
)
