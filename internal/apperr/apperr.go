package apperr

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/pkg"
)

var (
	// ErrValidation - a required field is absent or empty, nothing was changed.
	ErrValidation = errors.New("validation error")
	// ErrNotFound - the operation needs a document which does not exist yet.
	ErrNotFound = errors.New("not found")
	// ErrStorageWrite - the document could not be persisted.
	ErrStorageWrite = errors.New("storage write error")
)

type Error struct {
	kind    error
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Message is the part safe to show to the clients.
func (e *Error) Message() string {
	return e.message
}

func (e *Error) Is(target error) bool {
	return target == e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Validation(message string) error {
	return &Error{kind: ErrValidation, message: message}
}

func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

func StorageWrite(document string, cause error) error {
	return &Error{
		kind:    ErrStorageWrite,
		message: fmt.Sprintf("save %s", document),
		cause:   cause,
	}
}

// Status maps an error to the HTTP status code reported to the client.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text put in the error response body.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && !errors.Is(err, ErrStorageWrite) {
		return appErr.Message()
	}
	return "internal server error"
}

// WriteError logs the error and reports it to the client as {"error": "..."}.
// Only failures on the server side are logged as errors.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error(err)
	} else {
		log.Debug(err)
	}
	pkg.WriteJSONError(w, PublicMessage(err), status)
}
