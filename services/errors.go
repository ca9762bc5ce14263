package services

import "fmt"

// FailureKind classifies an AppError along the boundaries that matter to
// callers: which failures abort an operation and which are swallowed.
type FailureKind string

const (
	KindAuth        FailureKind = "auth"
	KindStorage     FailureKind = "storage"
	KindThumbnail   FailureKind = "thumbnail"
	KindPersistence FailureKind = "persistence"
	KindValidation  FailureKind = "validation"
	KindConflict    FailureKind = "conflict"
)

type AppError struct {
	Kind     FailureKind
	HTTPCode int
	Message  string
	Err      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newAppError(kind FailureKind, httpCode int, message string, err error) *AppError {
	return &AppError{Kind: kind, HTTPCode: httpCode, Message: message, Err: err}
}
