package models

import "fmt"

// ValidationError reports the first unmet authoring rule. It never follows a
// network call and is always recoverable: the teacher corrects the input and
// retries.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a plain message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// UploadError wraps the failure of one reference-file upload. Uploads fail
// individually: the file is logged and skipped, the submission continues.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// IdentifierResolutionError means the create-survey response carried no
// recognizable survey id, so the pipeline stopped before publishing. The
// survey may exist upstream in whatever state the backend left it.
type IdentifierResolutionError struct {
	Raw map[string]interface{}
}

func (e *IdentifierResolutionError) Error() string {
	return "create-survey response did not contain a survey id"
}

// SubmissionError is a terminal create/publish failure for one submission
// attempt. Local authoring state is preserved so the teacher can retry.
type SubmissionError struct {
	Op  string // "create" or "publish"
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("survey %s failed: %v", e.Op, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
