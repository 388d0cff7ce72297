package pipeline

import "fmt"

// The pipeline classifies every failure into one of three classes. Client
// errors are caused by the submission itself and surfaced verbatim.
// Unprocessable errors mean the pipeline ran but a downstream capability
// failed or returned an unusable result. Server errors are storage or
// infrastructure faults, surfaced generically while the detail goes to the
// error log. Nothing is retried automatically in any class.

// ClientError indicates a malformed or unsupported submission
type ClientError struct {
	Reason string
}

func (e *ClientError) Error() string { return e.Reason }

// UnprocessableError indicates a downstream capability failed mid-pipeline
type UnprocessableError struct {
	Stage string
	Err   error
}

func (e *UnprocessableError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *UnprocessableError) Unwrap() error { return e.Err }

// ServerError indicates a storage or infrastructure fault
type ServerError struct {
	Stage string
	Err   error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ServerError) Unwrap() error { return e.Err }
