package server

import (
	"net/http"

	"github.com/marcus/applicant-intake/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *pipeline.ClientError:
		return http.StatusBadRequest
	case *pipeline.UnprocessableError:
		return http.StatusUnprocessableEntity
	case *pipeline.ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the error text safe to surface to the caller. Server
// faults are reported generically; the detail already went to the error log.
func clientMessage(err error) string {
	switch err.(type) {
	case *pipeline.ClientError, *pipeline.UnprocessableError:
		return err.Error()
	default:
		return "internal server error"
	}
}
