package server

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/marcus/applicant-intake/internal/pipeline"
)

// maxUploadBytes caps the multipart form held in memory
const maxUploadBytes = 16 << 20

// JobApplicationRequest represents the fields of one intake submission
type JobApplicationRequest struct {
	Filename       string `validate:"required"`
	JobDescription string `validate:"required"`
}

// Validate validates the JobApplicationRequest using the validator
func (r *JobApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// JobApplicationResponse is the success body for a processed submission
type JobApplicationResponse struct {
	Email          string  `json:"email"`
	Score          float64 `json:"score"`
	EmailStatus    bool    `json:"email_status"`
	Message        string  `json:"message"`
	JobDescription string  `json:"job_description,omitempty"`
}

// handleJobApplication accepts a multipart submission of one resume file plus
// a job_description text field and runs it through the decision pipeline.
func (s *Server) handleJobApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	req := JobApplicationRequest{
		Filename:       header.Filename,
		JobDescription: r.FormValue("job_description"),
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_description field is required")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}

	decision, err := s.processor.Process(r.Context(), pipeline.Submission{
		Filename:       req.Filename,
		Data:           data,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), clientMessage(err))
		return
	}

	resp := JobApplicationResponse{
		Email:       decision.Email,
		Score:       decision.Score,
		EmailStatus: decision.EmailStatus,
		Message:     decision.Message,
	}
	if decision.Duplicate {
		// Echo the job description so callers can see which triple matched.
		resp.JobDescription = req.JobDescription
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
