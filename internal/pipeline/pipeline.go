// Package pipeline orchestrates the application-intake decision: validation,
// deduplication, scoring, and threshold-gated notification dispatch.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/marcus/applicant-intake/internal/classify"
	"github.com/marcus/applicant-intake/internal/extract"
	"github.com/marcus/applicant-intake/internal/store"
)

// ScoreThreshold is the minimum match score that triggers an interview
// invitation. Scores below it are persisted without a notification attempt.
const ScoreThreshold = 70.0

// Response messages describing which path a decision took
const (
	msgDuplicate   = "Retrieved existing application score from database"
	msgEligible    = "Candidate has passed the eligibility for interview"
	msgSent        = msgEligible + " and interview invitation sent successfully"
	msgSendFailed  = msgEligible + ", but failed to send the email"
	msgBelowCutoff = "Candidate did not meet the minimum score requirement"
)

// Extractor turns a document into plain text
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// Store is the persistence surface the pipeline needs
type Store interface {
	FindExactMatch(ctx context.Context, email, resumeContent, jobDescription string) (*store.Application, error)
	InsertApplication(ctx context.Context, app *store.Application) (uuid.UUID, error)
	InsertErrorLog(ctx context.Context, message string) error
}

// Classifier decides whether extracted text is a resume
type Classifier interface {
	Classify(ctx context.Context, text string) classify.Result
}

// Summarizer compresses a job description into a requirements paragraph
type Summarizer interface {
	Summarize(ctx context.Context, jobDescription string) (string, error)
}

// Scorer computes the 0-100 match score
type Scorer interface {
	Score(ctx context.Context, resumeText, jobSummary string) (float64, error)
}

// Dispatcher attempts the interview-invitation send and reports delivery.
// Transport failures are absorbed, never propagated.
type Dispatcher interface {
	SendInvitation(ctx context.Context, email string, score float64) bool
}

// Submission is one intake request: a resume document plus the job
// description to match it against.
type Submission struct {
	Filename       string
	Data           []byte
	JobDescription string
}

// Decision is the outcome of processing a submission
type Decision struct {
	Email       string  `json:"email"`
	Score       float64 `json:"score"`
	EmailStatus bool    `json:"email_status"`
	Message     string  `json:"message"`
	Duplicate   bool    `json:"-"`
}

// Config holds processor tunables
type Config struct {
	// UploadDir is the root for persisted uploads; each request writes under
	// its own UUID so identical filenames never interleave.
	UploadDir string
	// CapabilityTimeout bounds every external capability call. Zero disables
	// the bound.
	CapabilityTimeout time.Duration
}

// Processor runs the intake decision state machine
type Processor struct {
	store      Store
	extractor  Extractor
	classifier Classifier
	summarizer Summarizer
	scorer     Scorer
	dispatcher Dispatcher
	cfg        Config
}

// New creates a Processor from its collaborators
func New(st Store, ex Extractor, cl Classifier, su Summarizer, sc Scorer, di Dispatcher, cfg Config) *Processor {
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	return &Processor{
		store:      st,
		extractor:  ex,
		classifier: cl,
		summarizer: su,
		scorer:     sc,
		dispatcher: di,
		cfg:        cfg,
	}
}

// Process runs one submission end to end. Each numbered state is a possible
// terminal exit; every failure path writes an error-log row before returning.
func (p *Processor) Process(ctx context.Context, sub Submission) (*Decision, error) {
	// 1. Format gate
	if !extract.SupportedFormat(sub.Filename) {
		return nil, p.fail(ctx, &ClientError{
			Reason: "Invalid file format. Only PDF and DOCX files are supported.",
		}, fmt.Sprintf("invalid file format, file name: %s", sub.Filename))
	}

	// 2. Persist the upload
	if err := p.saveUpload(sub.Filename, sub.Data); err != nil {
		return nil, p.fail(ctx, &ServerError{Stage: "upload save", Err: err},
			fmt.Sprintf("failed to save uploaded file: %v", err))
	}

	// 3. Extract text
	resumeContent, err := p.extractor.Extract(sub.Filename, sub.Data)
	if err != nil {
		if _, ok := err.(*extract.UnsupportedFormatError); ok {
			return nil, p.fail(ctx, &ClientError{Reason: err.Error()},
				fmt.Sprintf("unsupported format during extraction: %v", err))
		}
		return nil, p.fail(ctx, &UnprocessableError{Stage: "text extraction", Err: err},
			fmt.Sprintf("failed to extract text from resume: %v", err))
	}

	// 4. Classify: non-resume documents are rejected. Fail-closed, so an
	// unreachable classifier rejects too; the log entry keeps the causes
	// distinguishable.
	classifyCtx, cancel := p.bounded(ctx)
	result := p.classifier.Classify(classifyCtx, resumeContent)
	cancel()
	if !result.IsResume {
		logMsg := "uploaded document is not a resume"
		if result.Unavailable {
			logMsg = fmt.Sprintf("resume classifier unavailable, rejecting document: %v", result.Err)
		}
		return nil, p.fail(ctx, &ClientError{
			Reason: "The uploaded document does not appear to be a resume. Please upload a valid resume document.",
		}, logMsg)
	}

	// 5. Find the contact email
	email := extract.FindEmail(resumeContent)
	if email == "" {
		return nil, p.fail(ctx, &ClientError{Reason: "No email address found in resume"},
			"no email address found in resume")
	}

	// 6. Exact-triple dedup lookup. A hit is an idempotent read: the stored
	// decision comes back unchanged, with no re-score and no new
	// notification attempt. Same email with a different resume or job
	// description is NOT a hit; it flows through as a new decision.
	existing, err := p.store.FindExactMatch(ctx, email, resumeContent, sub.JobDescription)
	if err != nil {
		return nil, p.fail(ctx, &ServerError{Stage: "duplicate lookup", Err: err},
			fmt.Sprintf("failed to check for existing application: %v", err))
	}
	if existing != nil {
		return &Decision{
			Email:       email,
			Score:       existing.Score,
			EmailStatus: existing.EmailStatus,
			Message:     msgDuplicate,
			Duplicate:   true,
		}, nil
	}

	// 7. Summarize the job description
	summarizeCtx, cancel := p.bounded(ctx)
	jobSummary, err := p.summarizer.Summarize(summarizeCtx, sub.JobDescription)
	cancel()
	if err != nil {
		return nil, p.fail(ctx, &UnprocessableError{Stage: "job summary generation", Err: err},
			fmt.Sprintf("failed to generate job summary: %v", err))
	}

	// 8. Score
	scoreCtx, cancel := p.bounded(ctx)
	score, err := p.scorer.Score(scoreCtx, resumeContent, jobSummary)
	cancel()
	if err != nil {
		return nil, p.fail(ctx, &UnprocessableError{Stage: "score calculation", Err: err},
			fmt.Sprintf("failed to calculate score: %v", err))
	}

	// 9. Threshold gate. A failed send degrades the message but never
	// aborts persistence of the decision.
	emailSent := false
	message := msgBelowCutoff
	if score >= ScoreThreshold {
		sendCtx, cancel := p.bounded(ctx)
		if p.dispatcher.SendInvitation(sendCtx, email, score) {
			emailSent = true
			message = msgSent
		} else {
			message = msgSendFailed
		}
		cancel()
	}

	// 10. Persist the decision
	app := &store.Application{
		Email:          email,
		ResumeContent:  resumeContent,
		JobDescription: sub.JobDescription,
		Score:          score,
		EmailStatus:    emailSent,
	}
	if _, err := p.store.InsertApplication(ctx, app); err != nil {
		return nil, p.fail(ctx, &ServerError{Stage: "application persistence", Err: err},
			fmt.Sprintf("failed to save application to database: %v", err))
	}

	return &Decision{
		Email:       email,
		Score:       score,
		EmailStatus: emailSent,
		Message:     message,
	}, nil
}

// saveUpload writes the document under a request-scoped directory with an
// exclusive create, so concurrent uploads with identical filenames never
// interleave.
func (p *Processor) saveUpload(filename string, data []byte) error {
	dir := filepath.Join(p.cfg.UploadDir, uuid.New().String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}

// bounded derives a context with the configured capability timeout. Callers
// must invoke the returned cancel func once the capability call returns.
func (p *Processor) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.CapabilityTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.cfg.CapabilityTimeout)
}

// fail records the failure in the append-only error log and returns the
// classified error. Logging is fire-and-forget: its own failure must never
// mask the original error.
func (p *Processor) fail(ctx context.Context, classified error, logMessage string) error {
	if err := p.store.InsertErrorLog(ctx, logMessage); err != nil {
		log.Printf("[pipeline] error log write failed: %v (original: %s)", err, logMessage)
	}
	return classified
}
