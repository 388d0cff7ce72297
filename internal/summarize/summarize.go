// Package summarize compresses a job description into a single normalized
// requirements paragraph for scoring.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcus/applicant-intake/internal/llm"
)

const summaryPrompt = `Create a single, concise paragraph that summarizes ALL key requirements and skills from this job description.
Focus on technical skills, qualifications, experience levels, and essential requirements.
Include specific technologies, tools, education, and experience requirements.

Format: Return ONLY the summary paragraph, nothing else.

Example output:
"Looking for a Python developer with FastAPI experience, AWS cloud knowledge, and machine learning skills. Requires Bachelor's in Computer Science or related field, familiarity with Git version control, and REST APIs. Must have basic understanding of Docker, CI/CD pipelines, and database systems. Fresh graduates with 0-2 years experience and strong problem-solving skills are welcome."

Job Description to analyze:
%s`

// UnavailableError indicates the summarization capability failed; the current
// request cannot be scored.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("job summary generation failed: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Summarizer produces one-paragraph job requirement summaries
type Summarizer struct {
	client llm.Client
}

// New creates a Summarizer backed by the given LLM client
func New(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize returns the requirements paragraph for a job description. A
// capability failure surfaces as *UnavailableError; callers must treat it as
// a terminal processing error for the request, never as a summary to score
// against.
func (s *Summarizer) Summarize(ctx context.Context, jobDescription string) (string, error) {
	resp, err := s.client.GenerateContent(ctx, fmt.Sprintf(summaryPrompt, jobDescription))
	if err != nil {
		return "", &UnavailableError{Err: err}
	}

	summary := strings.TrimSpace(resp)
	if summary == "" {
		return "", &UnavailableError{Err: fmt.Errorf("model returned an empty summary")}
	}
	return summary, nil
}
