// Package classify decides whether extracted document text is a resume.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcus/applicant-intake/internal/llm"
)

const resumePrompt = `Analyze the following text and determine if it is from a resume/CV document.
A resume typically contains:
- Personal information (name, contact details)
- Professional summary or objective
- Work experience with dates and descriptions
- Education details
- Skills and qualifications
- Projects or achievements

Return ONLY 'true' if it's a resume, 'false' if it's not.
Do not include any explanations or additional text.
Go through the text thoroughly and then decide if it's a resume or not.

Text to analyze:
%s`

// Result is the tagged outcome of a classification. IsResume is false both
// for genuine non-resume text and when the classifier was unreachable; the
// Unavailable flag lets callers and tests tell the two apart even though the
// pipeline treats both as rejection.
type Result struct {
	IsResume    bool
	Unavailable bool
	Err         error
}

// Classifier asks an LLM for a binary resume/non-resume decision
type Classifier struct {
	client llm.Client
}

// New creates a Classifier backed by the given LLM client
func New(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify returns the classification for the given text. It fails closed:
// any response other than the literal lowercase token "true" means false, and
// a capability failure is reported as non-resume with Unavailable set rather
// than as an error the caller must handle.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	resp, err := c.client.GenerateContent(ctx, fmt.Sprintf(resumePrompt, text))
	if err != nil {
		return Result{IsResume: false, Unavailable: true, Err: err}
	}

	answer := strings.ToLower(strings.TrimSpace(resp))
	return Result{IsResume: answer == "true"}
}
