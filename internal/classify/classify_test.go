package classify

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeLLM returns a canned response or error
type fakeLLM struct {
	response string
	err      error
	prompt   string
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Close() error { return nil }

func TestClassify_Responses(t *testing.T) {
	tests := []struct {
		name     string
		response string
		isResume bool
	}{
		{"literal true", "true", true},
		{"true with whitespace", "  true\n", true},
		{"uppercase true", "TRUE", true},
		{"literal false", "false", false},
		{"explanation instead of token", "Yes, this looks like a resume.", false},
		{"empty response", "", false},
		{"true embedded in prose", "the answer is true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeLLM{response: tt.response})
			result := c.Classify(context.Background(), "some document text")

			assert.Equal(t, tt.isResume, result.IsResume)
			assert.False(t, result.Unavailable)
		})
	}
}

func TestClassify_FailsClosedWhenUnavailable(t *testing.T) {
	c := New(&fakeLLM{err: fmt.Errorf("connection refused")})
	result := c.Classify(context.Background(), "some document text")

	assert.False(t, result.IsResume, "an unreachable classifier must reject, not crash")
	assert.True(t, result.Unavailable)
	assert.Error(t, result.Err)
}

func TestClassify_PromptContainsDocumentText(t *testing.T) {
	llm := &fakeLLM{response: "true"}
	c := New(llm)
	c.Classify(context.Background(), "Jane Doe, Software Engineer")

	assert.True(t, strings.Contains(llm.prompt, "Jane Doe, Software Engineer"))
	assert.True(t, strings.Contains(llm.prompt, "resume/CV document"))
}
