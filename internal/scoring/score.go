// Package scoring computes the semantic match score between a resume and a
// job requirements summary using centroid embeddings.
package scoring

import (
	"context"
	"fmt"
	"math"
)

// Embedder turns a batch of text chunks into fixed-dimension vectors
type Embedder interface {
	Embed(ctx context.Context, chunks []string) ([][]float32, error)
}

// Scorer computes 0-100 similarity scores between documents
type Scorer struct {
	embedder Embedder
}

// New creates a Scorer backed by the given embedder
func New(embedder Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Score returns the cosine similarity between the centroid embeddings of the
// resume and job summary, scaled to [0, 100] and rounded to two decimals.
// An empty job summary short-circuits to 0.0 without invoking the embedder.
// Embedding failures surface as errors; the caller decides how to report them.
func (s *Scorer) Score(ctx context.Context, resumeText, jobSummary string) (float64, error) {
	if jobSummary == "" {
		return 0.0, nil
	}

	resumeCentroid, err := s.centroid(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume: %w", err)
	}
	summaryCentroid, err := s.centroid(ctx, jobSummary)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job summary: %w", err)
	}

	similarity, err := cosineSimilarity(resumeCentroid, summaryCentroid)
	if err != nil {
		return 0, err
	}

	score := similarity * 100
	score = math.Min(100.0, math.Max(0.0, score))
	return math.Round(score*100) / 100, nil
}

// centroid embeds every chunk of the text and averages the vectors
func (s *Scorer) centroid(ctx context.Context, text string) ([]float64, error) {
	chunks := Chunk(text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text chunks to embed")
	}

	vectors, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vectors")
	}

	dim := len(vectors[0])
	centroid := make([]float64, dim)
	for _, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("inconsistent embedding dimensions: %d vs %d", len(vec), dim)
		}
		for i, v := range vec {
			centroid[i] += float64(v)
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(vectors))
	}
	return centroid, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors
func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude embedding vector")
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
