package scoring

import "strings"

// Chunk splits text into sentence-level chunks plus clause-level sub-chunks.
// Text is lowercased and split on periods, then each sentence is additionally
// split on commas; both levels are embedded independently. Short,
// lexically-dense clauses give more stable embeddings than one long
// heterogeneous paragraph.
func Chunk(text string) []string {
	var sentences []string
	for _, sentence := range strings.Split(strings.ToLower(text), ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
	}

	if len(sentences) == 0 {
		return nil
	}

	chunks := append([]string{}, sentences...)
	for _, sentence := range sentences {
		for _, clause := range strings.Split(sentence, ",") {
			clause = strings.TrimSpace(clause)
			if clause != "" {
				chunks = append(chunks, clause)
			}
		}
	}
	return chunks
}
