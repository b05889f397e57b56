package briefer

import "strings"

// DefaultTargetChunkWords is the chunk size used when no target is given.
// Roughly 600 words keeps a chunk plus its prompt well inside what a
// single model call can absorb.
const DefaultTargetChunkWords = 600

// Chunk is a contiguous, sentence-aligned slice of an article's clean text.
// Chunks for one article form an ordered, non-overlapping sequence whose
// concatenation reconstitutes the input modulo whitespace normalization.
type Chunk struct {
	Index     int
	Text      string
	WordCount int
}

// ChunkText splits text into ordered chunks of roughly targetWords words
// each. Sentences are accumulated greedily and never split: targetWords is
// a soft cap, and a single sentence longer than the cap is kept whole in
// its own chunk. Empty input yields no chunks.
func ChunkText(text string, targetWords int) []Chunk {
	text = NormalizeWhitespace(text)
	if text == "" {
		return nil
	}
	if targetWords <= 0 {
		targetWords = DefaultTargetChunkWords
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		sentences = []string{text}
	}

	var chunks []Chunk
	var current []string
	currentWords := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, Chunk{
			Index:     len(chunks),
			Text:      strings.Join(current, " "),
			WordCount: currentWords,
		})
		current = nil
		currentWords = 0
	}

	for _, sentence := range sentences {
		w := CountWords(sentence)
		if currentWords > 0 && currentWords+w > targetWords {
			flush()
		}
		current = append(current, sentence)
		currentWords += w
	}
	flush()

	return chunks
}
