package briefer

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims leading/trailing whitespace. Word counts are only comparable across
// extraction methods after normalization.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CountWords returns the number of whitespace-separated words in text.
// Word count is the contractual unit for all budgets in this package.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// StripControlChars removes NULL bytes and control characters from s,
// keeping common whitespace (\n, \r, \t). Some pages embed control
// characters that break HTML parsers downstream.
func StripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r == 0 || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// isSentenceTrailer reports whether r may follow terminal punctuation
// while still belonging to the same sentence (closing quotes, brackets,
// repeated punctuation like "?!" or "...").
func isSentenceTrailer(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// SplitSentences splits text into sentences using a boundary heuristic:
// terminal punctuation ('.', '!', '?'), optionally followed by closing
// quotes or brackets, then whitespace and a capital letter or digit, or
// end of input. Returned sentences are trimmed of surrounding whitespace.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	appendSentence := func(end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Absorb trailing quotes, brackets, and repeated punctuation.
		end := i + 1
		for end < len(runes) && isSentenceTrailer(runes[end]) {
			end++
		}

		// Skip whitespace to find the start of the next sentence.
		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}

		if next == len(runes) {
			appendSentence(end)
			start = next
			i = len(runes)
			break
		}

		// Only treat this as a boundary if whitespace was present and the
		// next sentence opens with a capital letter or digit. This keeps
		// abbreviations like "e.g. lowercase" and decimals intact.
		if next > end && (unicode.IsUpper(runes[next]) || unicode.IsDigit(runes[next])) {
			appendSentence(end)
			start = next
			i = next - 1
		} else {
			i = end - 1
		}
	}

	if start < len(runes) {
		appendSentence(len(runes))
	}

	return sentences
}

// Truncate cuts text down to at most maxWords words, cutting only at
// sentence or line boundaries. If not even the first sentence fits, the
// text is hard-cut at the word budget. Text already within budget is
// returned unchanged.
func Truncate(text string, maxWords int) string {
	if maxWords <= 0 || CountWords(text) <= maxWords {
		return text
	}

	var out []string
	used := 0

	for _, line := range strings.Split(text, "\n") {
		lineWords := CountWords(line)
		if lineWords == 0 {
			out = append(out, line)
			continue
		}

		if used+lineWords <= maxWords {
			out = append(out, line)
			used += lineWords
			continue
		}

		// The line doesn't fit whole: keep whole sentences that do.
		var kept []string
		for _, sentence := range SplitSentences(line) {
			w := CountWords(sentence)
			if used+w > maxWords {
				break
			}
			kept = append(kept, sentence)
			used += w
		}

		if len(kept) == 0 && used == 0 {
			// Nothing fits at sentence granularity; hard-cut on words.
			words := strings.Fields(line)
			kept = []string{strings.Join(words[:maxWords], " ")}
		}

		if len(kept) > 0 {
			out = append(out, strings.Join(kept, " "))
		}
		break
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n ")
}
