package briefer_test

import (
	"strings"
	"testing"

	"briefer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "one two three", briefer.NormalizeWhitespace("  one\t\ttwo \n\n three  "))
	assert.Equal(t, "", briefer.NormalizeWhitespace(" \n\t "))
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, briefer.CountWords(""))
	assert.Equal(t, 3, briefer.CountWords("one two three"))
	assert.Equal(t, 3, briefer.CountWords("  one\n two\tthree "))
}

func TestStripControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", briefer.StripControlChars("a\x00b\x08c"))
	assert.Equal(t, "a\nb\tc", briefer.StripControlChars("a\nb\tc"))
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	sentences := briefer.SplitSentences("First sentence. Second one! Third? The end.")

	require.Len(t, sentences, 4)
	assert.Equal(t, "First sentence.", sentences[0])
	assert.Equal(t, "Second one!", sentences[1])
	assert.Equal(t, "Third?", sentences[2])
	assert.Equal(t, "The end.", sentences[3])
}

func TestSplitSentences_KeepsAbbreviations(t *testing.T) {
	t.Parallel()

	sentences := briefer.SplitSentences("Use e.g. lowercase continuations. Then stop.")

	require.Len(t, sentences, 2)
	assert.Equal(t, "Use e.g. lowercase continuations.", sentences[0])
}

func TestSplitSentences_TrailingQuote(t *testing.T) {
	t.Parallel()

	sentences := briefer.SplitSentences(`He said "stop." Then he left.`)

	require.Len(t, sentences, 2)
	assert.Equal(t, `He said "stop."`, sentences[0])
	assert.Equal(t, "Then he left.", sentences[1])
}

func TestSplitSentences_NoTerminalPunctuation(t *testing.T) {
	t.Parallel()

	sentences := briefer.SplitSentences("no punctuation at all")

	require.Len(t, sentences, 1)
	assert.Equal(t, "no punctuation at all", sentences[0])
}

func TestTruncate_WithinBudget(t *testing.T) {
	t.Parallel()

	text := "Short enough. Nothing to cut."
	assert.Equal(t, text, briefer.Truncate(text, 10))
}

func TestTruncate_CutsAtSentenceBoundary(t *testing.T) {
	t.Parallel()

	text := "One two three four. Five six seven eight. Nine ten eleven twelve."
	got := briefer.Truncate(text, 9)

	assert.Equal(t, "One two three four. Five six seven eight.", got)
	assert.LessOrEqual(t, briefer.CountWords(got), 9)
}

func TestTruncate_PreservesWholeLines(t *testing.T) {
	t.Parallel()

	text := "- Point one here.\n- Point two here.\n- Point three here."
	got := briefer.Truncate(text, 8)

	assert.Equal(t, "- Point one here.\n- Point two here.", got)
}

func TestTruncate_HardCutWhenNoSentenceFits(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("word ", 50) + "end"
	got := briefer.Truncate(text, 5)

	assert.Equal(t, 5, briefer.CountWords(got))
}
