package pipeline

import (
	"fmt"
	"strings"

	"briefer"
)

// MapPrompt builds the map-stage prompt for one chunk. It is deliberately
// format-agnostic: the requested output format is applied only at reduce
// time, so partial summaries keep facts instead of premature formatting.
func MapPrompt(chunkText string, targetWords int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the following section of a longer article in roughly %d words. ", targetWords)
	sb.WriteString("Preserve concrete facts, names, numbers, and entities. ")
	sb.WriteString("Write plain flowing prose; do not use bullet points or headings.\n\n")
	sb.WriteString("Section content:\n\n")
	sb.WriteString(chunkText)
	sb.WriteString("\n\nProvide the section summary:")
	return sb.String()
}

// FinalPrompt builds the synthesis prompt that applies the requested
// format and word budget.
func FinalPrompt(text string, format briefer.Format, maxWords int) string {
	var sb strings.Builder
	switch format {
	case briefer.FormatBulletPoints:
		sb.WriteString("Create a bullet-point summary with 5-8 key points. ")
		sb.WriteString("Each point should be concise (1-2 lines maximum). ")
		sb.WriteString("Start each point with a dash (-). ")
		fmt.Fprintf(&sb, "Keep the whole summary within %d words.", maxWords)
	default:
		fmt.Fprintf(&sb, "Create a concise summary in 1-2 paragraphs, approximately %d words. ", maxWords)
		sb.WriteString("Write in clear, flowing prose.")
	}
	sb.WriteString("\n\nArticle content:\n\n")
	sb.WriteString(text)
	fmt.Fprintf(&sb, "\n\nProvide a %s summary:", format)
	return sb.String()
}
