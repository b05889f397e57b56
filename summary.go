package briefer

// Format selects the shape of the final summary.
type Format string

// Supported summary formats.
const (
	FormatBulletPoints Format = "points"
	FormatParagraph    Format = "para"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatBulletPoints || f == FormatParagraph
}

// SummaryRequest describes one summarization request. It is immutable once
// issued to the pipeline.
type SummaryRequest struct {
	// Format is the requested output shape.
	Format Format `json:"format"`

	// MaxWords is the hard word budget for the final summary. The pipeline
	// tolerates a small overage before truncating (see SummaryResult).
	MaxWords int `json:"maxWords"`

	// Provider identifies the ProviderAdapter variant to use. The valid set
	// is whatever the caller registered, not something the core hardcodes.
	Provider string `json:"provider"`
}

// Validate returns an error if the request contains invalid fields.
func (r SummaryRequest) Validate() error {
	if !r.Format.Valid() {
		return Errorf(EINVALID, "format must be %q or %q", FormatBulletPoints, FormatParagraph)
	}
	if r.MaxWords <= 0 {
		return Errorf(EINVALID, "max words must be positive")
	}
	if r.Provider == "" {
		return Errorf(EINVALID, "provider required")
	}
	return nil
}

// PartialSummary is the map-stage summary of a single chunk. It is scratch
// state: produced per chunk, consumed by the reduce stage, then discarded.
type PartialSummary struct {
	ChunkIndex int
	Text       string
	WordCount  int
}

// SummaryResult is the final output of a pipeline run.
type SummaryResult struct {
	// Text is the summary in the requested format.
	Text string `json:"text"`

	// WordCount is the word count of Text. It never exceeds the requested
	// budget by more than the pipeline's tolerance; the truncation backstop
	// guarantees this even when the model ignores instructions.
	WordCount int `json:"wordCount"`

	// Truncated is set when the backstop had to cut oversized model output.
	Truncated bool `json:"truncated,omitempty"`

	// ChunksTotal and ChunksFailed record map-stage degradation. A nonzero
	// ChunksFailed means the summary was produced from a subset of the
	// article (best-effort policy for minority chunk failures).
	ChunksTotal  int `json:"chunksTotal,omitempty"`
	ChunksFailed int `json:"chunksFailed,omitempty"`
}
