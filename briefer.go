// Package briefer summarizes web articles within a hard word budget.
// It turns raw fetched HTML into clean article text via a fallback
// extraction chain, then produces a bullet-point or paragraph summary
// using a pluggable language-model provider, switching to a map-reduce
// strategy when the article is too long for a single model call.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, openai/, sqlite/).
// Pipeline orchestration lives in pipeline/.
package briefer
