// Package analyzer implements the ingredient resolution pipeline: raw label
// text is normalized into tokens, matched against the reference database,
// merged with external research outcomes, scored, and checked against the
// caller's allergy profile. Every step is deterministic for a given input.
package analyzer

import (
	"labelscan/internal/refdata"
)

// Options carries the tunable policy knobs of the pipeline.
type Options struct {
	// FuzzyThreshold is the minimum similarity ratio for a fuzzy match
	// against a canonical name to be accepted.
	FuzzyThreshold float64
	// MinConfidence is the minimum research confidence below which a
	// researched result is downgraded to unknown.
	MinConfidence float64
}

// DefaultOptions returns the shipped policy defaults.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold: 0.78,
		MinConfidence:  0.3,
	}
}

// Engine runs the analysis pipeline against one reference database. It holds
// no mutable state and is safe for concurrent use across requests.
type Engine struct {
	db   *refdata.Database
	opts Options
}

// New builds an Engine. Out-of-range option values fall back to the defaults.
func New(db *refdata.Database, opts Options) *Engine {
	def := DefaultOptions()
	if opts.FuzzyThreshold <= 0 || opts.FuzzyThreshold > 1 {
		opts.FuzzyThreshold = def.FuzzyThreshold
	}
	if opts.MinConfidence <= 0 || opts.MinConfidence > 1 {
		opts.MinConfidence = def.MinConfidence
	}
	return &Engine{db: db, opts: opts}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
