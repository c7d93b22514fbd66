// Package config loads colmatch configuration from .colmatch.kdl files.
package config

import (
	"fmt"

	"github.com/standardbeagle/colmatch/internal/matcher"
)

// Config holds the full colmatch configuration
type Config struct {
	Schema Schema
	Match  Match

	// Abbreviations extends or overrides the built-in abbreviation
	// dictionary (token -> expansion)
	Abbreviations map[string]string
}

// Schema configures the target column universe
type Schema struct {
	Columns []string
}

// Match configures scoring and ranking behavior
type Match struct {
	// Threshold is the minimum fused score a candidate needs (0.0-1.0)
	Threshold float64

	// MaxResults caps how many candidates the CLI displays. The engine's
	// own top-5 cap still applies first.
	MaxResults int

	// Stemming enables the stemmed comparison variant
	Stemming bool
}

// Default returns the built-in configuration used when no .colmatch.kdl
// file exists.
func Default() *Config {
	return &Config{
		Match: Match{
			Threshold:  matcher.DefaultThreshold,
			MaxResults: matcher.MaxResults,
		},
		Abbreviations: map[string]string{},
	}
}

// Validate checks field ranges after file loading and flag overrides
func (c *Config) Validate() error {
	if c.Match.Threshold < 0 || c.Match.Threshold > 1 {
		return fmt.Errorf("match threshold %.2f out of range [0,1]", c.Match.Threshold)
	}
	if c.Match.MaxResults < 1 {
		return fmt.Errorf("max results must be positive, got %d", c.Match.MaxResults)
	}
	for abbr, full := range c.Abbreviations {
		if abbr == "" || full == "" {
			return fmt.Errorf("abbreviation entries need both token and expansion (token %q, expansion %q)", abbr, full)
		}
	}
	return nil
}

// NewMatcher builds a matcher from the configured schema, dictionary, and
// stemming flag.
func (c *Config) NewMatcher() *matcher.Matcher {
	m := matcher.New(c.Schema.Columns)
	if len(c.Abbreviations) > 0 {
		m.UseDictionary(matcher.NewDictionary(c.Abbreviations))
	}
	if c.Match.Stemming {
		m.EnableStemming()
	}
	return m
}
