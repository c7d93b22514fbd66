package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/pelletier/go-toml/v2"
)

// Case is one fixture record. Field names are part of the stable fixture
// contract and must not change.
type Case struct {
	Source        string `toml:"source" json:"source"`
	ExpectedMatch string `toml:"expected_match" json:"expected_match"`
	Category      string `toml:"category" json:"category"`
	ExpectedScore string `toml:"expected_score" json:"expected_score"`
}

// FixtureSchema optionally overrides the target schema for one fixture file
type FixtureSchema struct {
	Columns []string `toml:"columns" json:"columns"`
}

// Fixture is one parsed fixture file
type Fixture struct {
	Schema FixtureSchema `toml:"schema" json:"schema"`
	Cases  []Case        `toml:"case" json:"cases"`
}

// fixtureJSONSchema validates JSON fixtures before decoding, so a typo in a
// field name fails loudly instead of silently producing empty cases.
var fixtureJSONSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"cases"},
	Properties: map[string]*jsonschema.Schema{
		"schema": {
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"columns": {
					Type:  "array",
					Items: &jsonschema.Schema{Type: "string"},
				},
			},
		},
		"cases": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"source", "expected_match", "expected_score"},
				Properties: map[string]*jsonschema.Schema{
					"source":         {Type: "string"},
					"expected_match": {Type: "string"},
					"category":       {Type: "string"},
					"expected_score": {Type: "string"},
				},
			},
		},
	},
}

var (
	resolvedFixtureSchema     *jsonschema.Resolved
	resolvedFixtureSchemaOnce sync.Once
	resolvedFixtureSchemaErr  error
)

func fixtureSchemaResolved() (*jsonschema.Resolved, error) {
	resolvedFixtureSchemaOnce.Do(func() {
		resolvedFixtureSchema, resolvedFixtureSchemaErr = fixtureJSONSchema.Resolve(nil)
	})
	return resolvedFixtureSchema, resolvedFixtureSchemaErr
}

// LoadFixture reads and parses one fixture file, dispatching on extension.
// Supported: .toml, .json.
func LoadFixture(path string) (*Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOMLFixture(path, content)
	case ".json":
		return parseJSONFixture(path, content)
	default:
		return nil, fmt.Errorf("unsupported fixture format %q (want .toml or .json): %s", filepath.Ext(path), path)
	}
}

func parseTOMLFixture(path string, content []byte) (*Fixture, error) {
	var fixture Fixture
	if err := toml.Unmarshal(content, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &fixture, nil
}

func parseJSONFixture(path string, content []byte) (*Fixture, error) {
	resolved, err := fixtureSchemaResolved()
	if err != nil {
		return nil, fmt.Errorf("fixture schema is invalid: %w", err)
	}

	var instance any
	if err := json.Unmarshal(content, &instance); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("fixture %s does not match the fixture schema: %w", path, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(content, &fixture); err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return &fixture, nil
}

// ExpandPatterns resolves doublestar glob patterns (including plain file
// paths) into a sorted, deduplicated list of fixture files.
func ExpandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad fixture pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no fixtures match pattern %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}
