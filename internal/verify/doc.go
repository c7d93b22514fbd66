// Package verify runs fixture files against the column matching engine.
//
// A fixture file holds a set of cases, each naming a source column, the
// schema column it is expected to match, and a threshold expression for the
// score ("> 0.80", "<= 0.25", "== 1.0"). The runner calls the engine with
// threshold zero to get the unfiltered top-5 ranking, locates the expected
// column, and evaluates the expression against the found score.
//
// Fixtures may be TOML or JSON; JSON files are validated against an
// embedded schema before decoding. Files run concurrently, each with its
// own matcher instance and similarity cache.
package verify
