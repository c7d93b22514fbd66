// Package matcher maps source column names from imported documents to the
// best-matching columns of a fixed target schema.
//
// Exact-name matching is not enough for real import files: column headers
// vary in casing, separators, abbreviation, word order, and spelling. The
// matcher runs every comparison through two complementary algorithms and
// fuses the results into a single ranked candidate list.
//
// # Comparison Variants
//
// For each target column the matcher evaluates four scores and keeps the
// maximum:
//
//  1. Sequence similarity on the raw lowercase names
//  2. Sequence similarity on the normalized + abbreviation-expanded names
//  3. Fuzzy similarity on the raw lowercase names
//  4. Fuzzy similarity on the normalized + abbreviation-expanded names
//
// Sequence similarity is a block-alignment ratio over longest common
// contiguous runs, which rewards shared word fragments. Fuzzy similarity
// blends a transposition-aware edit distance with Jaro-Winkler, which
// tolerates typos, adjacent swaps, and dropped characters.
//
// # Core Components
//
// Matcher: owns the schema column set and a similarity cache, and exposes
// FindBestMatches, the ranked matching operation.
//
// NormalizeColumnName: canonicalizes a raw header into a lowercase,
// underscore-separated, word-segmented form, stripping structural tokens
// like "tbl" and "fld".
//
// Dictionary: whole-token abbreviation expansion (cust -> customer,
// qty -> quantity), extensible through configuration.
//
// # Usage Example
//
//	m := matcher.New([]string{"customer_id", "first_name", "email_address"})
//	for _, c := range m.FindBestMatches("cust_id", 0.5) {
//		fmt.Printf("%s %.3f %s\n", c.Column, c.Score, c.Algorithm)
//	}
//
// All similarity computations are memoized per matcher instance, so
// repeated calls against the same schema reuse prior work. Resetting the
// schema clears the cache in the same operation.
package matcher
