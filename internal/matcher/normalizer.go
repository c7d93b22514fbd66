package matcher

import (
	"strings"
	"unicode"
)

// Separator is the canonical word separator in normalized column names
const Separator = "_"

// Structural tokens stripped from normalized names when they occupy a whole
// leading or trailing token. Export prefixes like "tbl_" carry no matching
// signal and only dilute similarity scores.
var (
	prefixTokens = map[string]bool{"tbl": true, "fld": true, "col": true}
	suffixTokens = map[string]bool{"col": true, "fld": true}
)

// NormalizeColumnName canonicalizes a raw column name into a lowercase,
// underscore-separated, word-segmented form.
//
// The steps are order-sensitive: camelCase boundaries are split first, then
// the whole string is lowercased, runs of non-alphanumeric characters
// collapse to a single underscore, structural prefix/suffix tokens are
// stripped, and leading/trailing separators are trimmed.
//
// The function is pure, total, and idempotent: it never fails, and
// normalizing an already-normalized name returns it unchanged.
func NormalizeColumnName(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 8)

	for i, ch := range runes {
		if i > 0 && unicode.IsUpper(ch) {
			prev := runes[i-1]
			// camelCase/PascalCase boundary: uppercase after lowercase or digit
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteString(Separator)
			}
		}
		b.WriteRune(unicode.ToLower(ch))
	}

	tokens := splitTokens(b.String())
	tokens = stripStructuralTokens(tokens)

	return strings.Join(tokens, Separator)
}

// splitTokens breaks a lowercased name on runs of non-alphanumeric
// characters, dropping empty tokens so repeated separators collapse.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// stripStructuralTokens removes structural prefix and suffix tokens.
// Stripping repeats until no structural token remains so that
// normalization stays idempotent ("tbl_col_id" and "col_id" both end up
// as "id"). At least one token is always kept: a name that consists only
// of structural tokens still has to match something.
func stripStructuralTokens(tokens []string) []string {
	for len(tokens) > 1 && prefixTokens[tokens[0]] {
		tokens = tokens[1:]
	}
	for len(tokens) > 1 && suffixTokens[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
