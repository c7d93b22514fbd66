package matcher

import (
	"strings"

	"github.com/surgebase/porter2"
)

// stemMinLength guards short tokens: stemming "id" or "dt" destroys more
// signal than it recovers.
const stemMinLength = 4

// stemName reduces each token of a normalized name to its Porter2 stem, so
// pluralized or inflected headers ("customer_names") align with their
// schema columns ("customer_name"). Tokens shorter than stemMinLength pass
// through unchanged.
func stemName(name string) string {
	if name == "" {
		return ""
	}

	tokens := strings.Split(name, Separator)
	for i, token := range tokens {
		if len(token) >= stemMinLength {
			tokens[i] = porter2.Stem(token)
		}
	}
	return strings.Join(tokens, Separator)
}
