package matcher

import "strings"

// defaultAbbreviations maps common column-name abbreviations to their full
// words. Lookups are whole-token only: "cust" expands, "custom" does not.
var defaultAbbreviations = map[string]string{
	"cust": "customer",
	"qty":  "quantity",
	"amt":  "amount",
	"dt":   "date",
	"num":  "number",
	"desc": "description",
	"addr": "address",
	"acct": "account",
	"tel":  "telephone",
	"pct":  "percent",
	"avg":  "average",
	"org":  "organization",
}

// Dictionary expands abbreviated tokens in normalized column names.
// Read-only after construction, safe for concurrent use.
type Dictionary struct {
	entries map[string]string
}

var builtinDictionary = NewDictionary(nil)

// DefaultDictionary returns the shared dictionary with the built-in
// abbreviations only.
func DefaultDictionary() *Dictionary {
	return builtinDictionary
}

// NewDictionary returns a dictionary with the built-in abbreviations plus
// the given overrides. Override keys are lowercased; an override for an
// existing abbreviation replaces the built-in expansion.
func NewDictionary(overrides map[string]string) *Dictionary {
	entries := make(map[string]string, len(defaultAbbreviations)+len(overrides))
	for abbr, full := range defaultAbbreviations {
		entries[abbr] = full
	}
	for abbr, full := range overrides {
		abbr = strings.ToLower(strings.TrimSpace(abbr))
		full = strings.ToLower(strings.TrimSpace(full))
		if abbr == "" || full == "" {
			continue
		}
		entries[abbr] = full
	}
	return &Dictionary{entries: entries}
}

// Expand looks up a single token and returns its expansion, or the token
// unchanged when no entry exists.
func (d *Dictionary) Expand(token string) string {
	if full, ok := d.entries[token]; ok {
		return full
	}
	return token
}

// ExpandName rewrites each underscore-separated token of an
// already-normalized name through the dictionary. Unmatched tokens pass
// through unchanged; multiple tokens may each expand independently
// ("cust_addr" -> "customer_address"). Empty input returns empty output.
func (d *Dictionary) ExpandName(name string) string {
	if name == "" {
		return ""
	}

	tokens := strings.Split(name, Separator)
	for i, token := range tokens {
		tokens[i] = d.Expand(token)
	}
	return strings.Join(tokens, Separator)
}

// Size returns the number of entries in the dictionary
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// ExpandAbbreviations expands abbreviated tokens using the built-in
// dictionary. The input is expected to be already normalized.
func ExpandAbbreviations(name string) string {
	return DefaultDictionary().ExpandName(name)
}
