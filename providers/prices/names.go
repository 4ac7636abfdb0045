// Package prices parses contest price lists and matches them against
// player pools. Price files come from a Slovak fantasy platform, so names
// carry diacritics and appear in "LastName F." form.
package prices

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize folds a player name for comparison: diacritics stripped,
// lowercased, punctuation collapsed to spaces.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	if folded, _, err := transform.String(stripper, name); err == nil {
		name = folded
	}
	name = strings.ToLower(name)
	name = strings.NewReplacer(".", " ", ",", " ").Replace(name)
	name = nonAlnum.ReplaceAllString(name, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(name, " "))
}

// Variants generates the alternate spellings a name may appear under in a
// price file: initials, last-name-only, collapsed and dotted forms.
func Variants(name string) []string {
	set := make(map[string]struct{})
	add := func(v string) {
		if v != "" {
			set[v] = struct{}{}
		}
	}

	add(strings.ToLower(name))
	normed := Normalize(name)
	add(normed)

	tokens := strings.Fields(normed)
	if len(tokens) >= 2 {
		first, last := tokens[0], tokens[len(tokens)-1]
		add(last + " " + first[:1])
		add(first[:1] + " " + last)
		add(last)
		add(first)
		add(first + " " + last[:1])
		add(last + " " + first[:1] + ".")
	}
	for v := range set {
		add(strings.ReplaceAll(v, " ", ""))
		add(strings.ReplaceAll(v, " ", "."))
	}

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}
