// Package slug derives public URL identifiers from restaurant display names.
//
// The slug is never persisted. The admin side calls Slugify when building a
// share link, the public side calls Searchable on the incoming path segment
// and resolves it with a case-insensitive partial match against stored
// names. Slugify loses information (case, punctuation, collapsed runs), so
// Searchable is not a true inverse; the fuzzy lookup compensates.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches characters outside the slug alphabet (before hyphenation).
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// Matches runs of whitespace.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Matches runs of hyphens.
	hyphenRun = regexp.MustCompile(`-+`)
)

// Slugify converts a restaurant display name to its URL slug.
//
// Rules:
//  1. Decompose unicode (NFKD) and drop non-ASCII runes
//  2. Lowercase
//  3. Strip everything outside [a-z0-9\s-]
//  4. Collapse whitespace runs to a single hyphen
//  5. Collapse hyphen runs, trim leading/trailing hyphens
//
// Slugifying an already-slugified string is a no-op:
//
//	Slugify("Tony's   Pizza!! Place") → "tonys-pizza-place"
//	Slugify("tonys-pizza-place")      → "tonys-pizza-place"
func Slugify(name string) string {
	s := norm.NFKD.String(name)

	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(strings.TrimSpace(s))
	s = disallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Searchable converts a slug back to a lookup fragment by replacing every
// hyphen with a space: "spice-garden" → "spice garden". The result is fed
// to the store's case-insensitive name match, not compared for equality.
func Searchable(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
