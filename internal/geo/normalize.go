package geo

import (
	"regexp"
	"strings"
)

var (
	edgeQuotesRegex   = regexp.MustCompile(`^'+|'+$`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	apostrophesRegex  = regexp.MustCompile("[’'`]")
	nonAlphanumRegex  = regexp.MustCompile(`[^a-z0-9\s]`)
	nonSlugRunesRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

// stopWords are Italian articles/prepositions plus generic geographic
// words that carry no signal when matching neighborhood names.
var stopWords = map[string]bool{
	"di": true, "da": true, "del": true, "della": true, "delle": true,
	"dei": true, "degli": true,
	"a": true, "al": true, "alla": true, "alle": true, "ai": true,
	"e": true, "ed": true,
	"il": true, "lo": true, "la": true, "l": true, "le": true,
	"i": true, "gli": true,
	"zona": true, "quartiere": true, "q": true, "qre": true,
	"porta": true, "parco": true, "centro": true, "citta": true,
	"stazione": true,
}

// CanonicalizeZoneName cleans a raw OMI zone name as stored by the
// price source: the upstream CSV import wraps values in stray single
// quotes and leaves irregular internal spacing. Punctuation such as
// commas is preserved because the curated mapping keys rely on it.
func CanonicalizeZoneName(raw string) string {
	cleaned := edgeQuotesRegex.ReplaceAllString(raw, "")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Slugify derives a lowercase hyphenated identifier from a canonical
// zone name. Used only as a last-resort identifier when no curated
// mapping exists; callers must consult the curated tables first.
func Slugify(canonical string) string {
	slug := strings.ToLower(canonical)
	slug = apostrophesRegex.ReplaceAllString(slug, "")
	slug = nonSlugRunesRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NilSlug derives the dashboard's NIL identifier from a NIL display
// name: lowercase, each whitespace run becomes one hyphen, apostrophes
// and dots dropped, literal hyphens kept. "MAGENTA - S. VITTORE" yields
// "magenta---s-vittore", which is the scheme the curated coverage
// tables are keyed by. Not interchangeable with Slugify, which
// collapses every non-alphanumeric run.
func NilSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRegex.ReplaceAllString(slug, "-")
	slug = apostrophesRegex.ReplaceAllString(slug, "")
	return strings.ReplaceAll(slug, ".", "")
}

// NormalizeSearchValue aggressively normalizes free text for fuzzy
// comparison: lowercase, apostrophe variants stripped, anything outside
// [a-z0-9] flattened to spaces. Lossier than CanonicalizeZoneName on
// purpose.
func NormalizeSearchValue(raw string) string {
	normalized := strings.ToLower(raw)
	normalized = apostrophesRegex.ReplaceAllString(normalized, "")
	normalized = nonAlphanumRegex.ReplaceAllString(normalized, " ")
	normalized = whitespaceRegex.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// Tokenize splits free text into search tokens, dropping stop words and
// tokens of length <= 2. Order and duplicates are preserved.
func Tokenize(raw string) []string {
	normalized := NormalizeSearchValue(raw)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, token := range strings.Split(normalized, " ") {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
