// Package translit converts arbitrary Unicode text to a pure ASCII
// representation.
//
// The conversion is a fixed ordered pipeline: canonical decomposition
// (NFD), symbol substitution from a fixed table, combining-mark removal,
// a catch-all drop of every remaining rune above U+007F, whitespace
// collapsing, line-ending normalization, and trimming. Characters with no
// table entry and no ASCII base letter are removed, not approximated:
// CJK, Cyrillic and Arabic text vanishes with no placeholder.
//
// The same pipeline backs two views: Convert applies every rule at once,
// and the stage API (Stages, ApplyStage) replays prefixes of it so a
// caller can show the text after each transformation step.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Transliteration is table-driven, not phonetic, and not reversible.
//   - The symbol table is fixed; there is no locale-aware variant.
//   - Combining marks outside U+0300–U+036F are removed by the catch-all
//     drop rather than the dedicated mark strip. The final output is the
//     same; only intermediate stage output differs.
package translit

import "unicode/utf8"

// Stats reports character counts for one conversion. InChars and OutChars
// are rune counts of the raw input and the final output.
//
// Removed is a signed delta, InChars - OutChars. Expanding substitutions
// (€ -> EUR, ° -> " deg ") can make the output longer than the input, in
// which case Removed is negative. It is never clamped.
type Stats struct {
	InChars  int
	OutChars int
	Removed  int
}

// Result bundles the converted text with its statistics.
type Result struct {
	ASCII string
	Stats Stats
}

// Convert returns the ASCII-only form of s. Every rune in the result is
// below U+0080.
//
// Convert is total: any string converts without error, including the
// empty string, arbitrarily long input, and strings with invalid UTF-8
// (invalid bytes are dropped along with the other non-ASCII content).
func Convert(s string) string {
	if s == "" {
		return ""
	}
	return applyRules(s, pipeline)
}

// ConvertWithStats converts s and reports character counts alongside
// the converted text.
func ConvertWithStats(s string) Result {
	ascii := Convert(s)
	in := utf8.RuneCountInString(s)
	out := utf8.RuneCountInString(ascii)
	return Result{
		ASCII: ascii,
		Stats: Stats{InChars: in, OutChars: out, Removed: in - out},
	}
}
