package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Unicode combining diacritical marks block,
// U+0300–U+036F. Marks outside this block are caught by the non-ASCII
// drop instead.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

var (
	markStripper  = runes.Remove(runes.In(combiningMarks))
	asciiStripper = runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	}))
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// rule is one pipeline step: a pure string transform with a stable name.
type rule struct {
	name string
	fn   func(string) string
}

// pipeline is the canonical rule order for the whole package. Convert
// applies all of it; each Stage replays a prefix. The order is
// load-bearing: substitution must see typographic runes before the
// catch-all drop removes them, and the drop must run after decomposition
// has split accents off their base letters.
var pipeline = []rule{
	{"decompose", decompose},
	{"substitute", substitute},
	{"strip-marks", stripMarks},
	{"strip-non-ascii", stripNonASCII},
	{"normalize-whitespace", normalizeWhitespace},
	{"trim", trim},
}

func applyRules(s string, rules []rule) string {
	for _, r := range rules {
		s = r.fn(s)
	}
	return s
}

// decompose rewrites s into NFD so accented letters become a base letter
// followed by combining marks.
func decompose(s string) string {
	return norm.NFD.String(s)
}

// substitute replaces every rune with a replacements entry by its ASCII
// substitution. All other runes pass through unchanged.
func substitute(s string) string {
	if !containsMapped(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := replacements[r]; ok {
			b.WriteString(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsMapped(s string) bool {
	for _, r := range s {
		if _, ok := replacements[r]; ok {
			return true
		}
	}
	return false
}

// stripMarks deletes combining diacritical marks, leaving the base
// letters decompose produced.
func stripMarks(s string) string {
	out, _, _ := transform.String(markStripper, s)
	return out
}

// stripNonASCII deletes every remaining rune above U+007F. Invalid UTF-8
// bytes surface here as U+FFFD and are deleted with the rest.
func stripNonASCII(s string) string {
	out, _, _ := transform.String(asciiStripper, s)
	return out
}

// normalizeWhitespace collapses runs of space and tab to a single space,
// rewrites CR and CRLF to LF, and trims trailing whitespace from every
// line. Blank lines survive: only horizontal whitespace collapses.
func normalizeWhitespace(s string) string {
	s = collapseHorizontal(s)
	s = lineEndings.Replace(s)
	return trimLineEnds(s)
}

func collapseHorizontal(s string) string {
	if !strings.Contains(s, "  ") && !strings.ContainsAny(s, "\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

func trimLineEnds(s string) string {
	if !strings.Contains(s, " \n") && !strings.Contains(s, "\t\n") &&
		!strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "\t") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// trim removes leading and trailing whitespace from the whole text.
func trim(s string) string {
	return strings.TrimSpace(s)
}
