package answer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "´", "'", "`", "'",
	"“", `"`, "”", `"`,
	"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "−", "-",
)

// citationMarks may trail an answer as footnote markers.
const citationMarks = "•♦†‡*#+"

// Normalize canonicalizes an answer string: diacritics are removed, quotes
// and dashes unified, trailing citations and parentheticals and outer
// quotes stripped until stable, a final period dropped, whitespace
// collapsed, and the result lower-cased.
func Normalize(s string) string {
	s = stripDiacritics(s)
	s = quoteReplacer.Replace(s)
	for {
		old := s
		s = strings.TrimSpace(s)
		s = s[:trailingCitations(s)]
		s = strings.TrimSpace(s)
		s = s[:trailingParentheticals(s)]
		s = strings.TrimSpace(s)
		if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' && !strings.Contains(s[1:len(s)-1], `"`) {
			s = s[1 : len(s)-1]
		}
		if s == old {
			break
		}
	}
	s = strings.TrimSuffix(s, ".")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// trailingCitations returns the offset where the longest suffix made only
// of citation markers begins: bracketed notes not at the very start of the
// string, numeric notes such as [3] anywhere, and single marker symbols.
// Returns len(s) when there is none.
func trailingCitations(s string) int {
	for i := 0; i < len(s); i++ {
		if citationsFrom(s, i) {
			return i
		}
	}
	return len(s)
}

func citationsFrom(s string, p int) bool {
	for p < len(s) {
		if s[p] == '[' {
			end := strings.IndexByte(s[p+1:], ']')
			if end < 0 {
				return false
			}
			content := s[p+1 : p+1+end]
			if p == 0 && !isDigits(content) {
				return false
			}
			p += end + 2
			continue
		}
		r, size := utf8.DecodeRuneInString(s[p:])
		if !strings.ContainsRune(citationMarks, r) {
			return false
		}
		p += size
	}
	return true
}

// trailingParentheticals returns the offset where the longest suffix of
// " (...)" groups begins, never at offset 0. Returns len(s) when there is
// none.
func trailingParentheticals(s string) int {
	for i := 1; i < len(s); i++ {
		if parentheticalsFrom(s, i) {
			return i
		}
	}
	return len(s)
}

func parentheticalsFrom(s string, p int) bool {
	for p < len(s) {
		if !strings.HasPrefix(s[p:], " (") {
			return false
		}
		end := strings.IndexByte(s[p+2:], ')')
		if end < 0 {
			return false
		}
		p += end + 3
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
