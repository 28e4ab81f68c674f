package table

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Character rewrites applied before canonicalization. These mirror the cell
// normalization used when the logical-form training data was produced.
var charReplacements = []struct {
	chars string
	with  string
}{
	{"‚", ","},
	{"„", ",,"},
	{"·・", "."},
	{"…", "..."},
	{"ˆ", "^"},
	{"˜", "~"},
	{"‹", "<"},
	{"›", ">"},
	{"‘’´`", "'"},
	{"“”«»", "\""},
	{"•†‡²³", ""},
	{"‐‑–—−", "-"},
	{"ðø′″€⁄ªΣ", "_"},
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// asciiFold covers letters that have no decomposition to ASCII.
var asciiFold = map[rune]string{
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'đ': "d", 'ł': "l", 'þ': "th", 'ı': "i", 'ħ': "h", 'ŋ': "ng",
}

// NormalizeString canonicalizes cell text, column names and question tokens
// so they can be compared with constants in logical forms: punctuation is
// mapped, most non-Latin code points are dropped, every run of non-word
// characters becomes a single underscore, and the result is lower-cased
// ASCII. "USL A-League" becomes "usl_a_league".
func NormalizeString(s string) string {
	for _, r := range charReplacements {
		s = replaceAny(s, r.chars, r.with)
	}
	s = strings.TrimSpace(strings.Map(func(r rune) rune {
		if (r >= 0x0180 && r <= 0x0210) || (r >= 0x0220 && r <= 0xFFFF) {
			return -1
		}
		return r
	}, s))
	s = strings.ReplaceAll(s, `\n`, "_")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return '_'
	}, s)
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.TrimSuffix(s, "_")
	return foldASCII(strings.ToLower(s))
}

func replaceAny(s, chars, with string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			b.WriteString(with)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func foldASCII(s string) string {
	// transform.Chain is stateful, so each call gets its own chain.
	strip := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(strip, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if rep, ok := asciiFold[r]; ok {
			b.WriteString(rep)
		}
	}
	return b.String()
}
