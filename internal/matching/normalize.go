package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes the input and removes combining diacritical marks,
// so "Raḥmān" and "Rahman" start from the same letters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a raw transliteration into a comparable token.
// It is total (empty in, empty out), pure and idempotent. The canonical
// form is lossy on purpose: "Rahmaan", "Rahman" and "Rahmen" all collapse
// to the same token.
func Normalize(raw string) string {
	s, _, err := transform.String(stripMarks, raw)
	if err != nil {
		s = raw
	}
	s = strings.TrimSpace(strings.ToLower(s))
	s = keepLetters(s)

	// The rewrite rules are applied in a fixed order; a single pass covers
	// every realistic transliteration. Repeating until the token stops
	// changing keeps Normalize idempotent even for degenerate inputs where
	// one rule exposes new work for an earlier one. Every rule shrinks the
	// token or leaves its length unchanged, so the loop terminates.
	for {
		next := canonicalPass(s)
		if next == s {
			return s
		}
		s = next
	}
}

// canonicalPass applies the transliteration rewrite rules once, in order.
func canonicalPass(s string) string {
	s = dropArticle(s)
	s = collapseVowelRuns(s)
	s = replaceDigraphs(s)
	s = strings.ReplaceAll(s, "kh", "h")
	s = rewriteTailEN(s)
	s = collapseConsonantRuns(s)
	s = rewriteTailEN(s) // consonant collapsing can expose a fresh "en" tail
	return s
}

// keepLetters drops every rune outside [a-z].
func keepLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dropArticle removes one leading "ar"/"al" article prefix. The prefix is
// kept when fewer than 3 letters would remain, so short names that merely
// start with those letters ("ali", "alim") survive.
func dropArticle(s string) string {
	if len(s) < 5 {
		return s
	}
	if strings.HasPrefix(s, "ar") || strings.HasPrefix(s, "al") {
		return s[2:]
	}
	return s
}

func isVowel(r byte) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// collapseVowelRuns reduces any run of the same vowel to one instance.
func collapseVowelRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] && isVowel(s[i]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// replaceDigraphs collapses vowel digraphs that transliterations use
// interchangeably: ae→a, ou→u, ai→i, ei→i.
func replaceDigraphs(s string) string {
	s = strings.ReplaceAll(s, "ae", "a")
	s = strings.ReplaceAll(s, "ou", "u")
	s = strings.ReplaceAll(s, "ai", "i")
	s = strings.ReplaceAll(s, "ei", "i")
	return s
}

// rewriteTailEN rewrites a trailing "en" to "an" ("Rahmen" → "Rahman").
func rewriteTailEN(s string) string {
	if strings.HasSuffix(s, "en") {
		return s[:len(s)-2] + "an"
	}
	return s
}

// collapseConsonantRuns reduces any run of the same consonant to one
// instance ("Razzaq" → "razaq").
func collapseConsonantRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] && !isVowel(s[i]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
