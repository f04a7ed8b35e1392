package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}+#.\-]*`)

// Tokenize splits text into lowercase word tokens, dropping stop words and
// tokens shorter than minLength. Duplicates are removed with first-seen order
// preserved, so downstream found/missing sets stay deterministic.
func Tokenize(text string, minLength int, stopWords map[string]bool) []string {
	if text == "" {
		return nil
	}

	matches := wordRe.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, tok := range matches {
		tok = strings.Trim(tok, ".")
		if len(tok) < minLength || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// StopWordSet builds a lookup set from a stop-word list.
func StopWordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// ContainsTerm reports whether term occurs in text as a whole word or
// whole phrase, case-insensitively.
func ContainsTerm(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)

	idx := 0
	for {
		pos := strings.Index(text[idx:], term)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(term)
		if !wordCharBefore(text, start) && !wordCharAt(text, end) {
			return true
		}
		idx = start + 1
	}
}

// wordCharBefore reports whether the rune ending at byte offset i is a word
// character.
func wordCharBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

// wordCharAt reports whether the rune starting at byte offset i is a word
// character.
func wordCharAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
