// Package tokenizer splits raw document and query text into words.
//
// Splitting is deliberately simple: a run of one or more ASCII spaces
// (0x20) separates words. There is no Unicode-aware boundary detection,
// no stemming, and no stop-word filtering here — those concerns belong
// to the stopwords and query packages, which are constructed per engine
// rather than baked into the tokenizer.
package tokenizer

import "strings"

// Split breaks text on runs of the literal ASCII space byte (0x20) only.
// Leading, trailing, and interior multi-space runs never produce empty
// tokens. Unlike strings.Fields, tab, newline, and other Unicode
// whitespace are NOT separators — they stay embedded in the token. Tab
// and newline are control bytes that ValidWord then rejects; non-ASCII
// whitespace such as U+00A0 encodes to bytes >= 0x20 and stays part of an
// ordinary word.
func Split(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
}

// ValidWord reports whether every byte of word is >= 0x20. A control byte
// anywhere in the word makes it invalid, regardless of position.
func ValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 {
			return false
		}
	}
	return true
}

// SplitMinus reports whether token is a minus-word and, if so, returns its
// body (the text after the leading '-'). A minus-word's body must be
// non-empty and must not itself start with '-'; violations are reported
// via ok=false so the caller can raise InvalidArgument.
func SplitMinus(token string) (body string, isMinus bool, ok bool) {
	if len(token) == 0 || token[0] != '-' {
		return token, false, true
	}
	body = token[1:]
	if body == "" || strings.HasPrefix(body, "-") {
		return "", true, false
	}
	return body, true, true
}
