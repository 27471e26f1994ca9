// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits prose into candidate spelling-check tokens: runs of letters
// with internal apostrophes, case preserved. Text is NFC normalized first so
// that byte-different renderings of the same word compare equal. Single
// letters and runs containing digits (versions, hashes, ordinals) never form
// tokens.
func Tokenize(text string) []string {
	text = norm.NFC.String(text)
	// curly apostrophes appear in rendered prose; dictionaries carry straight ones
	text = strings.ReplaceAll(text, "’", "'")

	var tokens []string
	var current []rune
	poisoned := false

	flush := func() {
		word := strings.Trim(string(current), "'")
		if !poisoned && len([]rune(word)) >= 2 {
			tokens = append(tokens, word)
		}
		current = current[:0]
		poisoned = false
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			current = append(current, r)
		case unicode.IsDigit(r):
			poisoned = true
		case r == '\'' && len(current) > 0:
			current = append(current, r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}
