// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"carvel.dev/spellgate/pkg/files"
	"carvel.dev/spellgate/pkg/markup"
	"github.com/client9/gospell"
)

// EncodingError reports a document whose bytes are not valid UTF-8; the run
// aborts rather than risk mis-tokenizing it.
type EncodingError struct {
	Path string
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("Expected file '%s' to be valid UTF-8", e.Path)
}

type Checker struct {
	speller *gospell.GoSpell
	ignore  []*regexp.Regexp
}

// NewChecker wraps a loaded dictionary. ignore patterns exempt matching
// tokens from ever being flagged (e.g. `^[A-Z]+$` for acronyms).
func NewChecker(speller *gospell.GoSpell, ignore []*regexp.Regexp) *Checker {
	return &Checker{speller: speller, ignore: ignore}
}

// CheckFile returns the distinct unknown tokens in one document, sorted.
func (c *Checker) CheckFile(file *files.File) ([]string, error) {
	data, err := file.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", file.Description(), err)
	}

	if !utf8.Valid(data) {
		return nil, EncodingError{Path: file.RelativePath()}
	}

	prose, err := markup.ExtractProse(file.Type(), data)
	if err != nil {
		return nil, fmt.Errorf("Extracting prose from %s: %s", file.Description(), err)
	}

	return c.CheckText(prose), nil
}

// CheckText returns the distinct unknown tokens in prose, sorted, case
// preserved.
func (c *Checker) CheckText(prose string) []string {
	seen := map[string]struct{}{}
	var unknown []string

	for _, token := range Tokenize(prose) {
		if _, found := seen[token]; found {
			continue
		}
		seen[token] = struct{}{}

		if c.ignored(token) || c.speller.Spell(token) {
			continue
		}
		unknown = append(unknown, token)
	}

	sort.Strings(unknown)

	return unknown
}

func (c *Checker) ignored(token string) bool {
	for _, pattern := range c.ignore {
		if pattern.MatchString(token) {
			return true
		}
	}
	return false
}
