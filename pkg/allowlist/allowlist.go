// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package allowlist

import (
	"fmt"
	"sort"
	"strings"

	"carvel.dev/spellgate/pkg/files"
)

// AllowList is a case-sensitive set of accepted tokens. Tokens are trimmed of
// surrounding whitespace; comparison is otherwise exact ("Wrold" does not
// cover "wrold").
type AllowList struct {
	tokens map[string]struct{}
}

func NewAllowList(tokens []string) *AllowList {
	set := map[string]struct{}{}

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}

	return &AllowList{tokens: set}
}

// LoadAllowList reads one token per line from src.
func LoadAllowList(src files.Source) (*AllowList, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading allow-list %s: %s", src.Description(), err)
	}

	return NewAllowList(strings.Split(string(data), "\n")), nil
}

func (a *AllowList) Has(token string) bool {
	_, found := a.tokens[token]
	return found
}

func (a *AllowList) Len() int { return len(a.tokens) }

// Tokens returns the set sorted.
func (a *AllowList) Tokens() []string {
	result := make([]string, 0, len(a.tokens))
	for token := range a.tokens {
		result = append(result, token)
	}
	sort.Strings(result)
	return result
}

// Bytes renders the on-disk form: sorted, one token per line, trailing
// newline, no duplicates.
func (a *AllowList) Bytes() []byte {
	tokens := a.Tokens()
	if len(tokens) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(tokens, "\n") + "\n")
}
