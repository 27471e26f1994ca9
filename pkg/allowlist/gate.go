// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package allowlist

import (
	"fmt"
	"sort"
)

// Violation is one flagged token in one document not covered by the
// allow-list.
type Violation struct {
	Path  string
	Token string
}

func (v Violation) String() string { return fmt.Sprintf("%s: %s", v.Path, v.Token) }

// Result is the gate outcome: PASS iff there are no violations.
type Result struct {
	Violations []Violation
}

func (r Result) Pass() bool { return len(r.Violations) == 0 }

// Gate subtracts an allow-list from flagged tokens. It holds no state between
// checks; the same inputs always produce the same Result.
type Gate struct {
	allow *AllowList
}

func NewGate(allow *AllowList) Gate { return Gate{allow: allow} }

// Check computes flagged minus allow-list over per-document flagged token
// sets (keyed by document path). Violations come back sorted by path, then
// token, so output is stable across runs.
func (g Gate) Check(flaggedByPath map[string][]string) Result {
	var violations []Violation

	for path, tokens := range flaggedByPath {
		for _, token := range tokens {
			if g.allow.Has(token) {
				continue
			}
			violations = append(violations, Violation{Path: path, Token: token})
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Path != violations[j].Path {
			return violations[i].Path < violations[j].Path
		}
		return violations[i].Token < violations[j].Token
	})

	return Result{Violations: violations}
}

// Union flattens per-document flagged tokens into one sorted distinct set;
// regenerate persists exactly this.
func Union(flaggedByPath map[string][]string) []string {
	set := map[string]struct{}{}

	for _, tokens := range flaggedByPath {
		for _, token := range tokens {
			set[token] = struct{}{}
		}
	}

	result := make([]string, 0, len(set))
	for token := range set {
		result = append(result, token)
	}
	sort.Strings(result)

	return result
}
