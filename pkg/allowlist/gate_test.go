// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package allowlist_test

import (
	"testing"

	"carvel.dev/spellgate/pkg/allowlist"
	"github.com/stretchr/testify/require"
)

func TestGateFailsOnUncoveredToken(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList(nil))

	result := gate.Check(map[string][]string{"doc1": {"wrold"}})

	require.False(t, result.Pass())
	require.Equal(t, []allowlist.Violation{{Path: "doc1", Token: "wrold"}}, result.Violations)
}

func TestGatePassesWhenAllowListCovers(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList([]string{"wrold"}))

	result := gate.Check(map[string][]string{"doc1": {"wrold"}})

	require.True(t, result.Pass())
	require.Empty(t, result.Violations)
}

func TestGatePassesOnEmptyInput(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList(nil))

	require.True(t, gate.Check(map[string][]string{}).Pass())
	require.True(t, gate.Check(nil).Pass())
}

func TestGateIsCaseSensitive(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList([]string{"wrold"}))

	result := gate.Check(map[string][]string{"doc1": {"Wrold"}})

	require.False(t, result.Pass())
	require.Equal(t, "Wrold", result.Violations[0].Token)
}

func TestGateToleratesOrphanedAllowListTokens(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList([]string{"wrold", "orhpan"}))

	result := gate.Check(map[string][]string{"doc1": {"wrold"}})

	require.True(t, result.Pass())
}

func TestGateViolationsSortedByPathThenToken(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList(nil))

	result := gate.Check(map[string][]string{
		"b.md": {"zeta", "alpha"},
		"a.md": {"beta"},
	})

	require.Equal(t, []allowlist.Violation{
		{Path: "a.md", Token: "beta"},
		{Path: "b.md", Token: "alpha"},
		{Path: "b.md", Token: "zeta"},
	}, result.Violations)
}

func TestGateIdempotent(t *testing.T) {
	gate := allowlist.NewGate(allowlist.NewAllowList([]string{"covered"}))
	flagged := map[string][]string{"a.md": {"covered", "wrold"}, "b.md": {"typro"}}

	first := gate.Check(flagged)
	second := gate.Check(flagged)

	require.Equal(t, first, second)
}

func TestGateMonotonicity(t *testing.T) {
	flagged := map[string][]string{"a.md": {"wrold", "typro"}}

	before := allowlist.NewGate(allowlist.NewAllowList(nil)).Check(flagged)
	require.Len(t, before.Violations, 2)

	after := allowlist.NewGate(allowlist.NewAllowList([]string{"wrold"})).Check(flagged)
	require.Equal(t, []allowlist.Violation{{Path: "a.md", Token: "typro"}}, after.Violations)
}

func TestUnion(t *testing.T) {
	flagged := map[string][]string{
		"a.md": {"wrold", "typro"},
		"b.md": {"wrold"},
	}

	require.Equal(t, []string{"typro", "wrold"}, allowlist.Union(flagged))
	require.Empty(t, allowlist.Union(nil))
}

func TestRegenerateRoundTrip(t *testing.T) {
	flagged := map[string][]string{"a.md": {"wrold"}, "b.md": {"typro", "wrold"}}

	regenerated := allowlist.NewAllowList(allowlist.Union(flagged))

	require.True(t, allowlist.NewGate(regenerated).Check(flagged).Pass())
}
