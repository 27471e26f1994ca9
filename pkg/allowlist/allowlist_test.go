// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package allowlist_test

import (
	"fmt"
	"strings"
	"testing"

	"carvel.dev/spellgate/pkg/allowlist"
	"carvel.dev/spellgate/pkg/files"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestLoadAllowList(t *testing.T) {
	src := files.NewBytesSource("allowlist.txt", []byte("wrold\n  typro  \n\nwrold\n"))

	list, err := allowlist.LoadAllowList(src)
	require.NoError(t, err)

	require.Equal(t, []string{"typro", "wrold"}, list.Tokens())
	require.True(t, list.Has("wrold"))
	require.False(t, list.Has("Wrold"))
	require.False(t, list.Has(""))
}

func TestAllowListBytes(t *testing.T) {
	list := allowlist.NewAllowList([]string{"zeta", "alpha", "alpha"})

	require.Equal(t, []byte("alpha\nzeta\n"), list.Bytes())
	require.Equal(t, []byte{}, allowlist.NewAllowList(nil).Bytes())
}

func TestAllowListSaveLoadRoundTrip(t *testing.T) {
	f := fuzz.New().NumElements(0, 50).Funcs(func(s *string, c fuzz.Continue) {
		// on-disk format is line oriented; tokens never contain whitespace
		*s = fmt.Sprintf("token%c%d", 'a'+rune(c.Intn(26)), c.Intn(1000))
	})

	for i := 0; i < 100; i++ {
		var tokens []string
		f.Fuzz(&tokens)

		original := allowlist.NewAllowList(tokens)

		reloaded, err := allowlist.LoadAllowList(files.NewBytesSource("allowlist.txt", original.Bytes()))
		require.NoError(t, err)

		require.Equal(t, original.Tokens(), reloaded.Tokens())
	}
}

func TestLoadAllowListPropagatesReadErrors(t *testing.T) {
	_, err := allowlist.LoadAllowList(errSource{})
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "Reading allow-list"))
}

type errSource struct{}

func (errSource) Description() string           { return "broken source" }
func (errSource) RelativePath() (string, error) { return "broken", nil }
func (errSource) Bytes() ([]byte, error)        { return nil, fmt.Errorf("boom") }
