// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package dictionary_test

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/spellgate/pkg/dictionary"
	"github.com/stretchr/testify/require"
)

func TestResolveByName(t *testing.T) {
	dir := t.TempDir()
	writeDictPair(t, dir, "en_US")

	t.Setenv("DICPATH", dir)

	pair, err := dictionary.Resolve("en_US")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "en_US.aff"), pair.AffPath)
	require.Equal(t, filepath.Join(dir, "en_US.dic"), pair.DicPath)
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	writeDictPair(t, dir, "de_DE")

	for _, selector := range []string{
		filepath.Join(dir, "de_DE.aff"),
		filepath.Join(dir, "de_DE.dic"),
		filepath.Join(dir, "de_DE"),
	} {
		pair, err := dictionary.Resolve(selector)
		require.NoError(t, err, "selector %s", selector)
		require.Equal(t, filepath.Join(dir, "de_DE.aff"), pair.AffPath)
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Setenv("DICPATH", t.TempDir())

	_, err := dictionary.Resolve("xx_XX")
	require.Error(t, err)
	require.IsType(t, dictionary.NotFoundError{}, err)
	require.Contains(t, err.Error(), "xx_XX")
}

func TestResolveHalfPairIsNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr_FR.dic"), []byte("1\nbonjour\n"), 0600))

	t.Setenv("DICPATH", dir)

	_, err := dictionary.Resolve("fr_FR")
	require.IsType(t, dictionary.NotFoundError{}, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDictPair(t, dir, "en_US")

	t.Setenv("DICPATH", dir)

	speller, err := dictionary.Load("en_US")
	require.NoError(t, err)
	require.True(t, speller.Spell("hello"))
	require.False(t, speller.Spell("wrold"))
}

func writeDictPair(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".aff"), []byte("SET UTF-8\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".dic"), []byte("2\nhello\nworld\n"), 0600))
}
