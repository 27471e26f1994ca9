// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell_test

import (
	"regexp"
	"strings"
	"testing"

	"carvel.dev/spellgate/pkg/files"
	"carvel.dev/spellgate/pkg/spell"
	"github.com/client9/gospell"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := spell.Tokenize("Hello, wrold! It's CI-friendly. sha256 2nd v2 a")

	require.Equal(t, []string{"Hello", "wrold", "It's", "CI", "friendly"}, tokens)
}

func TestTokenizeCurlyApostrophe(t *testing.T) {
	tokens := spell.Tokenize("don’t")
	require.Equal(t, []string{"don't"}, tokens)
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "Some prose, with punctuation; and more."
	first := spell.Tokenize(text)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, spell.Tokenize(text))
	}
}

func TestCheckTextFlagsUnknownTokens(t *testing.T) {
	checker := spell.NewChecker(englishSpeller(t), nil)

	unknown := checker.CheckText("Hello wrold. Hello wrold.")
	require.Equal(t, []string{"wrold"}, unknown)
}

func TestCheckTextCasePreserved(t *testing.T) {
	checker := spell.NewChecker(englishSpeller(t), nil)

	unknown := checker.CheckText("Wrold and wrold.")
	require.Equal(t, []string{"Wrold", "wrold"}, unknown)
}

func TestCheckTextIgnorePatterns(t *testing.T) {
	checker := spell.NewChecker(englishSpeller(t), []*regexp.Regexp{regexp.MustCompile(`^[A-Z]+$`)})

	unknown := checker.CheckText("YAML wrold")
	require.Equal(t, []string{"wrold"}, unknown)
}

func TestCheckFileRejectsInvalidUTF8(t *testing.T) {
	checker := spell.NewChecker(englishSpeller(t), nil)

	file := files.MustNewFileFromSource(files.NewBytesSource("bad.md", []byte{0xff, 0xfe, 'h', 'i'}))

	_, err := checker.CheckFile(file)
	require.Error(t, err)
	require.IsType(t, spell.EncodingError{}, err)
	require.Contains(t, err.Error(), "bad.md")
}

func TestCheckFileSkipsCodeBlocks(t *testing.T) {
	checker := spell.NewChecker(englishSpeller(t), nil)

	doc := "Hello world.\n\n```\nwrold := notAWord\n```\n"
	file := files.MustNewFileFromSource(files.NewBytesSource("doc.md", []byte(doc)))

	unknown, err := checker.CheckFile(file)
	require.NoError(t, err)
	require.Empty(t, unknown)
}

func englishSpeller(t *testing.T) *gospell.GoSpell {
	t.Helper()

	aff := "SET UTF-8\n"
	dic := "8\nhello\nworld\nand\nsome\nprose\nwith\npunctuation\nmore\n"

	speller, err := gospell.NewGoSpellReader(strings.NewReader(aff), strings.NewReader(dic))
	require.NoError(t, err)
	return speller
}
