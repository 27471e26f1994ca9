// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup_test

import (
	"testing"

	"carvel.dev/spellgate/pkg/files"
	"carvel.dev/spellgate/pkg/markup"
	"github.com/stretchr/testify/require"
)

func TestExtractProseSkipsCode(t *testing.T) {
	doc := []byte(`# Heading

Some prose here.

` + "```go" + `
func identifiersAreNotProse() {}
` + "```" + `

Inline ` + "`codeSpanToken`" + ` stays out, prose stays in.

    indentedCodeBlock := true

Tail prose.
`)

	prose, err := markup.ExtractProse(files.TypeMarkdown, doc)
	require.NoError(t, err)

	require.Contains(t, prose, "Heading")
	require.Contains(t, prose, "Some prose here.")
	require.Contains(t, prose, "prose stays in.")
	require.Contains(t, prose, "Tail prose.")

	require.NotContains(t, prose, "identifiersAreNotProse")
	require.NotContains(t, prose, "codeSpanToken")
	require.NotContains(t, prose, "indentedCodeBlock")
}

func TestExtractProseKeepsLinkTextDropsDestination(t *testing.T) {
	doc := []byte(`See [the guide](https://example.com/gudie-pth) for details.`)

	prose, err := markup.ExtractProse(files.TypeMarkdown, doc)
	require.NoError(t, err)

	require.Contains(t, prose, "the guide")
	require.NotContains(t, prose, "gudie-pth")
}

func TestExtractProseFrontMatter(t *testing.T) {
	doc := []byte(`---
title: "A Wonderfull Post"
date: 2023-02-17
categories: [news, anouncements]
image: imgs/cover-phto.png
---

Body prose.
`)

	prose, err := markup.ExtractProse(files.TypeQuarto, doc)
	require.NoError(t, err)

	require.Contains(t, prose, "A Wonderfull Post")
	require.Contains(t, prose, "anouncements")
	require.Contains(t, prose, "Body prose.")

	// non-prose metadata values are not checked
	require.NotContains(t, prose, "cover-phto")
	require.NotContains(t, prose, "2023")
}

func TestExtractProseBadFrontMatter(t *testing.T) {
	doc := []byte("---\ntitle: [unclosed\n---\nbody\n")

	_, err := markup.ExtractProse(files.TypeMarkdown, doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Parsing front matter")
}

func TestExtractProsePlainText(t *testing.T) {
	doc := []byte("anything goes here, even `backticks`\n")

	prose, err := markup.ExtractProse(files.TypeText, doc)
	require.NoError(t, err)
	require.Equal(t, string(doc), prose)
}

func TestExtractProseDeterministic(t *testing.T) {
	doc := []byte("---\ntitle: Post\n---\n# One\n\nTwo [three](x) `four`\n")

	first, err := markup.ExtractProse(files.TypeMarkdown, doc)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := markup.ExtractProse(files.TypeMarkdown, doc)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
