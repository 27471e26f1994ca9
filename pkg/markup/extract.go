// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"bytes"
	"fmt"

	"carvel.dev/spellgate/pkg/files"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractProse returns the prose contained in data, interpreted according to
// fileType. Markdown family types are parsed; everything else is returned
// whole. Extraction is pure: same input bytes always produce the same prose.
func ExtractProse(fileType files.Type, data []byte) (string, error) {
	switch fileType {
	case files.TypeMarkdown, files.TypeQuarto:
		frontMatter, body := splitFrontMatter(data)

		var buf bytes.Buffer

		if len(frontMatter) > 0 {
			prose, err := proseFromFrontMatter(frontMatter)
			if err != nil {
				return "", err
			}
			buf.WriteString(prose)
			buf.WriteString("\n")
		}

		buf.WriteString(proseFromMarkdown(body))

		return buf.String(), nil

	default:
		return string(data), nil
	}
}

func proseFromMarkdown(source []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.CodeSpan, *ast.HTMLBlock, *ast.RawHTML, *ast.AutoLink:
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			buf.WriteString("\n")
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		// the walk callback never errors
		panic(fmt.Sprintf("Unreachable markdown walk error: %s", err))
	}

	return buf.String()
}
