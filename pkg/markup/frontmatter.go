// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterDelim = []byte("---")

// proseFields are the front matter keys whose values are human prose worth
// spell-checking. Everything else (dates, layouts, image paths) is metadata.
var proseFields = []string{"title", "subtitle", "description", "categories"}

// splitFrontMatter separates a leading YAML front matter block (delimited by
// '---' lines, as in Quarto and Jekyll style documents) from the body. Returns
// a nil front matter when there is none.
func splitFrontMatter(data []byte) ([]byte, []byte) {
	if !bytes.HasPrefix(data, frontMatterDelim) {
		return nil, data
	}

	rest := data[len(frontMatterDelim):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, data
	}
	rest = rest[1:]

	offset := 0
	for offset <= len(rest) {
		lineEnd := bytes.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		next := len(rest)
		if lineEnd >= 0 {
			line = rest[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}

		trimmed := strings.TrimRight(string(line), "\r")
		if trimmed == "---" || trimmed == "..." {
			return rest[:offset], rest[next:]
		}

		if lineEnd < 0 {
			break
		}
		offset = next
	}

	// unterminated front matter; treat whole document as body
	return nil, data
}

func proseFromFrontMatter(frontMatter []byte) (string, error) {
	var meta map[string]interface{}

	err := yaml.Unmarshal(frontMatter, &meta)
	if err != nil {
		return "", fmt.Errorf("Parsing front matter: %s", err)
	}

	var pieces []string

	for _, field := range proseFields {
		switch val := meta[field].(type) {
		case string:
			pieces = append(pieces, val)
		case []interface{}:
			for _, item := range val {
				if str, ok := item.(string); ok {
					pieces = append(pieces, str)
				}
			}
		}
	}

	return strings.Join(pieces, "\n"), nil
}
