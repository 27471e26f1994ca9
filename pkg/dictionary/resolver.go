// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/client9/gospell"
)

// DefaultSelector is the dictionary used when the invoker picks none.
const DefaultSelector = "en_US"

var defaultSearchDirs = []string{
	"/usr/local/share/hunspell",
	"/usr/share/hunspell",
	"/usr/share/myspell",
	"/usr/share/myspell/dicts",
}

// Pair points at the two files making up one hunspell dictionary.
type Pair struct {
	AffPath string
	DicPath string
}

type NotFoundError struct {
	Selector string
	Searched []string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Expected dictionary selector '%s' to resolve to a .aff/.dic pair (searched: %s)",
		e.Selector, strings.Join(e.Searched, ", "))
}

// Resolve turns a selector into a concrete dictionary file pair. Selectors
// containing a path separator or a .aff/.dic suffix are treated as explicit
// paths; anything else is a language name looked up in $DICPATH entries first,
// then the system dictionary directories.
func Resolve(selector string) (Pair, error) {
	if selector == "" {
		selector = DefaultSelector
	}

	if isExplicitPath(selector) {
		base := strings.TrimSuffix(strings.TrimSuffix(selector, ".aff"), ".dic")
		pair, found := pairAt(base)
		if !found {
			return Pair{}, NotFoundError{Selector: selector, Searched: []string{base + ".aff", base + ".dic"}}
		}
		return pair, nil
	}

	var searched []string

	for _, dir := range searchDirs() {
		base := filepath.Join(dir, selector)
		pair, found := pairAt(base)
		if found {
			return pair, nil
		}
		searched = append(searched, dir)
	}

	return Pair{}, NotFoundError{Selector: selector, Searched: searched}
}

// Load resolves selector and reads the dictionary pair into a checker.
func Load(selector string) (*gospell.GoSpell, error) {
	pair, err := Resolve(selector)
	if err != nil {
		return nil, err
	}

	speller, err := gospell.NewGoSpell(pair.AffPath, pair.DicPath)
	if err != nil {
		return nil, fmt.Errorf("Loading dictionary '%s': %s", selector, err)
	}

	return speller, nil
}

func isExplicitPath(selector string) bool {
	return strings.ContainsRune(selector, os.PathSeparator) ||
		strings.HasSuffix(selector, ".aff") || strings.HasSuffix(selector, ".dic")
}

func pairAt(base string) (Pair, bool) {
	pair := Pair{AffPath: base + ".aff", DicPath: base + ".dic"}

	for _, path := range []string{pair.AffPath, pair.DicPath} {
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			return Pair{}, false
		}
	}

	return pair, true
}

func searchDirs() []string {
	var dirs []string

	if dicPath := os.Getenv("DICPATH"); dicPath != "" {
		dirs = append(dirs, filepath.SplitList(dicPath)...)
	}

	return append(dirs, defaultSearchDirs...)
}
