// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	markdownExts = []string{".md", ".markdown"}
	quartoExts   = []string{".qmd", ".Rmd"}
	textExts     = []string{".txt"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeMarkdown
	TypeQuarto
	TypeText
)

type File struct {
	src     Source
	relPath string
}

// NewSortedFilesFromRoot walks root recursively and returns a File for every
// regular file whose name ends in one of exts, ordered lexicographically by
// relative path. The walk happens fresh on every call; nothing is cached
// between invocations.
func NewSortedFilesFromRoot(root string, exts []string, symlinkOpts SymlinkAllowOpts) ([]*File, error) {
	rootInfo, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("Checking root '%s': %s", root, err)
	}

	if !rootInfo.IsDir() {
		return nil, fmt.Errorf("Expected root '%s' to be a directory", root)
	}

	var selectedPaths []string

	err = filepath.Walk(root, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		if !matchesExt(filepath.Base(walkedPath), exts) {
			return nil
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			err := (Symlink{walkedPath}).IsAllowed(symlinkOpts)
			if err != nil {
				return err
			}
		}
		selectedPaths = append(selectedPaths, walkedPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing files '%s': %s", root, err)
	}

	sort.Strings(selectedPaths)

	var result []*File

	for _, selectedPath := range selectedPaths {
		file, err := NewFileFromSource(NewLocalSource(selectedPath, root))
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}

	return result, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string  { return r.src.Description() }
func (r *File) RelativePath() string { return r.relPath }

// Bytes reads the file contents. A file that was listed by
// NewSortedFilesFromRoot but has since disappeared surfaces here as a read
// error; callers treat that as fatal for the whole run.
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	switch {
	case r.matchesExt(markdownExts):
		return TypeMarkdown
	case r.matchesExt(quartoExts):
		return TypeQuarto
	case r.matchesExt(textExts):
		return TypeText
	default:
		return TypeUnknown
	}
}

func (r *File) matchesExt(exts []string) bool {
	return matchesExt(filepath.Base(r.RelativePath()), exts)
}

func matchesExt(filename string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
