// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"carvel.dev/spellgate/pkg/allowlist"
	"carvel.dev/spellgate/pkg/config"
	"carvel.dev/spellgate/pkg/dictionary"
	"carvel.dev/spellgate/pkg/files"
	"carvel.dev/spellgate/pkg/spell"
	"carvel.dev/spellgate/pkg/version"
	"github.com/spf13/cobra"
)

// DefaultAllowListPath is relative to the project root.
const DefaultAllowListPath = ".spellgate-allowlist.txt"

var defaultExtensions = []string{".md"}

// InputFlags carries the configuration shared by check, regenerate and prune.
// Empty values fall back to the project config file, then to built-in
// defaults; explicit flags always win.
type InputFlags struct {
	Root          string
	Extensions    []string
	AllowListPath string
	Dictionary    string
	ConfigPath    string

	SymlinkAllowOpts files.SymlinkAllowOpts
}

func (f *InputFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Root, "root", "r", ".", "Project root directory holding documentation")
	cmd.Flags().StringArrayVarP(&f.Extensions, "ext", "e", nil,
		"Documentation filename suffix (default .md; can be specified multiple times)")
	cmd.Flags().StringVarP(&f.AllowListPath, "allow-list", "a", "",
		fmt.Sprintf("Allow-list path relative to root, or HTTP URL (default %s)", DefaultAllowListPath))
	cmd.Flags().StringVarP(&f.Dictionary, "dictionary", "d", "",
		fmt.Sprintf("Dictionary selector: language name or .aff/.dic path (default %s)", dictionary.DefaultSelector))
	cmd.Flags().StringVarP(&f.ConfigPath, "config", "c", "",
		fmt.Sprintf("Config file path (default %s under root, when present)", config.DefaultFileName))
	cmd.Flags().BoolVar(&f.SymlinkAllowOpts.AllowAll, "dangerous-allow-all-symlink-destinations", false,
		"Symlinks to all destinations are allowed")
	cmd.Flags().StringArrayVar(&f.SymlinkAllowOpts.AllowedDstPaths, "allow-symlink-destination", nil,
		"File paths to which symlinks are allowed (can be specified multiple times)")
}

// Input is everything a gate command operates on, assembled once up front.
type Input struct {
	Files         []*files.File
	AllowList     *allowlist.AllowList
	AllowListPath string
	Checker       *spell.Checker
}

// Input resolves flags and config, loads the dictionary (before any document
// is touched, so a bad selector aborts the run first), collects the document
// set and loads the allow-list. A missing allow-list file reads as empty.
func (f *InputFlags) Input() (Input, error) {
	resolved, err := f.Resolve()
	if err != nil {
		return Input{}, err
	}

	speller, err := dictionary.Load(resolved.Dictionary)
	if err != nil {
		return Input{}, err
	}

	filesToCheck, err := files.NewSortedFilesFromRoot(resolved.Root, resolved.Extensions, f.SymlinkAllowOpts)
	if err != nil {
		return Input{}, err
	}

	allowList, err := loadAllowList(resolved.AllowListPath)
	if err != nil {
		return Input{}, err
	}

	return Input{
		Files:         filesToCheck,
		AllowList:     allowList,
		AllowListPath: resolved.AllowListPath,
		Checker:       spell.NewChecker(speller, resolved.Ignore),
	}, nil
}

// Resolved is InputFlags merged with the project config file.
type Resolved struct {
	Root          string
	Extensions    []string
	AllowListPath string
	Dictionary    string
	Ignore        []*regexp.Regexp
}

func (f *InputFlags) Resolve() (Resolved, error) {
	cfgPath := f.ConfigPath
	optional := cfgPath == ""
	if optional {
		cfgPath = filepath.Join(f.Root, config.DefaultFileName)
	}

	cfg, err := config.Load(cfgPath, optional)
	if err != nil {
		return Resolved{}, err
	}

	err = cfg.CheckBinaryVersion(version.Version)
	if err != nil {
		return Resolved{}, err
	}

	ignore, err := cfg.IgnorePatterns()
	if err != nil {
		return Resolved{}, err
	}

	resolved := Resolved{
		Root:          f.Root,
		Extensions:    firstNonEmptyList(f.Extensions, cfg.Extensions, defaultExtensions),
		AllowListPath: firstNonEmpty(f.AllowListPath, cfg.AllowList, DefaultAllowListPath),
		Dictionary:    firstNonEmpty(f.Dictionary, cfg.Dictionary, dictionary.DefaultSelector),
		Ignore:        ignore,
	}

	if !isURL(resolved.AllowListPath) && !filepath.IsAbs(resolved.AllowListPath) {
		resolved.AllowListPath = filepath.Join(resolved.Root, resolved.AllowListPath)
	}

	return resolved, nil
}

func loadAllowList(path string) (*allowlist.AllowList, error) {
	if isURL(path) {
		return allowlist.LoadAllowList(files.NewHTTPSource(path))
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return allowlist.NewAllowList(nil), nil
	}

	return allowlist.LoadAllowList(files.NewLocalSource(path, ""))
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func firstNonEmpty(vals ...string) string {
	for _, val := range vals {
		if val != "" {
			return val
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, list := range lists {
		if len(list) > 0 {
			return list
		}
	}
	return nil
}
