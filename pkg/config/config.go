// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package config reads the optional per-project spellgate configuration file.
// Flags always win over config values; the file exists so that CI and local
// runs agree without repeating flags.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	goversion "github.com/hashicorp/go-version"
)

// DefaultFileName is looked up relative to the project root when no explicit
// config path is given.
const DefaultFileName = ".spellgate.toml"

type Config struct {
	Extensions []string `toml:"extensions"`
	Dictionary string   `toml:"dictionary"`
	AllowList  string   `toml:"allow_list"`
	Ignore     []string `toml:"ignore"`
	MinVersion string   `toml:"min_version"`
}

// Load reads a config file. When optional is true a missing file is not an
// error; it yields the zero Config.
func Load(path string, optional bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("Reading config '%s': %s", path, err)
	}

	var cfg Config

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("Parsing config '%s': %s", path, err)
	}

	return cfg, nil
}

// CheckBinaryVersion enforces min_version against the running binary, failing
// fast so a stale CI image cannot produce results the project does not trust.
func (c Config) CheckBinaryVersion(current string) error {
	if c.MinVersion == "" {
		return nil
	}

	constraint, err := goversion.NewConstraint(c.MinVersion)
	if err != nil {
		return fmt.Errorf("Parsing min_version constraint '%s': %s", c.MinVersion, err)
	}

	binVersion, err := goversion.NewVersion(current)
	if err != nil {
		return fmt.Errorf("Parsing binary version '%s': %s", current, err)
	}

	if !constraint.Check(binVersion) {
		return fmt.Errorf("Expected binary version '%s' to satisfy min_version '%s'", current, c.MinVersion)
	}

	return nil
}

// IgnorePatterns compiles the configured ignore regexps.
func (c Config) IgnorePatterns() ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp

	for _, expr := range c.Ignore {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("Compiling ignore pattern '%s': %s", expr, err)
		}
		patterns = append(patterns, pattern)
	}

	return patterns, nil
}
