// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"
	"time"

	"carvel.dev/spellgate/pkg/allowlist"
	"carvel.dev/spellgate/pkg/cmd/ui"
	"carvel.dev/spellgate/pkg/files"
	"carvel.dev/spellgate/pkg/spell"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug bool

	InputFlags InputFlags
}

func NewOptions() *Options {
	return &Options{}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"c"},
		Short:   "Spell-check documentation and fail on tokens not covered by the allow-list",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.InputFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *Options) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	in, err := o.InputFlags.Input()
	if err != nil {
		return err
	}

	return o.RunWithFiles(in, ui)
}

// RunWithFiles runs the gate over an assembled Input; split out so tests can
// drive it with in-memory files.
func (o *Options) RunWithFiles(in Input, ui ui.UI) error {
	flagged, err := FlaggedTokens(in.Files, in.Checker, ui)
	if err != nil {
		return err
	}

	result := allowlist.NewGate(in.AllowList).Check(flagged)

	if !result.Pass() {
		for _, violation := range result.Violations {
			ui.Printf("%s\n", violation)
		}
		return fmt.Errorf("Expected no spelling violations, but found %d (see list above; "+
			"approve via 'spellgate regenerate' or fix the typos)", len(result.Violations))
	}

	ui.Debugf("checked %d file(s), no violations\n", len(in.Files))

	return nil
}

// FlaggedTokens checks every document and returns unknown tokens keyed by
// document path. Any per-document failure aborts the whole run; the gate is
// only meaningful over the complete document set.
func FlaggedTokens(filesToCheck []*files.File, checker *spell.Checker, ui ui.UI) (map[string][]string, error) {
	flagged := map[string][]string{}

	for _, file := range filesToCheck {
		tokens, err := checker.CheckFile(file)
		if err != nil {
			return nil, err
		}

		ui.Debugf("%s: %d unknown token(s)\n", file.RelativePath(), len(tokens))

		if len(tokens) > 0 {
			flagged[file.RelativePath()] = tokens
		}
	}

	return flagged, nil
}
