// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"
	"strings"
	"time"

	"carvel.dev/spellgate/pkg/allowlist"
	"carvel.dev/spellgate/pkg/cmd/ui"
	"carvel.dev/spellgate/pkg/files"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
)

type RegenerateOptions struct {
	Debug bool

	InputFlags InputFlags
}

func NewRegenerateOptions() *RegenerateOptions {
	return &RegenerateOptions{}
}

func NewRegenerateCmd(o *RegenerateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "regenerate",
		Aliases: []string{"regen"},
		Short:   "Rewrite the allow-list from the currently flagged tokens",
		Long: `Rewrite the allow-list from the currently flagged tokens.

This is the explicit maintenance path: a human runs it after reviewing that
the flagged tokens are acceptable (project names, jargon), then commits the
rewritten file. The gate itself never mutates the allow-list.`,
		RunE: func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.InputFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *RegenerateOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	in, err := o.InputFlags.Input()
	if err != nil {
		return err
	}

	if isURL(in.AllowListPath) {
		return fmt.Errorf("Expected allow-list '%s' to be a local path for regenerate", in.AllowListPath)
	}

	return o.RunWithFiles(in, ui)
}

func (o *RegenerateOptions) RunWithFiles(in Input, ui ui.UI) error {
	flagged, err := FlaggedTokens(in.Files, in.Checker, ui)
	if err != nil {
		return err
	}

	newList := allowlist.NewAllowList(allowlist.Union(flagged))

	printListDiff(ui, in.AllowList, newList)

	err = files.NewOutputFile(in.AllowListPath, newList.Bytes()).Create("")
	if err != nil {
		return fmt.Errorf("Writing allow-list '%s': %s", in.AllowListPath, err)
	}

	ui.Printf("regenerated %s: %d token(s)\n", in.AllowListPath, newList.Len())

	return nil
}

func printListDiff(ui ui.UI, oldList, newList *allowlist.AllowList) {
	oldTokens, newTokens := oldList.Tokens(), newList.Tokens()

	if len(oldTokens) == 0 && len(newTokens) == 0 {
		return
	}

	diff := difflib.PPDiff(oldTokens, newTokens)
	if strings.TrimSpace(diff) != "" {
		ui.Printf("%s\n", diff)
	}
}
