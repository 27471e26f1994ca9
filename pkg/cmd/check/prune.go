// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"
	"time"

	"carvel.dev/spellgate/pkg/allowlist"
	"carvel.dev/spellgate/pkg/cmd/ui"
	"carvel.dev/spellgate/pkg/files"
	"github.com/spf13/cobra"
)

type PruneOptions struct {
	Debug bool

	InputFlags InputFlags
}

func NewPruneOptions() *PruneOptions {
	return &PruneOptions{}
}

func NewPruneCmd(o *PruneOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Drop allow-list tokens no longer produced by any document",
		Long: `Drop allow-list tokens no longer produced by any document.

Orphaned tokens are harmless for correctness (check tolerates them), so this
is housekeeping only and is never run automatically.`,
		RunE: func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.InputFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *PruneOptions) Run() error {
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
		return fmt.Errorf("Expected allow-list '%s' to be a local path for prune", in.AllowListPath)
	}

	return o.RunWithFiles(in, ui)
}

func (o *PruneOptions) RunWithFiles(in Input, ui ui.UI) error {
	flagged, err := FlaggedTokens(in.Files, in.Checker, ui)
	if err != nil {
		return err
	}

	stillFlagged := map[string]struct{}{}
	for _, token := range allowlist.Union(flagged) {
		stillFlagged[token] = struct{}{}
	}

	var kept []string

	for _, token := range in.AllowList.Tokens() {
		if _, found := stillFlagged[token]; found {
			kept = append(kept, token)
			continue
		}
		ui.Warnf("pruning orphaned token '%s'\n", token)
	}

	pruned := in.AllowList.Len() - len(kept)
	if pruned == 0 {
		ui.Printf("nothing to prune: all %d token(s) still in use\n", in.AllowList.Len())
		return nil
	}

	newList := allowlist.NewAllowList(kept)

	err = files.NewOutputFile(in.AllowListPath, newList.Bytes()).Create("")
	if err != nil {
		return fmt.Errorf("Writing allow-list '%s': %s", in.AllowListPath, err)
	}

	ui.Printf("pruned %d token(s) from %s\n", pruned, in.AllowListPath)

	return nil
}
