// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/spellgate/pkg/cmd/check"
	"carvel.dev/spellgate/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type SpellgateOptions struct{}

func NewDefaultSpellgateOptions() *SpellgateOptions {
	return &SpellgateOptions{}
}

func NewDefaultSpellgateCmd() *cobra.Command {
	return NewSpellgateCmd(NewDefaultSpellgateOptions())
}

func NewSpellgateCmd(o *SpellgateOptions) *cobra.Command {
	cmd := check.NewCmd(check.NewOptions())

	cmd.Use = "spellgate"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "spellgate gates CI runs on documentation spelling"
	cmd.Long = `spellgate gates CI runs on documentation spelling.

It collects documentation files under a project root, spell-checks their
prose against a hunspell dictionary, subtracts the committed allow-list and
exits non-zero when violations remain.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(check.NewCmd(check.NewOptions())) // root runs check; kept as named subcommand too
	cmd.AddCommand(check.NewRegenerateCmd(check.NewRegenerateOptions()))
	cmd.AddCommand(check.NewPruneCmd(check.NewPruneOptions()))
	cmd.AddCommand(NewServerCmd(NewServerOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
