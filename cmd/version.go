// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modrecipes/recipe-check/internal/cobraext"
	"github.com/modrecipes/recipe-check/internal/version"
)

const versionLongDescription = `Use this command to print the version of recipe-check that you have installed. This is especially useful when reporting bugs.`

func setupVersionCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Long:  versionLongDescription,
		Args:  cobra.NoArgs,
		RunE:  versionCommandAction,
	}

	return cobraext.NewCommand(cmd, cobraext.ContextGlobal)
}

func versionCommandAction(cmd *cobra.Command, args []string) error {
	cmd.Printf("recipe-check %s (build time: %s, commit: %s)\n", version.Tag, version.BuildTimeFormatted(), version.CommitHash)
	return nil
}
