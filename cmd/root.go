// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modrecipes/recipe-check/internal/cobraext"
	"github.com/modrecipes/recipe-check/internal/logger"
)

var commands = []*cobraext.Command{
	setupValidateCommand(),
	setupVersionCommand(),
}

// RootCmd creates and returns root cmd for recipe-check
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "recipe-check",
		Short:        "recipe-check - Command line tool for validating datapack recipe files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cobraext.ComposeCommandActions(cmd, args,
				processPersistentFlags,
				changeDirectory,
			)
		},
	}
	rootCmd.PersistentFlags().BoolP(cobraext.VerboseFlagName, cobraext.VerboseFlagShorthand, false, cobraext.VerboseFlagDescription)
	rootCmd.PersistentFlags().StringP(cobraext.ChangeDirectoryFlagName, cobraext.ChangeDirectoryFlagShorthand, "", cobraext.ChangeDirectoryFlagDescription)

	for _, cmd := range commands {
		rootCmd.AddCommand(cmd.Command)
	}
	return rootCmd
}

// Commands returns the list of commands that have been setup for recipe-check.
func Commands() []*cobraext.Command {
	sort.SliceStable(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	return commands
}

func processPersistentFlags(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool(cobraext.VerboseFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.VerboseFlagName)
	}

	if verbose {
		logger.EnableDebugMode()
	}
	return nil
}

func changeDirectory(cmd *cobra.Command, args []string) error {
	workDir, err := cmd.Flags().GetString(cobraext.ChangeDirectoryFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.ChangeDirectoryFlagName)
	}
	if workDir == "" {
		return nil
	}

	err = os.Chdir(workDir)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.ChangeDirectoryFlagName)
	}
	logger.Debugf("changed working directory to %q", workDir)
	return nil
}
