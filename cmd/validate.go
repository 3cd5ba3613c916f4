// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/modrecipes/recipe-check/internal/cobraext"
	"github.com/modrecipes/recipe-check/internal/configuration"
	"github.com/modrecipes/recipe-check/internal/recipes"
	"github.com/modrecipes/recipe-check/internal/validator"
)

const validateLongDescription = `Use this command to validate datapack recipe files.

The command walks the recipes root directory, parses every recipe file and checks it against the schema of its recipe type. Unknown recipe types are reported as warnings. The command fails if any recipe file contains an error.

An optional recipe-check.yml file in the working directory can set the default recipes root and accept additional recipe types.`

const defaultReportName = "recipe-check-report.txt"

func setupValidateCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate recipe files",
		Long:  validateLongDescription,
		Args:  cobra.NoArgs,
		RunE:  validateCommandAction,
	}
	cmd.Flags().StringP(cobraext.RecipesRootFlagName, cobraext.RecipesRootFlagShorthand, "", cobraext.RecipesRootFlagDescription)
	cmd.Flags().String(cobraext.FilterFlagName, "", cobraext.FilterFlagDescription)
	cmd.Flags().String(cobraext.ReportFormatFlagName, string(validator.ReportFormatHuman), cobraext.ReportFormatFlagDescription)
	cmd.Flags().String(cobraext.ReportOutputFlagName, string(validator.ReportOutputSTDOUT), cobraext.ReportOutputFlagDescription)
	cmd.Flags().String(cobraext.ReportOutputPathFlagName, "", cobraext.ReportOutputPathFlagDescription)

	return cobraext.NewCommand(cmd, cobraext.ContextRecipesRoot)
}

func validateCommandAction(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("reading current working directory failed: %w", err)
	}

	config, err := configuration.LoadConfiguration(workDir)
	if err != nil {
		return fmt.Errorf("reading run configuration failed: %w", err)
	}

	rootPath, err := cmd.Flags().GetString(cobraext.RecipesRootFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.RecipesRootFlagName)
	}
	if rootPath == "" {
		rootPath = config.RecipesDir
	}
	if rootPath == "" {
		rootPath = recipes.DefaultRecipesDir
	}

	filterPattern, err := cmd.Flags().GetString(cobraext.FilterFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.FilterFlagName)
	}
	var filter glob.Glob
	if filterPattern != "" {
		filter, err = glob.Compile(filterPattern)
		if err != nil {
			return fmt.Errorf("invalid recipe file filter pattern: %s: %w", filterPattern, err)
		}
	}

	reportFormat, err := cmd.Flags().GetString(cobraext.ReportFormatFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.ReportFormatFlagName)
	}

	reportOutput, err := cmd.Flags().GetString(cobraext.ReportOutputFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.ReportOutputFlagName)
	}

	reportPath, err := cmd.Flags().GetString(cobraext.ReportOutputPathFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.ReportOutputPathFlagName)
	}
	if reportPath == "" {
		reportPath = filepath.Join(workDir, defaultReportName)
	}

	run := validator.NewRun(validator.Options{
		RootPath:   rootPath,
		Filter:     filter,
		ExtraTypes: config.ExtraTypes,
	})
	err = run.Execute()
	if err != nil {
		return fmt.Errorf("validating recipes failed: %w", err)
	}
	results := run.Results()

	report, err := validator.FormatReport(validator.ReportFormat(reportFormat), results)
	if err != nil {
		return fmt.Errorf("formatting validation report failed: %w", err)
	}

	err = validator.WriteReport(validator.ReportOutput(reportOutput), report, reportPath)
	if err != nil {
		return fmt.Errorf("writing validation report failed: %w", err)
	}

	if results.Failed() {
		return fmt.Errorf("found %d error(s) in recipes", len(results.Errors))
	}
	return nil
}
