// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cobraext

import "fmt"

// Global flags
const (
	VerboseFlagName        = "verbose"
	VerboseFlagShorthand   = "v"
	VerboseFlagDescription = "verbose mode"

	ChangeDirectoryFlagName        = "change-directory"
	ChangeDirectoryFlagShorthand   = "C"
	ChangeDirectoryFlagDescription = "change to the specified directory before running the command"
)

// Flag names and descriptions used by CLI commands
const (
	RecipesRootFlagName        = "root"
	RecipesRootFlagShorthand   = "R"
	RecipesRootFlagDescription = "root directory with recipe files"

	FilterFlagName        = "filter"
	FilterFlagDescription = "validate only recipe files whose relative path matches the glob pattern"

	ReportFormatFlagName        = "report-format"
	ReportFormatFlagDescription = "format of the validation report"

	ReportOutputFlagName        = "report-output"
	ReportOutputFlagDescription = "output location for the validation report"

	ReportOutputPathFlagName        = "report-output-path"
	ReportOutputPathFlagDescription = "output path for the validation report (defaults to recipe-check-report.txt in the recipes root)"
)

// FlagParsingError method wraps the original error with parsing error.
func FlagParsingError(err error, flagName string) error {
	return fmt.Errorf("error parsing --%s flag: %w", flagName, err)
}
