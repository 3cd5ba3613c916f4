// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/table"
)

// ReportFormatHuman reports validation results in a human-readable format
const ReportFormatHuman ReportFormat = "human"

func init() {
	RegisterReportFormat(ReportFormatHuman, reportHumanFormat)
}

func reportHumanFormat(results Results) (string, error) {
	var report strings.Builder

	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	if len(results.Warnings) > 0 {
		bold.Fprintln(&report, "=== Warnings ===")
		for _, warning := range results.Warnings {
			fmt.Fprintln(&report, warning)
		}
		fmt.Fprintln(&report)
	}

	if len(results.Errors) > 0 {
		bold.Fprintln(&report, "=== Errors ===")
		for _, err := range results.Errors {
			fmt.Fprintln(&report, err)
		}
		fmt.Fprintln(&report)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Validated files", "Warnings", "Errors"})
	t.AppendRow(table.Row{results.ValidatedFiles, len(results.Warnings), len(results.Errors)})
	report.WriteString(t.Render())
	fmt.Fprintln(&report)
	fmt.Fprintln(&report)

	if results.Failed() {
		red.Fprintf(&report, "❌ Found %d error(s) in recipes", len(results.Errors))
	} else {
		green.Fprintf(&report, "✓ All %d recipes are valid!", results.ValidatedFiles)
	}

	return report.String(), nil
}
