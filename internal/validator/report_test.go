// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/modrecipes/recipe-check/internal/validator"
)

func sampleResults() validator.Results {
	return validator.Results{
		ValidatedFiles: 3,
		Warnings: []validator.Diagnostic{
			{Severity: validator.SeverityWarning, Path: "mixing/syrup.json", Message: "Results array is empty"},
		},
		Errors: []validator.Diagnostic{
			{Severity: validator.SeverityError, Path: "cutting/logs.json", Message: "Cutting recipe missing 'ingredients' field"},
		},
	}
}

func TestReportHumanFormat(t *testing.T) {
	color.NoColor = true

	report, err := validator.FormatReport(validator.ReportFormatHuman, sampleResults())
	require.NoError(t, err)

	assert.Contains(t, report, "=== Warnings ===")
	assert.Contains(t, report, "[WARNING] mixing/syrup.json: Results array is empty")
	assert.Contains(t, report, "=== Errors ===")
	assert.Contains(t, report, "[ERROR] cutting/logs.json: Cutting recipe missing 'ingredients' field")
	assert.Contains(t, report, "Found 1 error(s) in recipes")
}

func TestReportHumanFormatAllValid(t *testing.T) {
	color.NoColor = true

	report, err := validator.FormatReport(validator.ReportFormatHuman, validator.Results{ValidatedFiles: 7})
	require.NoError(t, err)

	assert.NotContains(t, report, "=== Warnings ===")
	assert.NotContains(t, report, "=== Errors ===")
	assert.Contains(t, report, "All 7 recipes are valid!")
}

func TestReportJSONFormat(t *testing.T) {
	report, err := validator.FormatReport(validator.ReportFormatJSON, sampleResults())
	require.NoError(t, err)

	var decoded validator.Results
	require.NoError(t, json.Unmarshal([]byte(report), &decoded))
	assert.Equal(t, sampleResults(), decoded)
}

func TestReportYAMLFormat(t *testing.T) {
	report, err := validator.FormatReport(validator.ReportFormatYAML, sampleResults())
	require.NoError(t, err)

	var decoded validator.Results
	require.NoError(t, yaml.Unmarshal([]byte(report), &decoded))
	assert.Equal(t, sampleResults(), decoded)
}

func TestReportUnknownFormat(t *testing.T) {
	_, err := validator.FormatReport("junit", sampleResults())
	assert.Error(t, err)
}
