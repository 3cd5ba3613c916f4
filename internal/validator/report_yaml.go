// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReportFormatYAML reports validation results in the YAML format
const ReportFormatYAML ReportFormat = "yaml"

func init() {
	RegisterReportFormat(ReportFormatYAML, reportYAMLFormat)
}

func reportYAMLFormat(results Results) (string, error) {
	out, err := yaml.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("unable to format results as YAML: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
