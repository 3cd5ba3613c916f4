// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import (
	"encoding/json"
	"fmt"
)

// ReportFormatJSON reports validation results in the JSON format
const ReportFormatJSON ReportFormat = "json"

func init() {
	RegisterReportFormat(ReportFormatJSON, reportJSONFormat)
}

func reportJSONFormat(results Results) (string, error) {
	out, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", fmt.Errorf("unable to format results as JSON: %w", err)
	}
	return string(out), nil
}
