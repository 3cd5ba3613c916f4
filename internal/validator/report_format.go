// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import "fmt"

// ReportFormat represents a validation report format
type ReportFormat string

// ReportFormatFunc defines the report formatter function.
type ReportFormatFunc func(results Results) (string, error)

var reportFormatters = map[ReportFormat]ReportFormatFunc{}

// RegisterReportFormat registers a validation report formatter.
func RegisterReportFormat(name ReportFormat, formatFunc ReportFormatFunc) {
	reportFormatters[name] = formatFunc
}

// FormatReport delegates formatting of validation results to the registered formatter.
func FormatReport(name ReportFormat, results Results) (string, error) {
	formatFunc, defined := reportFormatters[name]
	if !defined {
		return "", fmt.Errorf("unregistered report format: %s", name)
	}

	return formatFunc(results)
}
