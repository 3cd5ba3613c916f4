// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import "fmt"

// Severity qualifies a diagnostic. Only errors affect the run outcome.
type Severity string

const (
	// SeverityError marks a diagnostic that fails the validation run.
	SeverityError Severity = "ERROR"

	// SeverityWarning marks a diagnostic that is reported but never fails the run.
	SeverityWarning Severity = "WARNING"
)

// Diagnostic is a single validation finding tied to a recipe file.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Severity, d.Path, d.Message)
}

// Results aggregates the outcome of a validation run for reporting.
type Results struct {
	ValidatedFiles int          `json:"validated_files" yaml:"validated_files"`
	Warnings       []Diagnostic `json:"warnings" yaml:"warnings"`
	Errors         []Diagnostic `json:"errors" yaml:"errors"`
}

// Failed reports whether the run collected at least one error.
func (r Results) Failed() bool {
	return len(r.Errors) > 0
}
