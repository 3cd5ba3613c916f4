// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import (
	"fmt"
	"os"

	"github.com/modrecipes/recipe-check/internal/logger"
)

// ReportOutput represents an output for a validation report
type ReportOutput string

// ReportOutputFunc defines the report writer function.
type ReportOutputFunc func(report, path string) error

var reportOutputs = map[ReportOutput]ReportOutputFunc{}

// RegisterReportOutput registers a validation report output.
func RegisterReportOutput(name ReportOutput, outputFunc ReportOutputFunc) {
	reportOutputs[name] = outputFunc
}

// WriteReport delegates writing of the validation report to the registered output.
func WriteReport(name ReportOutput, report, path string) error {
	outputFunc, defined := reportOutputs[name]
	if !defined {
		return fmt.Errorf("unregistered report output: %s", name)
	}

	return outputFunc(report, path)
}

const (
	// ReportOutputSTDOUT prints the report to the standard output stream.
	ReportOutputSTDOUT ReportOutput = "stdout"

	// ReportOutputFile saves the report to a file.
	ReportOutputFile ReportOutput = "file"
)

func init() {
	RegisterReportOutput(ReportOutputSTDOUT, reportToSTDOUT)
	RegisterReportOutput(ReportOutputFile, reportToFile)
}

func reportToSTDOUT(report, _ string) error {
	fmt.Println(report)
	return nil
}

func reportToFile(report, path string) error {
	logger.Debugf("writing report to file (path: %s)", path)

	err := os.WriteFile(path, []byte(report+"\n"), 0644)
	if err != nil {
		return fmt.Errorf("writing report file failed (path: %s): %w", path, err)
	}
	return nil
}
