// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package validator checks datapack recipe files against the known recipe
// schemas. A run walks the recipes root, dispatches every file to the rule
// set registered for its "type" field and collects warnings and errors.
package validator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/modrecipes/recipe-check/internal/logger"
	"github.com/modrecipes/recipe-check/internal/recipes"
)

// Options configure a validation run.
type Options struct {
	// RootPath is the directory walked for recipe files.
	RootPath string

	// Filter keeps only the recipe files whose relative path matches. A nil
	// filter keeps everything.
	Filter glob.Glob

	// ExtraTypes lists recipe types accepted as known besides the built-in
	// rule sets. Files with these types are not checked further.
	ExtraTypes []string
}

// Run is a single validation pass over a recipes root. All collected state is
// owned by the run, so independent runs never observe each other.
type Run struct {
	options    Options
	extraTypes map[string]struct{}

	out io.Writer

	validatedFiles int
	warnings       []Diagnostic
	errors         []Diagnostic
}

// NewRun creates a validation run with the given options. Progress lines are
// printed to stdout.
func NewRun(options Options) *Run {
	extraTypes := make(map[string]struct{}, len(options.ExtraTypes))
	for _, t := range options.ExtraTypes {
		extraTypes[t] = struct{}{}
	}
	return &Run{
		options:    options,
		extraTypes: extraTypes,
		out:        os.Stdout,
	}
}

// SetOutput redirects the progress lines of the run, used in tests.
func (r *Run) SetOutput(out io.Writer) {
	r.out = out
}

// Execute validates all recipe files under the root. Per-file problems become
// diagnostics and never abort the run; the only fatal condition is a missing
// root directory.
func (r *Run) Execute() error {
	fmt.Fprintln(r.out, "=== Validating Recipes ===")

	paths, err := recipes.FindRecipeFiles(r.options.RootPath)
	if err != nil {
		return err
	}

	if r.options.Filter != nil {
		var kept []string
		for _, path := range paths {
			if r.options.Filter.Match(path) {
				kept = append(kept, path)
			}
		}
		logger.Debugf("filter kept %d out of %d recipe files", len(kept), len(paths))
		paths = kept
	}

	fmt.Fprintf(r.out, "Found %d recipe files\n", len(paths))

	for _, path := range paths {
		fmt.Fprintf(r.out, "Validating: %s\n", path)
		r.validateFile(path)
	}
	return nil
}

// Results returns the collected diagnostics and counters of the run.
func (r *Run) Results() Results {
	return Results{
		ValidatedFiles: r.validatedFiles,
		Warnings:       r.warnings,
		Errors:         r.errors,
	}
}

func (r *Run) validateFile(path string) {
	r.validatedFiles++

	doc, err := recipes.ReadRecipeFile(filepath.Join(r.options.RootPath, filepath.FromSlash(path)))
	if err != nil {
		r.addError(path, err.Error())
		return
	}
	r.validateRecipe(path, doc)
}

// validateRecipe performs the structural checks and dispatches to the rule
// set registered for the recipe type. Rule sets can assume the recipe is a
// top-level object with a "type" field.
func (r *Run) validateRecipe(path string, doc any) {
	recipe, ok := doc.(map[string]any)
	if !ok {
		r.addError(path, "Root element is not a JSON object")
		return
	}

	rawType, found := recipe["type"]
	if !found {
		r.addError(path, "Missing required field: 'type'")
		return
	}

	recipeType, _ := rawType.(string)
	if ruleSet, known := ruleSets[recipeType]; known {
		ruleSet(r, path, recipe)
		return
	}
	if _, accepted := r.extraTypes[recipeType]; accepted {
		logger.Debugf("accepting extra recipe type %q (path: %s)", recipeType, path)
		return
	}
	r.addWarning(path, fmt.Sprintf("Unknown recipe type: %v", rawType))
}

func (r *Run) addError(path, message string) {
	r.errors = append(r.errors, Diagnostic{Severity: SeverityError, Path: path, Message: message})
}

func (r *Run) addWarning(path, message string) {
	r.warnings = append(r.warnings, Diagnostic{Severity: SeverityWarning, Path: path, Message: message})
}
