// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modrecipes/recipe-check/internal/recipes"
	"github.com/modrecipes/recipe-check/internal/validator"
)

func writeRecipeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
	return root
}

func TestRunExecute(t *testing.T) {
	root := writeRecipeFiles(t, map[string]string{
		"cutting/logs.json":     `{"type": "create:cutting", "ingredients": [{"tag": "minecraft:logs"}], "results": [{"item": "minecraft:oak_planks", "count": 4}]}`,
		"mixing/syrup.json":     `{"type": "create:mixing", "ingredients": [{"item": "minecraft:sugar"}], "results": [{"fluid": "mymod:syrup", "amount": 250}], "heatRequirement": "molten"}`,
		"broken.json":           `{"type": "create:cutting",`,
		"unknown/grinding.json": `{"type": "mymod:grinding"}`,
		"notes/readme.txt":      "not a recipe",
		"vanilla/ladder.json":   `{"type": "minecraft:crafting_shaped", "result": {"item": "minecraft:ladder"}}`,
	})

	var out bytes.Buffer
	run := validator.NewRun(validator.Options{RootPath: root})
	run.SetOutput(&out)
	require.NoError(t, run.Execute())

	results := run.Results()
	assert.Equal(t, 5, results.ValidatedFiles)

	// One parse error, one enum error; the malformed file does not stop the
	// walk and the text file is ignored entirely.
	require.Len(t, results.Errors, 2)
	assert.Equal(t, "broken.json", results.Errors[0].Path)
	assert.Contains(t, results.Errors[0].Message, "failed to parse JSON")
	assert.Equal(t, "mixing/syrup.json", results.Errors[1].Path)
	assert.Equal(t, "Invalid heatRequirement: molten", results.Errors[1].Message)

	require.Len(t, results.Warnings, 1)
	assert.Equal(t, "unknown/grinding.json", results.Warnings[0].Path)

	assert.Contains(t, out.String(), "=== Validating Recipes ===")
	assert.Contains(t, out.String(), "Found 5 recipe files")
	assert.Contains(t, out.String(), "Validating: cutting/logs.json")
}

func TestRunExecuteMissingRoot(t *testing.T) {
	run := validator.NewRun(validator.Options{RootPath: filepath.Join(t.TempDir(), "no-such-dir")})
	run.SetOutput(&bytes.Buffer{})

	err := run.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, recipes.ErrRootNotFound))
}

func TestRunExecuteFilter(t *testing.T) {
	root := writeRecipeFiles(t, map[string]string{
		"mixing/a.json":  `{"type": "create:mixing", "ingredients": [{"item": "minecraft:sugar"}], "results": [{"item": "mymod:candy"}]}`,
		"cutting/b.json": `{"type": "create:cutting"}`,
	})

	run := validator.NewRun(validator.Options{
		RootPath: root,
		Filter:   glob.MustCompile("mixing/*"),
	})
	run.SetOutput(&bytes.Buffer{})
	require.NoError(t, run.Execute())

	results := run.Results()
	assert.Equal(t, 1, results.ValidatedFiles)
	assert.Empty(t, results.Errors)
}

func TestRunIdempotence(t *testing.T) {
	root := writeRecipeFiles(t, map[string]string{
		"a.json": `{"type": "create:mechanical_crafting", "pattern": ["AB"], "key": {"A": {"item": "minecraft:iron_ingot"}, "C": {"item": "minecraft:stick"}}, "result": {"item": "mymod:gadget"}}`,
		"b.json": `{"type": "mymod:grinding"}`,
	})

	execute := func() (string, string) {
		var out bytes.Buffer
		run := validator.NewRun(validator.Options{RootPath: root})
		run.SetOutput(&out)
		require.NoError(t, run.Execute())

		report, err := validator.FormatReport(validator.ReportFormatJSON, run.Results())
		require.NoError(t, err)
		return out.String(), report
	}

	firstOut, firstReport := execute()
	secondOut, secondReport := execute()

	assert.Empty(t, cmp.Diff(firstOut, secondOut))
	assert.Empty(t, cmp.Diff(firstReport, secondReport))
}
