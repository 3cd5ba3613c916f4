// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package recipes_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modrecipes/recipe-check/internal/recipes"
)

func TestFindRecipeFiles(t *testing.T) {
	root := t.TempDir()
	for _, path := range []string{"zeta/last.json", "alpha/first.json", "alpha/second.json", "readme.md"} {
		fullPath := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte("{}"), 0644))
	}

	paths, err := recipes.FindRecipeFiles(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha/first.json", "alpha/second.json", "zeta/last.json"}, paths)
}

func TestFindRecipeFilesMissingRoot(t *testing.T) {
	_, err := recipes.FindRecipeFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, recipes.ErrRootNotFound))
}

func TestFindRecipeFilesRootIsFile(t *testing.T) {
	root := t.TempDir()
	filePath := filepath.Join(root, "recipes.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{}"), 0644))

	_, err := recipes.FindRecipeFiles(filePath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recipes.ErrRootNotFound))
}

func TestReadRecipeFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "recipe.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "create:pressing", "count": 4}`), 0644))

	doc, err := recipes.ReadRecipeFile(path)
	require.NoError(t, err)

	recipe, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "create:pressing", recipe["type"])
	assert.Equal(t, 4.0, recipe["count"])
}

func TestReadRecipeFileMalformed(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "recipe.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": `), 0644))

	_, err := recipes.ReadRecipeFile(path)
	require.Error(t, err)

	var parseError *recipes.ParseError
	require.True(t, errors.As(err, &parseError))
	assert.Equal(t, path, parseError.Path)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestReadRecipeFileMissing(t *testing.T) {
	_, err := recipes.ReadRecipeFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var readError *recipes.ReadError
	require.True(t, errors.As(err, &readError))

	var parseError *recipes.ParseError
	assert.False(t, errors.As(err, &parseError))
}
