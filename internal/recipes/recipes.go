// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package recipes

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// RecipeFileExtension is the only extension considered when looking for recipe files.
const RecipeFileExtension = ".json"

// DefaultRecipesDir is the conventional location of datapack recipe files,
// relative to the working directory.
const DefaultRecipesDir = "data"

// ErrRootNotFound is reported when the recipes root directory does not exist.
var ErrRootNotFound = fmt.Errorf("recipes directory not found")

// ParseError describes a syntactically malformed recipe file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON (path: %s): %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadError describes a recipe file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading file content failed (path: %s): %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// FindRecipeFiles walks the recipes root and returns the relative paths of all
// recipe files, sorted lexicographically so that diagnostics keep a stable
// order between runs.
func FindRecipeFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w (path: %s)", ErrRootNotFound, root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(d.Name()) != RecipeFileExtension {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking through the recipe files failed: %w", err)
	}
	return paths, nil
}

// ReadRecipeFile reads and parses a single recipe file. The returned document
// is the decoded JSON value, which is not necessarily an object. Failures are
// reported as *ParseError for malformed syntax and *ReadError for anything
// else, so callers can keep them apart.
func ReadRecipeFile(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var doc any
	err = json.Unmarshal(content, &doc)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}
