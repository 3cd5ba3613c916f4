// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import (
	"fmt"
	"sort"
)

// validatePattern cross-checks the crafting pattern against the key object.
// Every non-blank character used in a pattern row must be defined as a key,
// and every single-character key should be used by some row. The caller
// guarantees that "pattern" is present and is an array.
func (r *Run) validatePattern(path string, recipe map[string]any) {
	pattern := recipe["pattern"].([]any)
	key, _ := recipe["key"].(map[string]any)

	if len(pattern) == 0 {
		r.addError(path, "Pattern array is empty")
		return
	}

	usedKeys := map[rune]struct{}{}
	for _, row := range pattern {
		rowString, ok := row.(string)
		if !ok {
			r.addError(path, "Pattern row must be a string")
			continue
		}
		for _, char := range rowString {
			if char != ' ' {
				usedKeys[char] = struct{}{}
			}
		}
	}

	// Diagnostics are emitted in sorted order to keep the report stable
	// between runs.
	for _, char := range sortedRunes(usedKeys) {
		if _, defined := key[string(char)]; !defined {
			r.addError(path, fmt.Sprintf("Pattern uses key '%c' but it's not defined in 'key' object", char))
		}
	}

	definedKeys := make([]string, 0, len(key))
	for definedKey := range key {
		definedKeys = append(definedKeys, definedKey)
	}
	sort.Strings(definedKeys)
	for _, definedKey := range definedKeys {
		if len([]rune(definedKey)) != 1 {
			continue
		}
		if _, used := usedKeys[[]rune(definedKey)[0]]; !used {
			r.addWarning(path, fmt.Sprintf("Key '%s' is defined but never used in pattern", definedKey))
		}
	}
}

// validateIngredients accepts either a single ingredient object or an array
// of ingredient objects.
func (r *Run) validateIngredients(path string, ingredients any) {
	switch v := ingredients.(type) {
	case []any:
		if len(v) == 0 {
			r.addWarning(path, "Ingredients array is empty")
		}
		for _, ingredient := range v {
			ingredientObject, ok := ingredient.(map[string]any)
			if !ok {
				r.addError(path, "Ingredient must be a JSON object")
				continue
			}
			r.validateIngredient(path, ingredientObject)
		}
	case map[string]any:
		r.validateIngredient(path, v)
	default:
		r.addError(path, "Ingredients must be a JSON object or array")
	}
}

// validateIngredient checks that the ingredient identifies what it matches:
// an item, an item tag or a fluid. More than one of them at once is suspicious
// but not disallowed by the game.
func (r *Run) validateIngredient(path string, ingredient map[string]any) {
	_, hasItem := ingredient["item"]
	_, hasTag := ingredient["tag"]
	_, hasFluid := ingredient["fluid"]

	if !hasItem && !hasTag && !hasFluid {
		r.addError(path, "Ingredient must have 'item', 'tag', or 'fluid' field")
	}

	typeCount := 0
	for _, has := range []bool{hasItem, hasTag, hasFluid} {
		if has {
			typeCount++
		}
	}
	if typeCount > 1 {
		r.addWarning(path, "Ingredient has multiple type fields (item/tag/fluid)")
	}
}

func (r *Run) validateResults(path string, results []any) {
	if len(results) == 0 {
		r.addWarning(path, "Results array is empty")
	}
	for _, result := range results {
		resultObject, ok := result.(map[string]any)
		if !ok {
			r.addError(path, "Result must be a JSON object")
			continue
		}
		r.validateResult(path, resultObject)
	}
}

// validateResult checks a single result object. Count applies to item
// results, amount to fluid results; both are checked independently when
// present.
func (r *Run) validateResult(path string, result any) {
	resultObject, ok := result.(map[string]any)
	if !ok {
		r.addError(path, "Result must be a JSON object")
		return
	}

	_, hasItem := resultObject["item"]
	_, hasFluid := resultObject["fluid"]
	if !hasItem && !hasFluid {
		r.addError(path, "Result must have 'item' or 'fluid' field")
	}

	if count, found := resultObject["count"]; found {
		if number, ok := count.(float64); ok && number <= 0 {
			r.addError(path, fmt.Sprintf("Result count must be positive, got: %v", count))
		}
	}

	if amount, found := resultObject["amount"]; found {
		if number, ok := amount.(float64); ok && number <= 0 {
			r.addError(path, fmt.Sprintf("Result amount must be positive, got: %v", amount))
		}
	}
}

func sortedRunes(set map[rune]struct{}) []rune {
	runes := make([]rune, 0, len(set))
	for char := range set {
		runes = append(runes, char)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
