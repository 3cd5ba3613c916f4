// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package validator

import "fmt"

// ruleFunc validates a single recipe of a known type. The recipe is
// guaranteed to be a top-level object with a "type" field.
type ruleFunc func(r *Run, path string, recipe map[string]any)

// ruleSets maps every known recipe type to its rule set. Unknown types are
// reported as a warning by the dispatcher.
var ruleSets = map[string]ruleFunc{
	"create:mechanical_crafting":   validateMechanicalCrafting,
	"create:cutting":               validateCutting,
	"create:mixing":                validateMixing,
	"create:sequenced_assembly":    validateSequencedAssembly,
	"create:filling":               validateProcessing("Filling"),
	"create:emptying":              validateProcessing("Emptying"),
	"create:pressing":              validateProcessing("Pressing"),
	"create:deploying":             validateProcessing("Deploying"),
	"minecraft:crafting_shaped":    validateVanillaCrafting,
	"minecraft:crafting_shapeless": validateVanillaCrafting,
}

func validateMechanicalCrafting(r *Run, path string, recipe map[string]any) {
	if key, found := recipe["key"]; !found {
		r.addError(path, "Mechanical crafting missing 'key' field")
	} else if _, ok := key.(map[string]any); !ok {
		r.addError(path, "Field 'key' must be a JSON object")
	}

	if pattern, found := recipe["pattern"]; !found {
		r.addError(path, "Mechanical crafting missing 'pattern' field")
	} else if _, ok := pattern.([]any); !ok {
		r.addError(path, "Field 'pattern' must be a JSON array")
	} else {
		r.validatePattern(path, recipe)
	}

	if result, found := recipe["result"]; !found {
		r.addError(path, "Mechanical crafting missing 'result' field")
	} else {
		r.validateResult(path, result)
	}

	if acceptMirrored, found := recipe["acceptMirrored"]; found {
		if _, ok := acceptMirrored.(bool); !ok {
			r.addError(path, "Field 'acceptMirrored' must be a boolean")
		}
	}
}

func validateCutting(r *Run, path string, recipe map[string]any) {
	if ingredients, found := recipe["ingredients"]; !found {
		r.addError(path, "Cutting recipe missing 'ingredients' field")
	} else {
		r.validateIngredients(path, ingredients)
	}

	if results, found := recipe["results"]; !found {
		r.addError(path, "Cutting recipe missing 'results' field")
	} else if resultList, ok := results.([]any); !ok {
		r.addError(path, "Field 'results' must be a JSON array")
	} else {
		r.validateResults(path, resultList)
	}

	if processingTime, found := recipe["processingTime"]; found {
		if !isNumber(processingTime) {
			r.addError(path, "Field 'processingTime' must be a number")
		}
	}
}

var knownHeatRequirements = []string{"none", "heated", "superheated"}

func validateMixing(r *Run, path string, recipe map[string]any) {
	if ingredients, found := recipe["ingredients"]; !found {
		r.addError(path, "Mixing recipe missing 'ingredients' field")
	} else {
		r.validateIngredients(path, ingredients)
	}

	if results, found := recipe["results"]; !found {
		r.addError(path, "Mixing recipe missing 'results' field")
	} else if resultList, ok := results.([]any); !ok {
		r.addError(path, "Field 'results' must be a JSON array")
	} else {
		r.validateResults(path, resultList)
	}

	if heat, found := recipe["heatRequirement"]; found {
		known := false
		if heatString, ok := heat.(string); ok {
			for _, requirement := range knownHeatRequirements {
				if heatString == requirement {
					known = true
					break
				}
			}
		}
		if !known {
			r.addError(path, fmt.Sprintf("Invalid heatRequirement: %v", heat))
		}
	}
}

func validateSequencedAssembly(r *Run, path string, recipe map[string]any) {
	for _, field := range []string{"ingredient", "transitionalItem", "sequence", "results", "loops"} {
		if _, found := recipe[field]; !found {
			r.addError(path, fmt.Sprintf("Sequenced assembly missing '%s' field", field))
		}
	}

	if sequence, found := recipe["sequence"]; found {
		if _, ok := sequence.([]any); !ok {
			r.addError(path, "Field 'sequence' must be a JSON array")
		}
	}
}

// validateProcessing builds the rule set shared by the simple processing
// recipe types that only require ingredients and results to be present.
func validateProcessing(recipeName string) ruleFunc {
	return func(r *Run, path string, recipe map[string]any) {
		if _, found := recipe["ingredients"]; !found {
			r.addError(path, fmt.Sprintf("%s recipe missing 'ingredients' field", recipeName))
		}
		if _, found := recipe["results"]; !found {
			r.addError(path, fmt.Sprintf("%s recipe missing 'results' field", recipeName))
		}
	}
}

func validateVanillaCrafting(r *Run, path string, recipe map[string]any) {
	if _, found := recipe["result"]; !found {
		r.addError(path, "Vanilla crafting missing 'result' field")
	}
}

// isNumber reports whether the decoded JSON value is numeric.
func isNumber(value any) bool {
	_, ok := value.(float64)
	return ok
}
