// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package multierror

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a multi-error representation.
type Error []error

// Error combines a detailed report consisting of attached errors separated with new lines.
func (me Error) Error() string {
	if me == nil {
		return ""
	}

	strs := make([]string, len(me))
	for i, err := range me {
		strs[i] = fmt.Sprintf("[%d] %v", i, err)
	}
	return strings.Join(strs, "\n")
}

// Unique method returns an instance of multi-error with a unique collection of errors.
func (me Error) Unique() Error {
	set := map[string]error{}
	for _, err := range me {
		set[err.Error()] = err
	}

	var unique Error
	for _, err := range set {
		unique = append(unique, err)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Error() < unique[j].Error()
	})
	return unique
}
