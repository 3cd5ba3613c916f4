// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package multierror

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	errs := Error{
		fmt.Errorf("first failure"),
		fmt.Errorf("second failure"),
	}

	assert.Equal(t, "[0] first failure\n[1] second failure", errs.Error())
}

func TestErrorNil(t *testing.T) {
	var errs Error
	assert.Equal(t, "", errs.Error())
}

func TestUnique(t *testing.T) {
	errs := Error{
		fmt.Errorf("b"),
		fmt.Errorf("a"),
		fmt.Errorf("b"),
		fmt.Errorf("a"),
		fmt.Errorf("c"),
	}

	unique := errs.Unique()

	require.Len(t, unique, 3)
	require.Len(t, errs, 5)
	assert.Equal(t, "[0] a\n[1] b\n[2] c", unique.Error())
}
