package bencherr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	cases := []struct {
		err  error
		kind bencherr.Kind
		msg  string
	}{
		{bencherr.E(bencherr.Invalid, "size %d", -1), bencherr.Invalid, "invalid argument: size -1"},
		{bencherr.E(bencherr.ContractViolation), bencherr.ContractViolation, "algorithm contract violation"},
		{bencherr.E(errors.New("boom")), bencherr.Other, "boom"},
		{bencherr.E(bencherr.GenerationFailure, errors.New("dup")), bencherr.GenerationFailure, "generation failure: dup"},
	}
	for _, c := range cases {
		assert.Equal(t, c.msg, c.err.Error())
		assert.Equal(t, c.kind, bencherr.KindOf(c.err))
	}
}

func TestKindThroughWrapping(t *testing.T) {
	inner := bencherr.E(bencherr.Invalid, "iterations must be positive")
	wrapped := fmt.Errorf("size 50, shuffled, WhileNeeded: %w", inner)
	assert.True(t, bencherr.IsInvalid(wrapped))
	assert.False(t, bencherr.IsContractViolation(wrapped))

	outer := bencherr.E(wrapped)
	assert.True(t, bencherr.IsInvalid(outer))

	sentinel := errors.New("sentinel")
	err := bencherr.E(bencherr.GenerationFailure, "mapper: %w", sentinel)
	require.ErrorIs(t, err, sentinel)
	assert.True(t, bencherr.IsGenerationFailure(err))
	assert.Equal(t, bencherr.Other, bencherr.KindOf(sentinel))
	assert.Equal(t, bencherr.Other, bencherr.KindOf(nil))
}
