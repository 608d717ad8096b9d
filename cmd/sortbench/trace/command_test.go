package trace

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceAscending(t *testing.T) {
	var b strings.Builder
	err := trace(&b, []order.Which{order.Asc}, 5, mapper.Int, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"ORDER", "SORTER", "PASSES", "COMPARISONS", "SWAPS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"ascending", "PassPerItem", "5", "20", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"ascending", "UntilNoChange", "1", "4", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"ascending", "WhileNeeded", "1", "4", "0"}, strings.Fields(lines[3]))
}

func TestTraceAllOrders(t *testing.T) {
	var b strings.Builder
	err := trace(&b, order.All, 50, mapper.String, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(b.String()), "\n"), 1+len(order.All)*3)
}

func TestTraceNegativeSize(t *testing.T) {
	err := trace(&strings.Builder{}, order.All, -1, mapper.Int, nil)
	assert.True(t, bencherr.IsInvalid(err))
}
