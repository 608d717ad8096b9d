package nano_test

import (
	"testing"
	"time"

	"github.com/brimdata/sortbench/pkg/nano"
	"github.com/stretchr/testify/assert"
)

func TestFromMillis(t *testing.T) {
	cases := []struct {
		ms       int64
		expected nano.Ts
	}{
		{0, 0},
		{1, 1_000_000},
		{1425565514419, 1425565514419000000},
		{-1, -1_000_000},
	}
	for _, c := range cases {
		assert.Exactly(t, c.expected, nano.FromMillis(c.ms), "input: %d", c.ms)
	}
}

func TestTime(t *testing.T) {
	ts := nano.FromMillis(1425565514419)
	assert.Equal(t, time.Date(2015, 3, 5, 14, 25, 14, 419000000, time.UTC), ts.Time())
	assert.Equal(t, "2015-03-05T14:25:14.419Z", ts.String())
	assert.Equal(t, "1970-01-01T00:00:00Z", nano.Ts(0).String())
}
