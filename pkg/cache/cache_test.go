package cache

import (
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC))
	c := New[string, int](time.Minute, clk)

	v := 42
	c.Set("answer", &v)

	got := c.Get("answer")
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)
	assert.Nil(t, c.Get("missing"))
}

func TestCache_Expiry(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC))
	c := New[string, int](time.Minute, clk)

	v := 1
	c.Set("k", &v)

	clk.Increment(61 * time.Second)
	assert.Nil(t, c.Get("k"))
	assert.Equal(t, 0, c.Len())
}

func TestCache_GetExtendsTTL(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC))
	c := New[string, int](time.Minute, clk)

	v := 1
	c.Set("k", &v)

	clk.Increment(45 * time.Second)
	require.NotNil(t, c.Get("k"))

	clk.Increment(45 * time.Second)
	assert.NotNil(t, c.Get("k"), "entry touched 45s ago must still be alive")
}

func TestCache_DeleteExpired(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC))
	c := New[string, int](time.Minute, clk)

	a, b := 1, 2
	c.Set("a", &a)
	clk.Increment(30 * time.Second)
	c.Set("b", &b)
	clk.Increment(45 * time.Second)

	assert.Equal(t, 1, c.DeleteExpired())
	assert.Equal(t, 1, c.Len())
	assert.NotNil(t, c.Get("b"))

	c.Delete("b")
	assert.Equal(t, 0, c.Len())
}
