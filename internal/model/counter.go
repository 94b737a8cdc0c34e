package model

import (
	"errors"
	"fmt"
)

// Default bounds of the energy counter
const (
	DefaultMin = 0
	DefaultMax = 10
)

// ErrInvalidBounds is returned when the lower bound is not below the upper one
var ErrInvalidBounds = errors.New("invalid counter bounds")

// Counter is an integer that saturates at its bounds instead of wrapping.
// The zero value is not usable; construct it with NewCounter.
type Counter struct {
	value int
	min   int
	max   int
}

// NewCounter creates a counter over [min, max] starting at min
func NewCounter(min, max int) (*Counter, error) {
	if min >= max {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrInvalidBounds, min, max)
	}
	return &Counter{value: min, min: min, max: max}, nil
}

// NewDefaultCounter creates a counter over [DefaultMin, DefaultMax]
func NewDefaultCounter() *Counter {
	return &Counter{value: DefaultMin, min: DefaultMin, max: DefaultMax}
}

// Increment adds one unless the counter is at max and returns the new value
func (c *Counter) Increment() int {
	if c.value < c.max {
		c.value++
	}
	return c.value
}

// Decrement subtracts one unless the counter is at min and returns the new value
func (c *Counter) Decrement() int {
	if c.value > c.min {
		c.value--
	}
	return c.value
}

// Value returns the current value
func (c *Counter) Value() int {
	return c.value
}

// Min returns the lower bound
func (c *Counter) Min() int {
	return c.min
}

// Max returns the upper bound
func (c *Counter) Max() int {
	return c.max
}

// AtMin reports whether a decrement would be a no-op
func (c *Counter) AtMin() bool {
	return c.value == c.min
}

// AtMax reports whether an increment would be a no-op
func (c *Counter) AtMax() bool {
	return c.value == c.max
}

// SetMax moves the upper bound, pulling the value down to it if needed
func (c *Counter) SetMax(max int) error {
	if max <= c.min {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidBounds, c.min, max)
	}
	c.max = max
	if c.value > max {
		c.value = max
	}
	return nil
}
