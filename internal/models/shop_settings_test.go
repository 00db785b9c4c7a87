package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlotPeriod(t *testing.T) {
	for _, p := range SlotPeriods {
		assert.True(t, IsValidSlotPeriod(p), p)
	}

	for _, p := range []int{0, -5, 7, 50, 181, 240} {
		assert.False(t, IsValidSlotPeriod(p), p)
	}
}
