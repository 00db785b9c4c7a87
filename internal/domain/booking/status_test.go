package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shearbook/barbershop-api/internal/httperr"
)

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget("completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got)

	got, err = ParseTarget("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got)
}

func TestParseTargetRejectsUnreachableStates(t *testing.T) {
	for _, raw := range []string{"booked", "failed", "done", ""} {
		_, err := ParseTarget(raw)
		require.Error(t, err, raw)

		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, httperr.CodeInvalidStatus, code)
	}
}

func TestCanTransitionOnlyFromBooked(t *testing.T) {
	require.NoError(t, CanTransition(StatusBooked))

	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusFailed} {
		err := CanTransition(s)
		require.Error(t, err, string(s))

		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, httperr.CodeInvalidTransition, code)
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusBooked, StatusCompleted, StatusCancelled, StatusFailed} {
		assert.True(t, IsValid(s))
	}
	assert.False(t, IsValid(Status("pending")))
	assert.False(t, IsValid(Status("")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusBooked, InitialStatus())
}
