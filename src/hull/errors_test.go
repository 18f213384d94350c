package hull

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegeneracyErrorMessagesAreExact(t *testing.T) {
	require.Equal(t, "Input points appear to be coincident", ErrCoincident.Error())
	require.Equal(t, "Input points appear to be colinear", ErrColinear.Error())
	require.Equal(t, "Input points appear to be coplanar", ErrCoplanar.Error())
}

func TestNewInvariantViolationUnwrapsToSentinel(t *testing.T) {
	err := newInvariantViolation("ring broken")
	require.True(t, errors.Is(err, ErrInvariantViolation))
	require.Contains(t, err.Error(), "ring broken")
}

func TestMalformedInputWrapping(t *testing.T) {
	_, err := NewFromXYZ([]float64{1, 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}
