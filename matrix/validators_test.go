// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmul/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)
	c := MustDense(t, 2, 2)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.True(t, matrix.CanMul(a, b))
	require.True(t, matrix.CanMul(b, a))

	err := matrix.ValidateMulCompatible(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "3 columns vs 2 rows")
	require.False(t, matrix.CanMul(a, c))

	// Nil check comes before the shape check.
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, c), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
	require.False(t, matrix.CanMul(nil, nil))
}
