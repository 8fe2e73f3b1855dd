package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStockedRegistry(t *testing.T) {
	reg, clk := StockedRegistry(t)

	require.Equal(t, Date(1, 1, 2025), clk.Today())
	require.Len(t, reg.Batches(), 3)
	require.Empty(t, reg.Inoculations())
}

func TestVaccinatedRegistry(t *testing.T) {
	reg, clk := VaccinatedRegistry(t)

	require.Equal(t, Date(2, 1, 2025), clk.Today())
	require.Len(t, reg.Inoculations(), 3)

	recs, err := reg.InoculationsFor("Maria Silva")
	require.NoError(t, err)
	require.Len(t, recs, 2)
}
