// Package testutil provides fixture builders for registry tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vaxreg/internal/clock"
	"vaxreg/internal/registry"
)

// inocData holds data for one inoculation to be administered.
type inocData struct {
	user    string
	vaccine string
	date    *clock.Date
}

// Builder accumulates test fixtures and applies them in the correct
// order: batches first, then inoculations in sequence, advancing the
// clock as dated inoculations require.
type Builder struct {
	t        *testing.T
	start    clock.Date
	final    *clock.Date
	table    int
	cap      int
	batches  []batchData
	inocs    []inocData
}

// NewBuilder creates a builder with the production table size and
// batch cap.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, start: clock.Start, table: 1009, cap: 1000}
}

// WithBatch adds a batch with optional configuration.
func (b *Builder) WithBatch(id string, opts ...BatchOption) *Builder {
	batch := defaultBatch(id)
	for _, opt := range opts {
		opt(&batch)
	}
	b.batches = append(b.batches, batch)
	return b
}

// WithInoculation administers one dose during Build.
func (b *Builder) WithInoculation(user, vaccine string, opts ...InocOption) *Builder {
	inoc := inocData{user: user, vaccine: vaccine}
	for _, opt := range opts {
		opt(&inoc)
	}
	b.inocs = append(b.inocs, inoc)
	return b
}

// WithDate advances the clock to d after all inoculations are applied.
func (b *Builder) WithDate(d clock.Date) *Builder {
	b.final = &d
	return b
}

// WithLimits overrides the hash table size and batch cap.
func (b *Builder) WithLimits(tableSize, maxBatches int) *Builder {
	b.table = tableSize
	b.cap = maxBatches
	return b
}

// Build applies all accumulated fixtures and returns the registry and
// its clock. Dated inoculations must be in non-decreasing date order.
func (b *Builder) Build() (*registry.Registry, *clock.Clock) {
	b.t.Helper()

	clk := clock.New(b.start)
	reg := registry.New(clk, b.table, b.cap)

	for _, batch := range b.batches {
		_, err := reg.RegisterBatch(batch.id, batch.vaccine, batch.validUntil, batch.doses)
		require.NoError(b.t, err)
	}
	for _, inoc := range b.inocs {
		if inoc.date != nil && !inoc.date.Equal(clk.Today()) {
			require.NoError(b.t, clk.Advance(*inoc.date))
		}
		_, err := reg.Administer(inoc.user, inoc.vaccine)
		require.NoError(b.t, err)
	}
	if b.final != nil && !b.final.Equal(clk.Today()) {
		require.NoError(b.t, clk.Advance(*b.final))
	}
	return reg, clk
}
