package testutil

import (
	"testing"

	"vaxreg/internal/clock"
	"vaxreg/internal/registry"
)

// StockedRegistry returns a registry holding two vaccines across three
// batches, none administered.
func StockedRegistry(t *testing.T) (*registry.Registry, *clock.Clock) {
	t.Helper()
	return NewBuilder(t).
		WithBatch("A1F", Vaccine("VaxX"), ValidUntil(Date(1, 6, 2025)), Doses(10)).
		WithBatch("C3", Vaccine("VaxX"), ValidUntil(Date(1, 7, 2025)), Doses(5)).
		WithBatch("B2", Vaccine("VaxY"), ValidUntil(Date(1, 6, 2025)), Doses(4)).
		Build()
}

// VaccinatedRegistry returns StockedRegistry's layout with two users
// inoculated across two days, clock left on the second day.
func VaccinatedRegistry(t *testing.T) (*registry.Registry, *clock.Clock) {
	t.Helper()
	return NewBuilder(t).
		WithBatch("A1F", Vaccine("VaxX"), ValidUntil(Date(1, 6, 2025)), Doses(10)).
		WithBatch("C3", Vaccine("VaxX"), ValidUntil(Date(1, 7, 2025)), Doses(5)).
		WithBatch("B2", Vaccine("VaxY"), ValidUntil(Date(1, 6, 2025)), Doses(4)).
		WithInoculation("Maria Silva", "VaxX").
		WithInoculation("Maria Silva", "VaxY").
		WithInoculation("bob", "VaxX", On(Date(2, 1, 2025))).
		Build()
}
