package testutil

import "vaxreg/internal/clock"

// batchData holds data for a batch to be registered.
type batchData struct {
	id         string
	vaccine    string
	validUntil clock.Date
	doses      int
}

func defaultBatch(id string) batchData {
	return batchData{
		id:         id,
		vaccine:    "TestVax",
		validUntil: clock.Date{Day: 31, Month: 12, Year: 2025},
		doses:      10,
	}
}

// BatchOption configures a batch fixture.
type BatchOption func(*batchData)

// Vaccine sets the batch's vaccine name.
func Vaccine(name string) BatchOption {
	return func(b *batchData) { b.vaccine = name }
}

// ValidUntil sets the batch's expiry date.
func ValidUntil(d clock.Date) BatchOption {
	return func(b *batchData) { b.validUntil = d }
}

// Doses sets the batch's dose count.
func Doses(n int) BatchOption {
	return func(b *batchData) { b.doses = n }
}

// InocOption configures an inoculation fixture.
type InocOption func(*inocData)

// On advances the clock to d before administering.
func On(d clock.Date) InocOption {
	return func(i *inocData) { i.date = &d }
}

// Date builds a clock.Date literal.
func Date(day, month, year int) clock.Date {
	return clock.Date{Day: day, Month: month, Year: year}
}
