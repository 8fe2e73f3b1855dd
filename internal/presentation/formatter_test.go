package presentation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"vaxreg/internal/clock"
	"vaxreg/internal/i18n"
	"vaxreg/internal/registry"
)

func newFormatter(lang i18n.Lang) (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewFormatter(&buf, i18n.For(lang)), &buf
}

func TestFormatter_Batch(t *testing.T) {
	f, buf := newFormatter(i18n.English)
	f.Batch(registry.Batch{
		ID:         "A1F",
		Vaccine:    "VaxX",
		ValidUntil: clock.Date{Day: 1, Month: 6, Year: 2025},
		Doses:      10,
		DosesUsed:  3,
	})
	require.Equal(t, "VaxX A1F 01-06-2025 7 3\n", buf.String())
}

func TestFormatter_Inoculation(t *testing.T) {
	f, buf := newFormatter(i18n.English)
	f.Inoculation(registry.Inoculation{
		User:    "Maria Silva",
		BatchID: "A1F",
		Date:    clock.Date{Day: 2, Month: 1, Year: 2025},
	})
	require.Equal(t, "Maria Silva A1F 02-01-2025\n", buf.String())
}

func TestFormatter_ErrorLocalisation(t *testing.T) {
	f, buf := newFormatter(i18n.Portuguese)
	f.Error(registry.ErrNoStock)
	require.Equal(t, "esgotado\n", buf.String())

	buf.Reset()
	f.Error(registry.NoSuchUser("Maria Silva"))
	require.Equal(t, "Maria Silva: utente inexistente\n", buf.String())

	buf.Reset()
	f.Error(clock.ErrInvalidDate)
	require.Equal(t, "data inválida\n", buf.String())
}

func TestFormatter_CountAndDate(t *testing.T) {
	f, buf := newFormatter(i18n.English)
	f.Count(0)
	f.Date(clock.Date{Day: 1, Month: 1, Year: 2025})
	require.Equal(t, "0\n01-01-2025\n", buf.String())
}
