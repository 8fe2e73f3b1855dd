package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vaxreg/internal/registry"
)

func TestParseLang(t *testing.T) {
	require.Equal(t, Portuguese, ParseLang("pt"))
	require.Equal(t, English, ParseLang("en"))
	require.Equal(t, English, ParseLang(""))
	require.Equal(t, English, ParseLang("fr"))
}

func TestCatalog_Message(t *testing.T) {
	require.Equal(t, "no stock", For(English).Message(registry.CodeNoStock))
	require.Equal(t, "esgotado", For(Portuguese).Message(registry.CodeNoStock))
	require.Equal(t, "já vacinado", For(Portuguese).Message(registry.CodeAlreadyVaccinated))
}

// Both sets must cover exactly the same codes: a hole would print an
// empty message in one language only.
func TestCatalog_LanguagesCoverSameCodes(t *testing.T) {
	require.Equal(t, len(englishText), len(portugueseText))
	for code := range englishText {
		pt, ok := portugueseText[code]
		require.True(t, ok, "missing pt text for code %d", code)
		require.NotEmpty(t, pt)
	}
}
