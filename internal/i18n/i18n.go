// Package i18n holds the two output message sets. The language is
// chosen once at startup and applies to every message; wording differs
// between languages but line shape does not.
package i18n

import "vaxreg/internal/registry"

// Lang selects a message set.
type Lang string

const (
	English    Lang = "en"
	Portuguese Lang = "pt"
)

// ParseLang maps a user-supplied language token to a Lang. Anything
// other than "pt" selects English, matching the original program's
// argv handling.
func ParseLang(s string) Lang {
	if s == string(Portuguese) {
		return Portuguese
	}
	return English
}

var portugueseText = map[registry.Code]string{
	registry.CodeInvalidBatch:      "lote inválido",
	registry.CodeInvalidName:       "nome inválido",
	registry.CodeInvalidDate:       "data inválida",
	registry.CodeInvalidQuantity:   "quantidade inválida",
	registry.CodeDuplicateBatch:    "número de lote duplicado",
	registry.CodeTooManyBatches:    "demasiadas vacinas",
	registry.CodeInvalidArguments:  "argumentos inválidos",
	registry.CodeAlreadyVaccinated: "já vacinado",
	registry.CodeNoStock:           "esgotado",
	registry.CodeNoSuchVaccine:     "vacina inexistente",
	registry.CodeNoSuchBatch:       "lote inexistente",
	registry.CodeNoSuchUser:        "utente inexistente",
	registry.CodeMissingBatch:      "lote em falta",
}

var englishText = map[registry.Code]string{
	registry.CodeInvalidBatch:      "invalid batch",
	registry.CodeInvalidName:       "invalid name",
	registry.CodeInvalidDate:       "invalid date",
	registry.CodeInvalidQuantity:   "invalid quantity",
	registry.CodeDuplicateBatch:    "duplicate batch number",
	registry.CodeTooManyBatches:    "too many vaccines",
	registry.CodeInvalidArguments:  "invalid arguments",
	registry.CodeAlreadyVaccinated: "already vaccinated",
	registry.CodeNoStock:           "no stock",
	registry.CodeNoSuchVaccine:     "no such vaccine",
	registry.CodeNoSuchBatch:       "no such batch",
	registry.CodeNoSuchUser:        "no such user",
	registry.CodeMissingBatch:      "missing batch",
}

// Catalog is one language's message table.
type Catalog struct {
	text map[registry.Code]string
}

// For returns the catalogue for a language.
func For(lang Lang) *Catalog {
	if lang == Portuguese {
		return &Catalog{text: portugueseText}
	}
	return &Catalog{text: englishText}
}

// Message returns the localised text for a code.
func (c *Catalog) Message(code registry.Code) string {
	return c.text[code]
}
