package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugSepRegex = regexp.MustCompile(`[^a-z0-9]+`)

// SlugID deriva um identificador estável a partir do nome de exibição de uma
// especialidade. Usado quando o ruleset não declara 'id' explicitamente.
// Exemplo: "Clínica Médica" -> "clinica_medica", "Ginecologia & Obstetrícia" -> "ginecologia_and_obstetricia"
func SlugID(nome string) string {
	if nome == "" {
		return "unknown"
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	slug, _, _ := transform.String(t, nome)
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = strings.ReplaceAll(slug, "&", " and ")

	slug = slugSepRegex.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_")

	if slug == "" {
		return "unknown"
	}
	return slug
}
