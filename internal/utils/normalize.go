package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnumRegex   = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizarTexto reduz um texto livre à forma usada pelo casamento de
// keywords: minúsculas, sem acentos, só [a-z0-9] e espaços simples.
// Exemplo: "Visão EMBAÇADA!" -> "visao embacada"
// Função total: entrada vazia resulta em string vazia.
func NormalizarTexto(texto string) string {
	if texto == "" {
		return ""
	}

	// Remove acentos e diacríticos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)

	normalized = strings.ToLower(normalized)

	// Troca pontuação/hífen/barra (tudo que não for letra ou dígito) por espaço
	normalized = nonAlnumRegex.ReplaceAllString(normalized, " ")

	// Colapsa espaços
	normalized = whitespaceRegex.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}

// Tokenizar quebra um texto já normalizado em tokens.
func Tokenizar(textoNormalizado string) []string {
	return strings.Fields(textoNormalizado)
}
