package triage

import (
	"strings"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

// compiledVariant guarda a variante como declarada (para o racional) e a
// forma tokenizada usada no casamento.
type compiledVariant struct {
	original string
	tokens   []string
}

type compiledSynonymGroup struct {
	canonical     string
	canonicalNorm string
	variants      []compiledVariant
}

// Expander injeta termos canônicos no texto quando alguma variante conhecida
// aparece nele. Enriquecimento de uma passada só: o texto expandido não é
// re-varrido em busca de cadeias de sinônimos.
type Expander struct {
	groups []compiledSynonymGroup
}

// NewExpander pré-normaliza o mapa de sinônimos na ordem de declaração do
// ruleset. Variantes vazias ou iguais ao canônico são descartadas.
func NewExpander(synonyms models.Synonyms) *Expander {
	groups := make([]compiledSynonymGroup, 0, len(synonyms))
	for _, g := range synonyms {
		canonNorm := utils.NormalizarTexto(g.Canonical)
		if canonNorm == "" {
			continue
		}
		cg := compiledSynonymGroup{canonical: g.Canonical, canonicalNorm: canonNorm}
		seen := make(map[string]bool, len(g.Variants))
		for _, v := range g.Variants {
			vNorm := utils.NormalizarTexto(v)
			if vNorm == "" || vNorm == canonNorm || seen[vNorm] {
				continue
			}
			seen[vNorm] = true
			cg.variants = append(cg.variants, compiledVariant{
				original: v,
				tokens:   strings.Fields(vNorm),
			})
		}
		groups = append(groups, cg)
	}
	return &Expander{groups: groups}
}

// Expand varre o texto normalizado e devolve o texto enriquecido mais os
// pares (variante, canônico) encontrados. Por grupo canônico, a primeira
// variante que casar vence e o canônico é anexado uma única vez.
func (e *Expander) Expand(textNorm string) (string, []models.SynonymHit) {
	if textNorm == "" || len(e.groups) == 0 {
		return textNorm, nil
	}

	textTokens := utils.Tokenizar(textNorm)
	var hits []models.SynonymHit
	enriched := textNorm

	for _, g := range e.groups {
		for _, v := range g.variants {
			if !matchTokens(textTokens, v.tokens) {
				continue
			}
			enriched += " " + g.canonicalNorm
			hits = append(hits, models.SynonymHit{Variant: v.original, Canonical: g.canonical})
			break
		}
	}

	return enriched, hits
}
