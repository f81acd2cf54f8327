package ruleset

import (
	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

// SynonymsPTBR é o pacote curado de sinônimos pt-BR: linguagem do paciente
// de um lado, termo clínico ou variante comum do outro. A direção é variante
// encontrada -> canônico injetado. Plurais entram como variante "barata"
// (sem stemming, por decisão de escopo).
var SynonymsPTBR = models.Synonyms{
	{Canonical: "dor de cabeça", Variants: []string{"cefaleia"}},
	{Canonical: "falta de ar", Variants: []string{"dispneia"}},
	{Canonical: "desmaio", Variants: []string{"síncope", "sincope"}},
	{Canonical: "formigamento", Variants: []string{"parestesia"}},
	{Canonical: "dor nas costas", Variants: []string{"lombalgia"}},
	{Canonical: "dor no estômago", Variants: []string{"epigastralgia", "dor epigástrica", "dor epigastrica"}},
	{Canonical: "azia", Variants: []string{"pirose"}},
	{Canonical: "refluxo", Variants: []string{"refluxo gastroesofágico", "refluxo gastroesofagico", "drge"}},
	{Canonical: "pressão alta", Variants: []string{"hipertensão", "hipertensao"}},
	{Canonical: "infecção urinária", Variants: []string{"itu"}},
	{Canonical: "dor ao urinar", Variants: []string{"disúria", "disuria"}},
	{Canonical: "cálculo renal", Variants: []string{"nefrolitíase", "nefrolitiase"}},
	{Canonical: "palpitação", Variants: []string{"palpitações", "palpitacoes"}},
	{Canonical: "cárie", Variants: []string{"cáries", "caries"}},
}

// MergeSynonymsPTBR acrescenta o pacote curado a um mapa de sinônimos
// existente. Grupos já presentes recebem as variantes novas, deduplicadas
// pela forma normalizada; a ordem de declaração original é preservada.
func MergeSynonymsPTBR(existing models.Synonyms) models.Synonyms {
	out := make(models.Synonyms, len(existing))
	copy(out, existing)

	index := make(map[string]int, len(out))
	for i, g := range out {
		index[utils.NormalizarTexto(g.Canonical)] = i
	}

	for _, pack := range SynonymsPTBR {
		key := utils.NormalizarTexto(pack.Canonical)
		if i, ok := index[key]; ok {
			out[i].Variants = dedupeNormalized(append(out[i].Variants, pack.Variants...))
			continue
		}
		index[key] = len(out)
		out = append(out, models.SynonymGroup{
			Canonical: pack.Canonical,
			Variants:  dedupeNormalized(pack.Variants),
		})
	}

	return out
}

// Enrich aplica à cópia carregada de um ruleset os passos de upgrade de
// autoria: injeta o pacote de sinônimos, re-deduplica as keywords, marca a
// especialidade de fallback como generalista e incrementa a versão.
func Enrich(rs *models.Ruleset) {
	rs.Version++
	rs.Synonyms = MergeSynonymsPTBR(rs.Synonyms)

	for i := range rs.Specialties {
		sp := &rs.Specialties[i]
		if sp.ID == rs.FallbackID {
			sp.Generalist = true
		}
		sp.Strong = dedupeNormalized(sp.Strong)
		sp.Weak = dedupeNormalized(sp.Weak)
	}
}
