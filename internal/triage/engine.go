package triage

import (
	"fmt"
	"math"
	"strings"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

const (
	// DefaultNextStep é usado quando a especialidade não declara nextStep.
	DefaultNextStep = "Busque uma avaliação com um(a) profissional de saúde."

	// DefaultDisclaimer é usado quando o ruleset não declara disclaimer.
	DefaultDisclaimer = "Este app sugere uma especialidade com base no texto informado. " +
		"Não realiza diagnóstico, não prescreve e não define urgência."

	// FallbackConfidence é a confiança neutra emitida quando o ruleset não
	// traz uma regra para o fallbackSpecialtyId configurado.
	FallbackConfidence = 0.55

	fallbackWhy = "Não encontrei termos específicos suficientes; sugerindo uma opção mais geral."

	// maxConfidence nunca é ultrapassado: sempre sobra margem de incerteza.
	maxConfidence      = 0.95
	confidencePerPoint = 0.02
	maxHitsInRationale = 6
)

// Engine é o motor de sugestão. Compila o ruleset uma única vez na criação
// e depois opera somente-leitura, seguro para uso concorrente.
type Engine struct {
	ruleset     *models.Ruleset
	scorer      *Scorer
	expander    *Expander
	specialties []compiledSpecialty
	fallback    *models.Specialty
}

// NewEngine compila um ruleset já validado pelo loader.
func NewEngine(rs *models.Ruleset) *Engine {
	specialties := make([]compiledSpecialty, 0, len(rs.Specialties))
	for i := range rs.Specialties {
		specialties = append(specialties, compileSpecialty(&rs.Specialties[i]))
	}

	return &Engine{
		ruleset:     rs,
		scorer:      NewScorer(rs.Scoring),
		expander:    NewExpander(rs.Synonyms),
		specialties: specialties,
		fallback:    rs.FindSpecialty(rs.FallbackID),
	}
}

// Ruleset devolve o ruleset compilado (somente-leitura).
func (e *Engine) Ruleset() *models.Ruleset {
	return e.ruleset
}

// Suggest mapeia um texto livre de sintomas para uma sugestão de
// especialidade. Função total: nunca falha; texto sem matches cai no
// fallback configurado.
func (e *Engine) Suggest(userText string) *models.Suggestion {
	textNorm := utils.NormalizarTexto(userText)

	enriched, synHits := e.expander.Expand(textNorm)
	textTokens := utils.Tokenizar(enriched)

	var candidates []*models.Candidate
	for i := range e.specialties {
		if cand, ok := e.scorer.Score(&e.specialties[i], textTokens); ok {
			candidates = append(candidates, cand)
		}
	}

	if len(candidates) == 0 {
		return e.fallbackSuggestion()
	}

	ranked := Rank(candidates, e.ruleset.Scoring.TopK)
	return e.buildSuggestion(ranked[0], ranked[1:], synHits)
}

// buildSuggestion monta o resultado final a partir do vencedor do ranking.
func (e *Engine) buildSuggestion(winner *models.Candidate, alternates []*models.Candidate, synHits []models.SynonymHit) *models.Suggestion {
	extra := winner.Score - 1
	if extra < 0 {
		extra = 0
	}
	confidence := math.Min(maxConfidence, winner.Confidence+confidencePerPoint*float64(extra))

	alternatives := make([]models.Alternative, 0, len(alternates))
	for _, alt := range alternates {
		alternatives = append(alternatives, models.Alternative{
			SpecialtyID:     alt.Specialty.ID,
			Specialty:       alt.Specialty.DisplayName,
			Confidence:      alt.Confidence,
			Score:           alt.Score,
			StrongHits:      len(alt.StrongHits),
			MatchedKeywords: alt.Matched(),
		})
	}

	return &models.Suggestion{
		SpecialtyID:     winner.Specialty.ID,
		Specialty:       winner.Specialty.DisplayName,
		Confidence:      confidence,
		MatchedKeywords: winner.Matched(),
		Why:             e.buildWhy(winner, synHits),
		NextStep:        orDefault(winner.Specialty.NextStep, DefaultNextStep),
		Disclaimer:      orDefault(e.ruleset.Disclaimer, DefaultDisclaimer),
		Alternatives:    alternatives,
	}
}

// buildWhy compõe o racional: template declarado (ou resumo dos hits),
// sufixo com as contagens e, havendo sinônimos, os pares variante→canônico.
func (e *Engine) buildWhy(winner *models.Candidate, synHits []models.SynonymHit) string {
	base := winner.Specialty.Rationale
	if base == "" {
		var parts []string
		if len(winner.StrongHits) > 0 {
			parts = append(parts, "Sinais fortes: "+strings.Join(capHits(winner.StrongHits), ", "))
		}
		if len(winner.WeakHits) > 0 {
			parts = append(parts, "Sinais fracos: "+strings.Join(capHits(winner.WeakHits), ", "))
		}
		base = strings.Join(parts, " | ")
		if base == "" {
			base = "Termos relacionados encontrados no texto."
		}
	}

	why := fmt.Sprintf("%s (strong=%d, score=%d)", base, len(winner.StrongHits), winner.Score)

	if len(synHits) > 0 {
		pairs := make([]string, 0, len(synHits))
		for _, h := range synHits {
			pairs = append(pairs, h.Variant+"→"+h.Canonical)
		}
		why += " | synonyms: " + strings.Join(pairs, ", ")
	}

	return why
}

// fallbackSuggestion é o caminho determinístico quando nenhuma especialidade
// atinge o score mínimo. Nunca falha.
func (e *Engine) fallbackSuggestion() *models.Suggestion {
	id := e.ruleset.FallbackID
	name := id
	confidence := FallbackConfidence
	nextStep := DefaultNextStep

	if e.fallback != nil {
		name = e.fallback.DisplayName
		if e.fallback.Confidence > 0 {
			confidence = e.fallback.Confidence
		}
		nextStep = orDefault(e.fallback.NextStep, DefaultNextStep)
	}

	return &models.Suggestion{
		SpecialtyID:     id,
		Specialty:       name,
		Confidence:      confidence,
		MatchedKeywords: []string{},
		Why:             fallbackWhy,
		NextStep:        nextStep,
		Disclaimer:      orDefault(e.ruleset.Disclaimer, DefaultDisclaimer),
		Fallback:        true,
	}
}

// Suggest é a conveniência de chamada única: compila o ruleset e sugere.
// Para servir múltiplas requisições, crie o Engine uma vez e reutilize.
func Suggest(userText string, rs *models.Ruleset) *models.Suggestion {
	return NewEngine(rs).Suggest(userText)
}

func capHits(hits []string) []string {
	if len(hits) > maxHitsInRationale {
		return hits[:maxHitsInRationale]
	}
	return hits
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
