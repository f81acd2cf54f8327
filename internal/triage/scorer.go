package triage

import (
	"strings"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

type compiledKeyword struct {
	original string
	tokens   []string
}

type compiledSpecialty struct {
	rule   *models.Specialty
	strong []compiledKeyword
	weak   []compiledKeyword
}

// Scorer avalia especialidades contra o texto enriquecido e aplica o filtro
// de admissão por score mínimo.
type Scorer struct {
	scoring models.Scoring
}

// NewScorer cria um scorer com os pesos do ruleset.
func NewScorer(scoring models.Scoring) *Scorer {
	return &Scorer{scoring: scoring}
}

// Score conta hits fortes e fracos da especialidade no texto e calcula o
// score ponderado. Retorna (nil, false) quando a especialidade não atinge
// minScore: o filtro é de admissão, não só preferência.
func (s *Scorer) Score(sp *compiledSpecialty, textTokens []string) (*models.Candidate, bool) {
	var strongHits, weakHits []string

	for _, kw := range sp.strong {
		if matchTokens(textTokens, kw.tokens) {
			strongHits = append(strongHits, kw.original)
		}
	}
	for _, kw := range sp.weak {
		if matchTokens(textTokens, kw.tokens) {
			weakHits = append(weakHits, kw.original)
		}
	}

	score := s.scoring.StrongWeight*len(strongHits) + s.scoring.WeakWeight*len(weakHits)
	if score < s.scoring.MinScore {
		return nil, false
	}

	return &models.Candidate{
		Specialty:  sp.rule,
		Score:      score,
		StrongHits: strongHits,
		WeakHits:   weakHits,
		Confidence: sp.rule.Confidence,
	}, true
}

// compileSpecialty pré-normaliza as listas de keywords de uma regra.
// Keywords que normalizam para vazio são descartadas.
func compileSpecialty(rule *models.Specialty) compiledSpecialty {
	return compiledSpecialty{
		rule:   rule,
		strong: compileKeywords(rule.Strong),
		weak:   compileKeywords(rule.Weak),
	}
}

func compileKeywords(keywords []string) []compiledKeyword {
	out := make([]compiledKeyword, 0, len(keywords))
	for _, kw := range keywords {
		norm := utils.NormalizarTexto(kw)
		if norm == "" {
			continue
		}
		out = append(out, compiledKeyword{original: kw, tokens: strings.Fields(norm)})
	}
	return out
}
