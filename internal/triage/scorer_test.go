package triage

import (
	"reflect"
	"testing"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

func defaultScoring() models.Scoring {
	return models.Scoring{StrongWeight: 2, WeakWeight: 1, MinScore: 1, TopK: 3}
}

func TestScorerPonderacao(t *testing.T) {
	rule := &models.Specialty{
		ID:          "cardiologia",
		DisplayName: "Cardiologia",
		Confidence:  0.6,
		Strong:      []string{"dor no peito", "palpitação"},
		Weak:        []string{"cansaço", "tontura"},
	}
	compiled := compileSpecialty(rule)
	scorer := NewScorer(defaultScoring())

	tests := []struct {
		name       string
		text       string
		wantScore  int
		wantStrong []string
		wantWeak   []string
	}{
		{
			name:       "Dois strong",
			text:       "dor no peito e palpitação",
			wantScore:  4,
			wantStrong: []string{"dor no peito", "palpitação"},
		},
		{
			name:       "Um strong e um weak",
			text:       "palpitação e muito cansaço",
			wantScore:  3,
			wantStrong: []string{"palpitação"},
			wantWeak:   []string{"cansaço"},
		},
		{
			name:      "Só weak",
			text:      "tontura ao levantar",
			wantScore: 1,
			wantWeak:  []string{"tontura"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := utils.Tokenizar(utils.NormalizarTexto(tt.text))
			cand, ok := scorer.Score(&compiled, tokens)
			if !ok {
				t.Fatalf("Score(%q) não admitiu o candidato", tt.text)
			}
			if cand.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", cand.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(cand.StrongHits, tt.wantStrong) {
				t.Errorf("StrongHits = %v, want %v", cand.StrongHits, tt.wantStrong)
			}
			if !reflect.DeepEqual(cand.WeakHits, tt.wantWeak) {
				t.Errorf("WeakHits = %v, want %v", cand.WeakHits, tt.wantWeak)
			}
			if cand.Confidence != rule.Confidence {
				t.Errorf("Confidence = %v, want %v", cand.Confidence, rule.Confidence)
			}
		})
	}
}

func TestScorerFiltroDeAdmissao(t *testing.T) {
	rule := &models.Specialty{
		ID:          "dermatologia",
		DisplayName: "Dermatologia",
		Confidence:  0.6,
		Weak:        []string{"pele seca"},
	}
	compiled := compileSpecialty(rule)

	// Com minScore 2, um único hit weak (1 ponto) não é admitido
	scorer := NewScorer(models.Scoring{StrongWeight: 2, WeakWeight: 1, MinScore: 2, TopK: 3})
	tokens := utils.Tokenizar("estou com pele seca")

	if cand, ok := scorer.Score(&compiled, tokens); ok {
		t.Errorf("candidato abaixo do minScore foi admitido: %+v", cand)
	}

	// Sem hit nenhum, nunca admite
	scorer = NewScorer(defaultScoring())
	if cand, ok := scorer.Score(&compiled, utils.Tokenizar("febre alta")); ok {
		t.Errorf("candidato sem hits foi admitido: %+v", cand)
	}
}

func TestScorerHitsPelaGrafiaDeclarada(t *testing.T) {
	rule := &models.Specialty{
		ID:          "oftalmologia",
		DisplayName: "Oftalmologia",
		Confidence:  0.6,
		Strong:      []string{"visão embaçada"},
	}
	compiled := compileSpecialty(rule)
	scorer := NewScorer(defaultScoring())

	tokens := utils.Tokenizar(utils.NormalizarTexto("minha visao esta embacada"))
	cand, ok := scorer.Score(&compiled, tokens)
	if !ok {
		t.Fatal("esperava admissão com keyword acentuada sobre texto sem acento")
	}
	if !reflect.DeepEqual(cand.StrongHits, []string{"visão embaçada"}) {
		t.Errorf("StrongHits = %v; hits devem usar a grafia declarada no ruleset", cand.StrongHits)
	}
}
