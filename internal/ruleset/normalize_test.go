package ruleset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

func TestParseDialetoLegado(t *testing.T) {
	// snake_case, name em vez de displayName, strong_keywords e fallback por
	// nome: tudo coalescido para o esquema canônico
	doc := `
version: 2
scoring:
  strong_weight: 3
  weak_weight: 2
  min_score: 2
  top_k: 5
fallback:
  name: Clínica Médica
specialties:
  - name: Cardiologia
    confidence: 0.6
    strong_keywords: [dor no peito]
    weak_keywords: [cansaço]
    why: Sintomas cardíacos.
    next_step: Procure um(a) cardiologista.
  - name: Clínica Médica
    confidence: 0.55
    generalist: true
    weak_keywords: [febre]
`
	rs, err := Parse([]byte(doc), "legado.yaml")
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}

	if rs.Scoring.StrongWeight != 3 || rs.Scoring.WeakWeight != 2 || rs.Scoring.MinScore != 2 || rs.Scoring.TopK != 5 {
		t.Errorf("scoring snake_case não coalescido: %+v", rs.Scoring)
	}
	if rs.FallbackID != "clinica_medica" {
		t.Errorf("FallbackID = %q; fallback por nome deveria virar slug", rs.FallbackID)
	}

	cardio := rs.FindSpecialty("cardiologia")
	if cardio == nil {
		t.Fatal("id deveria ser derivado do nome por slug")
	}
	if cardio.DisplayName != "Cardiologia" {
		t.Errorf("DisplayName = %q", cardio.DisplayName)
	}
	if !reflect.DeepEqual(cardio.Strong, []string{"dor no peito"}) {
		t.Errorf("Strong = %v; strong_keywords deveria ser aceito", cardio.Strong)
	}
	if cardio.Rationale != "Sintomas cardíacos." {
		t.Errorf("Rationale = %q; 'why' deveria ser aceito", cardio.Rationale)
	}
	if cardio.NextStep != "Procure um(a) cardiologista." {
		t.Errorf("NextStep = %q; 'next_step' deveria ser aceito", cardio.NextStep)
	}
}

func TestParseDefaults(t *testing.T) {
	doc := `
version: 1
specialties:
  - id: clinica_medica
    displayName: Clínica Médica
    confidence: 0.55
    generalist: true
    weak: [febre]
`
	rs, err := Parse([]byte(doc), "minimo.yaml")
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}

	want := models.Scoring{
		StrongWeight: DefaultStrongWeight,
		WeakWeight:   DefaultWeakWeight,
		MinScore:     DefaultMinScore,
		TopK:         DefaultTopK,
	}
	if rs.Scoring != want {
		t.Errorf("Scoring = %+v, want defaults %+v", rs.Scoring, want)
	}
	if rs.FallbackID != DefaultFallbackID {
		t.Errorf("FallbackID = %q, want %q", rs.FallbackID, DefaultFallbackID)
	}
	if rs.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", rs.Locale, DefaultLocale)
	}
}

func TestParseKeywordNasDuasListasVaraStrong(t *testing.T) {
	doc := `
version: 1
fallbackSpecialtyId: cardiologia
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
    strong: [dor no peito, cansaço]
    weak: [cansaço, CANSAÇO, tontura]
`
	rs, err := Parse([]byte(doc), "sobreposto.yaml")
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}

	sp := rs.Specialties[0]
	if !reflect.DeepEqual(sp.Strong, []string{"dor no peito", "cansaço"}) {
		t.Errorf("Strong = %v", sp.Strong)
	}
	// "cansaço" sai de weak (já é strong) e a duplicata por caixa também
	if !reflect.DeepEqual(sp.Weak, []string{"tontura"}) {
		t.Errorf("Weak = %v; sobreposição com strong deveria ser removida", sp.Weak)
	}
}

func TestParseConfidenceObrigatoria(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "Confidence ausente",
			doc: `
version: 1
fallbackSpecialtyId: cardiologia
specialties:
  - id: cardiologia
    displayName: Cardiologia
`,
		},
		{
			name: "Confidence fora da faixa",
			doc: `
version: 1
fallbackSpecialtyId: cardiologia
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 1.2
`,
		},
		{
			name: "Versao ausente",
			doc: `
fallbackSpecialtyId: cardiologia
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
`,
		},
		{
			name: "Specialties vazio",
			doc: `
version: 1
fallbackSpecialtyId: cardiologia
specialties: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "invalido.yaml")
			if !errors.Is(err, models.ErrRulesetInvalid) {
				t.Errorf("Parse = %v; esperava ErrRulesetInvalid", err)
			}
		})
	}
}

func TestParseRationaleSemMarkdown(t *testing.T) {
	doc := `
version: 1
fallbackSpecialtyId: cardiologia
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
    strong: [dor no peito]
    rationale: "Sintomas **fortes** de coração."
`
	rs, err := Parse([]byte(doc), "markdown.yaml")
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	if got := rs.Specialties[0].Rationale; got != "Sintomas fortes de coração." {
		t.Errorf("Rationale = %q; markdown deveria ser removido no load", got)
	}
}
