package ruleset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

const rulesetValido = `
version: 1
scoring:
  strongWeight: 2
  weakWeight: 1
fallbackSpecialtyId: clinica_medica
synonyms:
  dor de cabeça: [cefaleia]
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
    strong: [dor no peito]
  - id: clinica_medica
    displayName: Clínica Médica
    confidence: 0.55
    generalist: true
    weak: [cansaço]
`

func TestLoadArquivoInexistente(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nao_existe.yaml"))
	if !errors.Is(err, models.ErrRulesetNotFound) {
		t.Errorf("Load de arquivo inexistente = %v; esperava ErrRulesetNotFound", err)
	}
}

func TestLoadValido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(rulesetValido), 0o644); err != nil {
		t.Fatal(err)
	}

	rs, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if rs.Version != 1 || len(rs.Specialties) != 2 {
		t.Errorf("ruleset carregado incompleto: version=%d specialties=%d", rs.Version, len(rs.Specialties))
	}
	if rs.Scoring.MinScore != DefaultMinScore || rs.Scoring.TopK != DefaultTopK {
		t.Errorf("campos de scoring omitidos deveriam receber defaults: %+v", rs.Scoring)
	}
}

func TestParseJSON(t *testing.T) {
	// JSON é YAML válido: o mesmo caminho de parse serve os dois formatos
	doc := `{
  "version": 2,
  "fallbackSpecialtyId": "clinica_medica",
  "synonyms": {"azia": ["pirose"]},
  "specialties": [
    {"id": "gastro", "displayName": "Gastroenterologia", "confidence": 0.6, "strong": ["azia"]},
    {"id": "clinica_medica", "displayName": "Clínica Médica", "confidence": 0.55, "generalist": true, "weak": ["febre"]}
  ]
}`

	rs, err := Parse([]byte(doc), "inline.json")
	if err != nil {
		t.Fatalf("Parse JSON = %v", err)
	}
	if rs.Version != 2 {
		t.Errorf("Version = %d, want 2", rs.Version)
	}
	if len(rs.Synonyms) != 1 || rs.Synonyms[0].Canonical != "azia" {
		t.Errorf("Synonyms = %+v", rs.Synonyms)
	}
}

func TestParseMarcadoresDeMerge(t *testing.T) {
	doc := `version: 1
<<<<<<< HEAD
fallbackSpecialtyId: clinica_medica
=======
fallbackSpecialtyId: geral
>>>>>>> feature
specialties: []
`
	_, err := Parse([]byte(doc), "conflito.yaml")
	if !errors.Is(err, models.ErrMergeMarkers) {
		t.Fatalf("Parse com conflito = %v; esperava ErrMergeMarkers", err)
	}
}

func TestParseSeparadorYAMLNaoEMarcador(t *testing.T) {
	// "---" e linhas de "=" mais curtas não são marcadores de conflito
	if lines := findMergeMarkers([]byte("---\nversion: 1\n# ====\n")); lines != nil {
		t.Errorf("falso positivo de marcador de merge nas linhas %v", lines)
	}
}

func TestParseFallbackDesconhecido(t *testing.T) {
	doc := `
version: 1
fallbackSpecialtyId: nao_existe
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
    strong: [dor no peito]
`
	_, err := Parse([]byte(doc), "inline.yaml")
	if !errors.Is(err, models.ErrFallbackUnknown) {
		t.Errorf("Parse = %v; esperava ErrFallbackUnknown", err)
	}
}

func TestParseIDDuplicado(t *testing.T) {
	doc := `
version: 1
fallbackSpecialtyId: cardiologia
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
  - id: cardiologia
    displayName: Cardiologia de novo
    confidence: 0.7
`
	_, err := Parse([]byte(doc), "inline.yaml")
	if !errors.Is(err, models.ErrRulesetInvalid) {
		t.Errorf("Parse = %v; esperava ErrRulesetInvalid por id duplicado", err)
	}
}
