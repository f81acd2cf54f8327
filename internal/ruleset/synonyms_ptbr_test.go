package ruleset

import (
	"testing"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

func TestMergeSynonymsPTBR(t *testing.T) {
	existing := models.Synonyms{
		// Grupo que também existe no pacote, com variante própria
		{Canonical: "dor de cabeça", Variants: []string{"enxaqueca", "cefaleia"}},
		{Canonical: "coceira", Variants: []string{"prurido"}},
	}

	merged := MergeSynonymsPTBR(existing)

	// Grupos existentes ficam na frente, na ordem original
	if merged[0].Canonical != "dor de cabeça" || merged[1].Canonical != "coceira" {
		t.Fatalf("ordem original não preservada: %+v", merged[:2])
	}

	// "cefaleia" já estava declarado: o merge não duplica
	got := merged[0].Variants
	want := []string{"enxaqueca", "cefaleia"}
	if len(got) != len(want) {
		t.Fatalf("Variants = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Variants = %v, want %v", got, want)
		}
	}

	// Grupos do pacote que não existiam são acrescentados ao final
	var temAzia bool
	for _, g := range merged[2:] {
		if g.Canonical == "azia" {
			temAzia = true
		}
	}
	if !temAzia {
		t.Error("grupo 'azia' do pacote deveria ter sido acrescentado")
	}

	// O slice de entrada não é mutado além do necessário
	if len(existing) != 2 {
		t.Errorf("entrada mutada: %d grupos", len(existing))
	}
}

func TestEnrich(t *testing.T) {
	rs := &models.Ruleset{
		Version:    3,
		FallbackID: "clinica_medica",
		Specialties: []models.Specialty{
			{ID: "cardiologia", DisplayName: "Cardiologia", Confidence: 0.6,
				Strong: []string{"dor no peito", "DOR NO PEITO"}},
			{ID: "clinica_medica", DisplayName: "Clínica Médica", Confidence: 0.55},
		},
	}

	Enrich(rs)

	if rs.Version != 4 {
		t.Errorf("Version = %d, want 4", rs.Version)
	}
	if len(rs.Synonyms) == 0 {
		t.Error("Enrich deveria injetar o pacote de sinônimos")
	}
	if !rs.Specialties[1].Generalist {
		t.Error("especialidade de fallback deveria ser marcada como generalista")
	}
	if len(rs.Specialties[0].Strong) != 1 {
		t.Errorf("Strong = %v; duplicata por caixa deveria sair", rs.Specialties[0].Strong)
	}
}
