package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/ruleset"
)

const rulesetDeTeste = `
version: 1
fallbackSpecialtyId: clinica_medica
specialties:
  - id: cardiologia
    displayName: Cardiologia
    confidence: 0.6
    strong: [dor no peito, palpitação]
  - id: clinica_medica
    displayName: Clínica Médica
    confidence: 0.55
    generalist: true
    weak: [febre]
`

func novoServico(t *testing.T) (*SuggestService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(rulesetDeTeste), 0o644); err != nil {
		t.Fatal(err)
	}
	service, err := NewSuggestService(ruleset.NewCache(), path)
	if err != nil {
		t.Fatalf("NewSuggestService = %v", err)
	}
	return service, path
}

func TestSuggestServiceSugere(t *testing.T) {
	service, _ := novoServico(t)

	got := service.Suggest("tenho dor no peito")
	if got.SpecialtyID != "cardiologia" {
		t.Errorf("SpecialtyID = %q, want cardiologia", got.SpecialtyID)
	}

	if !service.Ready() {
		t.Error("serviço com motor compilado deveria estar pronto")
	}
}

func TestSuggestServiceRulesetInvalidoNaCarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("version: 0\nspecialties: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewSuggestService(ruleset.NewCache(), path); !errors.Is(err, models.ErrRulesetInvalid) {
		t.Errorf("NewSuggestService = %v; esperava ErrRulesetInvalid", err)
	}
}

func TestSuggestServiceReload(t *testing.T) {
	service, path := novoServico(t)

	editado := strings.Replace(rulesetDeTeste, "version: 1", "version: 2", 1)
	if err := os.WriteFile(path, []byte(editado), 0o644); err != nil {
		t.Fatal(err)
	}

	meta, err := service.Reload()
	if err != nil {
		t.Fatalf("Reload = %v", err)
	}
	if meta.Version != 2 {
		t.Errorf("meta.Version = %d, want 2", meta.Version)
	}
	if service.Meta().Version != 2 {
		t.Errorf("Meta().Version = %d, want 2 após reload", service.Meta().Version)
	}
}

func TestSuggestServiceReloadComErroMantemMotor(t *testing.T) {
	service, path := novoServico(t)

	if err := os.WriteFile(path, []byte(":::: não é yaml ::::"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := service.Reload(); err == nil {
		t.Fatal("Reload de fonte inválida deveria falhar")
	}

	// O motor anterior continua servindo
	got := service.Suggest("dor no peito")
	if got.SpecialtyID != "cardiologia" {
		t.Errorf("SpecialtyID = %q; motor antigo deveria seguir ativo", got.SpecialtyID)
	}
	if service.Meta().Version != 1 {
		t.Errorf("Meta().Version = %d, want 1", service.Meta().Version)
	}
}

func TestSuggestServiceSpecialties(t *testing.T) {
	service, _ := novoServico(t)

	got := service.Specialties()
	if len(got) != 2 {
		t.Fatalf("Specialties = %d entradas, want 2", len(got))
	}
	if got[0].ID != "cardiologia" || got[1].ID != "clinica_medica" {
		t.Errorf("ordem de declaração não preservada: %+v", got)
	}
	if !got[1].Generalist {
		t.Error("clinica_medica deveria vir marcada como generalista")
	}
}
