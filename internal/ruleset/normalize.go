// Package ruleset carrega, normaliza e valida rulesets de especialidades.
// Dialetos legados de autoria (snake_case, strong_keywords, fallback por
// nome) são convertidos aqui para o esquema canônico: o motor nunca vê
// variação de formato.
package ruleset

import (
	"fmt"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

// Defaults de scoring aplicados quando o documento omite o bloco.
const (
	DefaultStrongWeight = 2
	DefaultWeakWeight   = 1
	DefaultMinScore     = 1
	DefaultTopK         = 3

	DefaultFallbackID = "clinica_medica"
	DefaultLocale     = "pt-BR"
)

// rawDocument aceita todos os dialetos de autoria conhecidos. Cada campo com
// variantes históricas aparece duplicado e é coalescido em Normalize.
type rawDocument struct {
	Version int        `yaml:"version"`
	Locale  string     `yaml:"locale"`
	Scoring rawScoring `yaml:"scoring"`

	FallbackSpecialtyID    string      `yaml:"fallbackSpecialtyId"`
	FallbackSpecialtyIDAlt string      `yaml:"fallback_specialty_id"`
	Fallback               rawFallback `yaml:"fallback"`

	Disclaimer  string          `yaml:"disclaimer"`
	Synonyms    models.Synonyms `yaml:"synonyms"`
	Specialties []rawSpecialty  `yaml:"specialties"`
}

type rawScoring struct {
	StrongWeight    *int `yaml:"strongWeight"`
	StrongWeightAlt *int `yaml:"strong_weight"`
	WeakWeight      *int `yaml:"weakWeight"`
	WeakWeightAlt   *int `yaml:"weak_weight"`
	MinScore        *int `yaml:"minScore"`
	MinScoreAlt     *int `yaml:"min_score"`
	TopK            *int `yaml:"topK"`
	TopKAlt         *int `yaml:"top_k"`
}

// rawFallback é o bloco legado em que o fallback era indicado por nome.
type rawFallback struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type rawSpecialty struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"displayName"`
	Name        string `yaml:"name"`

	Confidence *float64 `yaml:"confidence"`
	Generalist bool     `yaml:"generalist"`

	Strong         []string `yaml:"strong"`
	StrongKeywords []string `yaml:"strong_keywords"`
	Weak           []string `yaml:"weak"`
	WeakKeywords   []string `yaml:"weak_keywords"`
	// Lista plana legada, descartada: ambígua entre strong e weak
	Keywords []string `yaml:"keywords"`

	Rationale   string `yaml:"rationale"`
	Why         string `yaml:"why"`
	NextStep    string `yaml:"nextStep"`
	NextStepAlt string `yaml:"next_step"`
}

// Normalize converte um documento bruto (qualquer dialeto) para o esquema
// canônico. Falha alto e cedo, nomeando o campo problemático.
func Normalize(raw *rawDocument) (*models.Ruleset, error) {
	if raw.Version <= 0 {
		return nil, fmt.Errorf("%w: campo 'version' (int > 0) é obrigatório", models.ErrRulesetInvalid)
	}
	if len(raw.Specialties) == 0 {
		return nil, fmt.Errorf("%w: campo 'specialties' deve ser uma lista não-vazia", models.ErrRulesetInvalid)
	}

	rs := &models.Ruleset{
		Version: raw.Version,
		Locale:  coalesce(raw.Locale, DefaultLocale),
		Scoring: models.Scoring{
			StrongWeight: coalesceInt(raw.Scoring.StrongWeight, raw.Scoring.StrongWeightAlt, DefaultStrongWeight),
			WeakWeight:   coalesceInt(raw.Scoring.WeakWeight, raw.Scoring.WeakWeightAlt, DefaultWeakWeight),
			MinScore:     coalesceInt(raw.Scoring.MinScore, raw.Scoring.MinScoreAlt, DefaultMinScore),
			TopK:         coalesceInt(raw.Scoring.TopK, raw.Scoring.TopKAlt, DefaultTopK),
		},
		FallbackID: normalizeFallbackID(raw),
		Disclaimer: utils.StripMarkdown(raw.Disclaimer),
		Synonyms:   raw.Synonyms,
	}

	for i, sp := range raw.Specialties {
		out, err := normalizeSpecialty(i, &sp)
		if err != nil {
			return nil, err
		}
		rs.Specialties = append(rs.Specialties, *out)
	}

	return rs, nil
}

func normalizeSpecialty(idx int, sp *rawSpecialty) (*models.Specialty, error) {
	name := coalesce(sp.DisplayName, sp.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: specialties[%d] precisa de 'name' ou 'displayName'", models.ErrRulesetInvalid, idx)
	}

	id := sp.ID
	if id == "" {
		id = utils.SlugID(name)
	}

	if sp.Confidence == nil {
		return nil, fmt.Errorf("%w: specialties[%d].confidence é obrigatório", models.ErrRulesetInvalid, idx)
	}
	if *sp.Confidence < 0 || *sp.Confidence > 1 {
		return nil, fmt.Errorf("%w: specialties[%d].confidence deve estar entre 0 e 1 (veio %v)", models.ErrRulesetInvalid, idx, *sp.Confidence)
	}

	strong := dedupeNormalized(firstNonEmpty(sp.Strong, sp.StrongKeywords))
	weak := dedupeNormalized(firstNonEmpty(sp.Weak, sp.WeakKeywords))

	// Keyword nas duas listas conta só como strong
	weak = subtractByNorm(weak, strong)

	return &models.Specialty{
		ID:          id,
		DisplayName: name,
		Confidence:  *sp.Confidence,
		Generalist:  sp.Generalist,
		Strong:      strong,
		Weak:        weak,
		Rationale:   utils.StripMarkdown(coalesce(sp.Rationale, sp.Why)),
		NextStep:    utils.StripMarkdown(coalesce(sp.NextStep, sp.NextStepAlt)),
	}, nil
}

func normalizeFallbackID(raw *rawDocument) string {
	if raw.FallbackSpecialtyID != "" {
		return raw.FallbackSpecialtyID
	}
	if raw.FallbackSpecialtyIDAlt != "" {
		return raw.FallbackSpecialtyIDAlt
	}
	if raw.Fallback.ID != "" {
		return utils.SlugID(raw.Fallback.ID)
	}
	if raw.Fallback.Name != "" {
		return utils.SlugID(raw.Fallback.Name)
	}
	return DefaultFallbackID
}

// dedupeNormalized remove entradas vazias e duplicatas pela forma
// normalizada, mantendo a primeira grafia declarada.
func dedupeNormalized(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := utils.NormalizarTexto(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func subtractByNorm(items, remove []string) []string {
	removeSet := make(map[string]bool, len(remove))
	for _, r := range remove {
		removeSet[utils.NormalizarTexto(r)] = true
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !removeSet[utils.NormalizarTexto(item)] {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func coalesceInt(a, b *int, def int) int {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return def
}
