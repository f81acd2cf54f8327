package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ruleset é o esquema canônico em memória usado pelo motor de sugestão.
// É montado uma única vez pelo loader (com adaptação de dialetos legados)
// e tratado como somente-leitura durante as requisições.
type Ruleset struct {
	Version     int         `json:"version" yaml:"version" validate:"gt=0"`
	Locale      string      `json:"locale" yaml:"locale"`
	Scoring     Scoring     `json:"scoring" yaml:"scoring"`
	FallbackID  string      `json:"fallbackSpecialtyId" yaml:"fallbackSpecialtyId" validate:"required"`
	Disclaimer  string      `json:"disclaimer" yaml:"disclaimer"`
	Synonyms    Synonyms    `json:"synonyms" yaml:"synonyms"`
	Specialties []Specialty `json:"specialties" yaml:"specialties" validate:"required,min=1,dive"`
}

// Scoring define os pesos e limites usados no cálculo de score.
type Scoring struct {
	StrongWeight int `json:"strongWeight" yaml:"strongWeight" validate:"gt=0"`
	WeakWeight   int `json:"weakWeight" yaml:"weakWeight" validate:"gt=0"`
	MinScore     int `json:"minScore" yaml:"minScore" validate:"gte=0"`
	TopK         int `json:"topK" yaml:"topK" validate:"gt=0"`
}

// Specialty é uma regra de especialidade já validada.
// Invariantes garantidas pelo loader: listas sem strings vazias e sem
// sobreposição entre strong e weak (strong vence).
type Specialty struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	DisplayName string   `json:"displayName" yaml:"displayName" validate:"required"`
	Confidence  float64  `json:"confidence" yaml:"confidence" validate:"gte=0,lte=1"`
	Generalist  bool     `json:"generalist" yaml:"generalist"`
	Strong      []string `json:"strong" yaml:"strong"`
	Weak        []string `json:"weak" yaml:"weak"`
	Rationale   string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	NextStep    string   `json:"nextStep,omitempty" yaml:"nextStep,omitempty"`
}

// SynonymGroup associa um termo canônico às variantes que o implicam.
// A direção é única: variante encontrada no texto implica o canônico.
type SynonymGroup struct {
	Canonical string
	Variants  []string
}

// Synonyms preserva a ordem de declaração dos grupos, que define a ordem
// dos hits reportados no racional da sugestão.
type Synonyms []SynonymGroup

// FindSpecialty retorna a especialidade com o id informado, ou nil.
func (r *Ruleset) FindSpecialty(id string) *Specialty {
	for i := range r.Specialties {
		if r.Specialties[i].ID == id {
			return &r.Specialties[i]
		}
	}
	return nil
}

// UnmarshalYAML decodifica o mapeamento canônico→variantes mantendo a ordem
// do documento fonte (mapas Go não preservam ordem de declaração).
func (s *Synonyms) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("synonyms deve ser um mapeamento canônico -> lista de variantes")
	}

	out := make(Synonyms, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var canonical string
		if err := node.Content[i].Decode(&canonical); err != nil {
			return fmt.Errorf("chave de synonyms inválida: %w", err)
		}
		var variants []string
		if err := node.Content[i+1].Decode(&variants); err != nil {
			return fmt.Errorf("synonyms[%s] deve ser lista de strings: %w", canonical, err)
		}
		out = append(out, SynonymGroup{Canonical: canonical, Variants: variants})
	}
	*s = out
	return nil
}

// MarshalJSON emite o mapeamento como objeto JSON na ordem de declaração.
func (s Synonyms) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, g := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(g.Canonical)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.Variants)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}
