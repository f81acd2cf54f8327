package models

// Candidate é o estado transitório de uma especialidade admitida durante o
// scoring de uma requisição. Nunca é persistido nem compartilhado entre
// requisições.
type Candidate struct {
	Specialty  *Specialty
	Score      int
	StrongHits []string
	WeakHits   []string
	Confidence float64
}

// Matched retorna os termos casados, fortes primeiro.
func (c *Candidate) Matched() []string {
	out := make([]string, 0, len(c.StrongHits)+len(c.WeakHits))
	out = append(out, c.StrongHits...)
	out = append(out, c.WeakHits...)
	return out
}

// SynonymHit registra uma variante encontrada no texto e o termo canônico
// injetado por causa dela.
type SynonymHit struct {
	Variant   string `json:"variant"`
	Canonical string `json:"canonical"`
}

// Suggestion é o resultado final de uma sugestão de especialidade.
// Imutável depois de construída.
type Suggestion struct {
	SpecialtyID string `json:"specialty_id" example:"cardiologia"`
	Specialty   string `json:"specialty" example:"Cardiologia"`
	// Confiança heurística, sempre em [0, 0.95]
	Confidence      float64  `json:"confidence" example:"0.66"`
	MatchedKeywords []string `json:"matched_keywords"`
	Why             string   `json:"why"`
	NextStep        string   `json:"next_step"`
	Disclaimer      string   `json:"disclaimer"`
	// Indica que nenhuma especialidade atingiu o score mínimo
	Fallback     bool          `json:"fallback,omitempty"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Alternative é um candidato do top-K que não venceu. Carrega a confiança
// base declarada no ruleset, sem o bônus por evidência do vencedor.
type Alternative struct {
	SpecialtyID     string   `json:"specialty_id"`
	Specialty       string   `json:"specialty"`
	Confidence      float64  `json:"confidence"`
	Score           int      `json:"score"`
	StrongHits      int      `json:"strong_hits"`
	MatchedKeywords []string `json:"matched_keywords"`
}
