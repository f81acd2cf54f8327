package models

// SpecialtyInfo é a visão resumida de uma especialidade para a camada de
// apresentação (lista de opções, sem keywords).
type SpecialtyInfo struct {
	ID          string  `json:"id" example:"cardiologia"`
	DisplayName string  `json:"display_name" example:"Cardiologia"`
	Confidence  float64 `json:"confidence" example:"0.6"`
	Generalist  bool    `json:"generalist"`
}

// RulesetMeta descreve o ruleset carregado sem expor as listas de keywords.
type RulesetMeta struct {
	Version       int     `json:"version"`
	Locale        string  `json:"locale"`
	Specialties   int     `json:"specialties"`
	SynonymGroups int     `json:"synonym_groups"`
	FallbackID    string  `json:"fallback_specialty_id"`
	Scoring       Scoring `json:"scoring"`
}

// ReloadResponse é a resposta do recarregamento administrativo do ruleset.
type ReloadResponse struct {
	Reloaded bool        `json:"reloaded"`
	Meta     RulesetMeta `json:"meta"`
}
