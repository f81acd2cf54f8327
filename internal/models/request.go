package models

import "strings"

// SuggestRequest representa o corpo da requisição de sugestão.
// @Description Texto livre descrevendo sintomas (pt-BR). O texto nunca é
// @Description armazenado nem escrito em logs.
type SuggestRequest struct {
	// Texto livre com a queixa (obrigatório, não pode ser só espaços)
	Texto string `json:"texto" binding:"required" example:"tenho dor no peito e palpitação"`
}

// Validate aplica a regra de entrada vazia antes de invocar o motor.
func (r *SuggestRequest) Validate() error {
	if strings.TrimSpace(r.Texto) == "" {
		return ErrTextoObrigatorio
	}
	return nil
}
