package models

import "errors"

var (
	ErrTextoObrigatorio = errors.New("texto é obrigatório")
	ErrRulesetNotFound  = errors.New("nenhum ruleset encontrado")
	ErrRulesetInvalid   = errors.New("ruleset inválido")
	ErrMergeMarkers     = errors.New("arquivo contém marcadores de merge não resolvidos")
	ErrFallbackUnknown  = errors.New("fallbackSpecialtyId não corresponde a nenhuma especialidade")
)
