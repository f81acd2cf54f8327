// Package triage implementa o motor de sugestão de especialidade: casamento
// lexical de keywords sobre texto normalizado, expansão de sinônimos, scoring
// ponderado e ranking top-K. Sem inferência além do casamento lexical.
package triage

import (
	"strings"

	"github.com/edummoreno/healthcare-mini-mvp/internal/utils"
)

// MaxTokenGap é quantos tokens intermediários são tolerados entre tokens
// consecutivos de uma keyword multi-palavra. Com gap 2, "visao embacada"
// casa com "minha visao esta bem embacada".
const MaxTokenGap = 2

// Matches decide se uma keyword normalizada ocorre num texto normalizado.
// Keyword vazia nunca casa. Keyword de um token exige palavra inteira
// ("rim" não casa dentro de "primario"). Keyword multi-palavra exige os
// tokens em ordem, respeitando MaxTokenGap entre cada par.
func Matches(textNorm, kwNorm string) bool {
	if kwNorm == "" {
		return false
	}
	return matchTokens(utils.Tokenizar(textNorm), strings.Fields(kwNorm))
}

// matchTokens é a forma pré-tokenizada usada pelo motor, que tokeniza o
// texto uma única vez por requisição.
func matchTokens(textTokens, kwTokens []string) bool {
	if len(kwTokens) == 0 {
		return false
	}

	if len(kwTokens) == 1 {
		// Texto normalizado só tem [a-z0-9 ]: igualdade de token equivale a
		// casamento com fronteira de palavra.
		for _, tok := range textTokens {
			if tok == kwTokens[0] {
				return true
			}
		}
		return false
	}

	// Varre cada ocorrência do primeiro token como ponto de partida; se a
	// sequência falhar dentro do orçamento de gap, tenta a próxima.
	for start, tok := range textTokens {
		if tok != kwTokens[0] {
			continue
		}
		if matchPhraseFrom(textTokens, kwTokens, start) {
			return true
		}
	}
	return false
}

func matchPhraseFrom(textTokens, kwTokens []string, start int) bool {
	pos := start
	for _, kw := range kwTokens[1:] {
		next := -1
		limit := pos + 1 + MaxTokenGap
		for j := pos + 1; j <= limit && j < len(textTokens); j++ {
			if textTokens[j] == kw {
				next = j
				break
			}
		}
		if next < 0 {
			return false
		}
		pos = next
	}
	return true
}
