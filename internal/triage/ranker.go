package triage

import (
	"sort"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

// Rank aplica a supressão de generalistas, ordena os candidatos e seleciona
// o top-K. Candidatos devem chegar na ordem de declaração do ruleset: o sort
// estável usa essa ordem como desempate final.
func Rank(candidates []*models.Candidate, topK int) []*models.Candidate {
	if len(candidates) == 0 {
		return nil
	}

	candidates = suppressGeneralists(candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.StrongHits) != len(b.StrongHits) {
			return len(a.StrongHits) > len(b.StrongHits)
		}
		return a.Confidence > b.Confidence
	})

	k := topK
	if k < 1 {
		k = 1
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	return candidates[:k]
}

// suppressGeneralists remove todos os candidatos generalistas quando algum
// candidato específico tem hit forte: um casamento específico confiante não
// deve ser diluído por uma categoria porta-de-entrada. Sem hit forte
// específico, generalistas continuam elegíveis.
func suppressGeneralists(candidates []*models.Candidate) []*models.Candidate {
	hasSpecificStrong := false
	for _, c := range candidates {
		if !c.Specialty.Generalist && len(c.StrongHits) > 0 {
			hasSpecificStrong = true
			break
		}
	}
	if !hasSpecificStrong {
		return candidates
	}

	filtered := make([]*models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Specialty.Generalist {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
