package services

import (
	"log"
	"sync"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/ruleset"
	"github.com/edummoreno/healthcare-mini-mvp/internal/triage"
)

// SuggestService orquestra o ciclo de vida do motor de sugestão: carga do
// ruleset via cache, troca atômica no reload administrativo e acesso
// somente-leitura para os handlers. O texto do usuário passa por aqui sem
// nunca ser logado nem persistido.
type SuggestService struct {
	cache *ruleset.Cache
	path  string

	mu     sync.RWMutex
	engine *triage.Engine
}

// NewSuggestService carrega o ruleset e compila o motor. Erro aqui é falha
// de startup: a aplicação não deve subir com configuração inválida.
func NewSuggestService(cache *ruleset.Cache, path string) (*SuggestService, error) {
	rs, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	log.Printf("Ruleset carregado de %s: versão %d, %d especialidades, %d grupos de sinônimos",
		path, rs.Version, len(rs.Specialties), len(rs.Synonyms))

	return &SuggestService{
		cache:  cache,
		path:   path,
		engine: triage.NewEngine(rs),
	}, nil
}

// Suggest delega ao motor compilado. Total: nunca retorna erro.
func (s *SuggestService) Suggest(texto string) *models.Suggestion {
	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()
	return engine.Suggest(texto)
}

// Reload invalida a entrada do cache, recarrega do disco e troca o motor.
// Em caso de erro o motor anterior continua servindo.
func (s *SuggestService) Reload() (models.RulesetMeta, error) {
	s.cache.Invalidate(s.path)

	rs, err := s.cache.Load(s.path)
	if err != nil {
		return models.RulesetMeta{}, err
	}

	engine := triage.NewEngine(rs)

	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()

	log.Printf("Ruleset recarregado de %s: versão %d", s.path, rs.Version)
	return metaOf(rs), nil
}

// Meta descreve o ruleset ativo sem expor as listas de keywords.
func (s *SuggestService) Meta() models.RulesetMeta {
	return metaOf(s.current())
}

// Specialties lista as especialidades do ruleset ativo para a camada de
// apresentação.
func (s *SuggestService) Specialties() []models.SpecialtyInfo {
	rs := s.current()
	out := make([]models.SpecialtyInfo, 0, len(rs.Specialties))
	for _, sp := range rs.Specialties {
		out = append(out, models.SpecialtyInfo{
			ID:          sp.ID,
			DisplayName: sp.DisplayName,
			Confidence:  sp.Confidence,
			Generalist:  sp.Generalist,
		})
	}
	return out
}

// Ready informa se há um motor compilado pronto para servir.
func (s *SuggestService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine != nil
}

func (s *SuggestService) current() *models.Ruleset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Ruleset()
}

func metaOf(rs *models.Ruleset) models.RulesetMeta {
	return models.RulesetMeta{
		Version:       rs.Version,
		Locale:        rs.Locale,
		Specialties:   len(rs.Specialties),
		SynonymGroups: len(rs.Synonyms),
		FallbackID:    rs.FallbackID,
		Scoring:       rs.Scoring,
	}
}
