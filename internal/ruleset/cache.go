package ruleset

import (
	"sync"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

// Cache memoiza rulesets carregados, chaveado pelo caminho da fonte.
// É de posse do chamador (nada de estado global de processo) e tem
// invalidação explícita, o que mantém testes com múltiplos rulesets
// triviais. Rulesets em cache são compartilhados somente-leitura.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*models.Ruleset
}

// NewCache cria um cache vazio.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*models.Ruleset)}
}

// Load devolve o ruleset do cache ou carrega do disco na primeira chamada.
// Falha de carga não envenena o cache.
func (c *Cache) Load(path string) (*models.Ruleset, error) {
	c.mu.RLock()
	if rs, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return rs, nil
	}
	c.mu.RUnlock()

	rs, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = rs
	c.mu.Unlock()

	return rs, nil
}

// Invalidate descarta a entrada de um caminho; o próximo Load relê o disco.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear descarta todas as entradas.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*models.Ruleset)
	c.mu.Unlock()
}

// Len informa quantas fontes estão em cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
