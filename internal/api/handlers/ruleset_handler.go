package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/services"
)

// RulesetHandler expõe metadados do ruleset ativo e o reload administrativo
type RulesetHandler struct {
	service *services.SuggestService
}

// NewRulesetHandler cria um novo handler de ruleset
func NewRulesetHandler(service *services.SuggestService) *RulesetHandler {
	return &RulesetHandler{service: service}
}

// ListSpecialties godoc
// @Summary Lista as especialidades carregadas
// @Description Visão resumida (id, nome, confiança base, flag generalista) para a camada de apresentação
// @Tags ruleset
// @Produce json
// @Success 200 {array} models.SpecialtyInfo
// @Router /api/v1/especialidades [get]
func (h *RulesetHandler) ListSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Specialties())
}

// GetMeta godoc
// @Summary Metadados do ruleset ativo
// @Description Versão, locale, contagens e configuração de scoring, sem expor as listas de keywords
// @Tags ruleset
// @Produce json
// @Success 200 {object} models.RulesetMeta
// @Router /api/v1/ruleset [get]
func (h *RulesetHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Meta())
}

// Reload godoc
// @Summary Recarrega o ruleset do disco
// @Description Invalida a entrada do cache e recompila o motor. Em caso de erro a versão anterior continua servindo.
// @Tags admin
// @Produce json
// @Success 200 {object} models.ReloadResponse
// @Failure 500 {object} map[string]string "Ruleset inválido ou fonte ausente"
// @Router /api/v1/admin/ruleset/reload [post]
func (h *RulesetHandler) Reload(c *gin.Context) {
	meta, err := h.service.Reload()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrRulesetNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Erro ao recarregar ruleset: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ReloadResponse{Reloaded: true, Meta: meta})
}
