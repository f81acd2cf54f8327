package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/services"
)

// SuggestHandler gerencia o endpoint de sugestão de especialidade
type SuggestHandler struct {
	service *services.SuggestService
}

// NewSuggestHandler cria um novo handler de sugestão
func NewSuggestHandler(service *services.SuggestService) *SuggestHandler {
	return &SuggestHandler{service: service}
}

// Suggest godoc
// @Summary Sugere uma especialidade a partir de texto livre
// @Description Mapeia uma descrição curta de sintomas (pt-BR) para uma especialidade sugerida,
// @Description por casamento lexical de keywords com expansão de sinônimos e score ponderado.
// @Description Não é ferramenta de diagnóstico: nenhuma inferência além do casamento lexical.
// @Description O texto enviado não é armazenado nem logado.
// @Tags sugestao
// @Accept json
// @Produce json
// @Param request body models.SuggestRequest true "Texto livre com a queixa"
// @Success 200 {object} models.Suggestion
// @Failure 400 {object} map[string]string "Texto vazio ou corpo inválido"
// @Router /api/v1/sugerir [post]
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req models.SuggestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Corpo inválido: esperado JSON com campo 'texto'",
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Escreva um texto (genérico) para eu sugerir uma especialidade.",
		})
		return
	}

	c.JSON(http.StatusOK, h.service.Suggest(req.Texto))
}
