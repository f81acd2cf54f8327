package main

import (
	"log"

	_ "github.com/edummoreno/healthcare-mini-mvp/docs"
	"github.com/edummoreno/healthcare-mini-mvp/internal/api/routes"
	"github.com/edummoreno/healthcare-mini-mvp/internal/config"
	"github.com/edummoreno/healthcare-mini-mvp/internal/observability"
	"github.com/edummoreno/healthcare-mini-mvp/internal/ruleset"
	"github.com/edummoreno/healthcare-mini-mvp/internal/services"
)

// @title           Sugestão de Especialidade API
// @version         1.0
// @description     API que sugere uma especialidade médica a partir de texto livre de sintomas, por casamento lexical de keywords contra um ruleset configurável. Não realiza diagnóstico, não prescreve e não define urgência.
// @termsOfService  http://swagger.io/terms/

// @contact.name   Eduardo Moreno
// @contact.url    https://github.com/edummoreno

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	// Erro de configuração é falha de startup, nunca falha por requisição
	cache := ruleset.NewCache()
	service, err := services.NewSuggestService(cache, cfg.RulesetPath)
	if err != nil {
		log.Fatalf("Erro ao carregar ruleset: %v", err)
	}

	r := routes.SetupRouter(service)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
