package ruleset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

// Load lê um ruleset de um arquivo YAML ou JSON (JSON é parseado pelo mesmo
// caminho, já que YAML é superset), normaliza dialetos e valida. Retorna
// models.ErrRulesetNotFound quando a fonte não existe, distinguível com
// errors.Is.
func Load(path string) (*models.Ruleset, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: esperado em %s", models.ErrRulesetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler ruleset %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse normaliza e valida um documento de ruleset já em memória.
func Parse(data []byte, source string) (*models.Ruleset, error) {
	if lines := findMergeMarkers(data); len(lines) > 0 {
		return nil, fmt.Errorf("%w: %s (linhas %v)", models.ErrMergeMarkers, source, lines)
	}

	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("erro ao parsear ruleset %s: %w", source, err)
	}

	rs, err := Normalize(&raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if err := Validate(rs); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	return rs, nil
}

// findMergeMarkers detecta marcadores reais de conflito do Git: linha
// começando com <<<<<<< ou >>>>>>>, ou exatamente =======. Rulesets com
// conflito não resolvido nunca devem ser carregados silenciosamente.
func findMergeMarkers(data []byte) []int {
	var lines []int
	for i, line := range strings.Split(string(data), "\n") {
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, "<<<<<<<") || strings.HasPrefix(s, ">>>>>>>") || s == "=======" {
			lines = append(lines, i+1)
		}
	}
	return lines
}
