package ruleset

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate confere as invariantes do esquema canônico depois da
// normalização. Erros nomeiam o campo problemático: erro de configuração é
// falha de startup, nunca silenciosamente "defaultado".
func Validate(rs *models.Ruleset) error {
	if err := validate.Struct(rs); err != nil {
		return fmt.Errorf("%w: %v", models.ErrRulesetInvalid, err)
	}

	seen := make(map[string]bool, len(rs.Specialties))
	for i, sp := range rs.Specialties {
		if seen[sp.ID] {
			return fmt.Errorf("%w: specialties[%d].id %q duplicado", models.ErrRulesetInvalid, i, sp.ID)
		}
		seen[sp.ID] = true

		for _, kw := range sp.Strong {
			if kw == "" {
				return fmt.Errorf("%w: specialties[%d].strong contém string vazia", models.ErrRulesetInvalid, i)
			}
		}
		for _, kw := range sp.Weak {
			if kw == "" {
				return fmt.Errorf("%w: specialties[%d].weak contém string vazia", models.ErrRulesetInvalid, i)
			}
		}
	}

	if rs.FallbackID == "" {
		return fmt.Errorf("%w: fallbackSpecialtyId é obrigatório", models.ErrRulesetInvalid)
	}
	if !seen[rs.FallbackID] {
		return fmt.Errorf("%w: %q", models.ErrFallbackUnknown, rs.FallbackID)
	}

	return nil
}
