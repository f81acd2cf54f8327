package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/edummoreno/healthcare-mini-mvp/internal/models"
	"github.com/edummoreno/healthcare-mini-mvp/internal/ruleset"
	"github.com/edummoreno/healthcare-mini-mvp/internal/triage"
)

var (
	output     = flag.String("output", "", "Arquivo de saída (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Saída do eval em formato JSON")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Uso: %s <comando> [opções]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Comandos disponíveis:\n")
		fmt.Fprintf(os.Stderr, "  normalize <rules.yaml>            Converte dialeto de autoria para o JSON canônico\n")
		fmt.Fprintf(os.Stderr, "  enrich <ruleset>                  Injeta o pacote de sinônimos pt-BR e incrementa a versão\n")
		fmt.Fprintf(os.Stderr, "  check <ruleset>                   Carrega, valida e imprime um resumo\n")
		fmt.Fprintf(os.Stderr, "  eval <ruleset> <golden.json>      Roda os casos golden contra o motor\n")
		fmt.Fprintf(os.Stderr, "\nOpções:\n")
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)
	flag.Parse()

	var err error
	switch command {
	case "normalize":
		err = runNormalize(flag.Args())
	case "enrich":
		err = runEnrich(flag.Args())
	case "check":
		err = runCheck(flag.Args())
	case "eval":
		err = runEval(flag.Args())
	default:
		fmt.Fprintf(os.Stderr, "Comando desconhecido: %s\n\n", command)
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("Erro: %v", err)
	}
}

// runNormalize carrega qualquer dialeto suportado e grava o esquema
// canônico. O load já barra merge markers e campos inválidos.
func runNormalize(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: normalize <rules.yaml>")
	}

	rs, err := ruleset.Load(args[0])
	if err != nil {
		return err
	}

	if err := writeRuleset(rs); err != nil {
		return err
	}

	log.Printf("OK: %d especialidades normalizadas (versão %d)", len(rs.Specialties), rs.Version)
	return nil
}

func runEnrich(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: enrich <ruleset>")
	}

	rs, err := ruleset.Load(args[0])
	if err != nil {
		return err
	}

	ruleset.Enrich(rs)

	if err := writeRuleset(rs); err != nil {
		return err
	}

	log.Printf("OK: ruleset enriquecido (versão %d, %d grupos de sinônimos)", rs.Version, len(rs.Synonyms))
	return nil
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: check <ruleset>")
	}

	rs, err := ruleset.Load(args[0])
	if err != nil {
		return err
	}

	generalists := 0
	strongTotal, weakTotal := 0, 0
	for _, sp := range rs.Specialties {
		if sp.Generalist {
			generalists++
		}
		strongTotal += len(sp.Strong)
		weakTotal += len(sp.Weak)
	}

	fmt.Printf("Ruleset válido: %s\n", args[0])
	fmt.Printf("  versão: %d  locale: %s\n", rs.Version, rs.Locale)
	fmt.Printf("  especialidades: %d (%d generalistas)\n", len(rs.Specialties), generalists)
	fmt.Printf("  keywords: %d strong, %d weak\n", strongTotal, weakTotal)
	fmt.Printf("  sinônimos: %d grupos\n", len(rs.Synonyms))
	fmt.Printf("  fallback: %s\n", rs.FallbackID)
	fmt.Printf("  scoring: strong=%d weak=%d min=%d topK=%d\n",
		rs.Scoring.StrongWeight, rs.Scoring.WeakWeight, rs.Scoring.MinScore, rs.Scoring.TopK)
	return nil
}

// goldenCase é um caso de regressão: texto de entrada e id esperado.
type goldenCase struct {
	Text     string `json:"text"`
	Expected string `json:"expected"`
}

type goldenFailure struct {
	Text     string `json:"text"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
	Why      string `json:"why"`
}

func runEval(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("uso: eval <ruleset> <golden.json>")
	}

	rs, err := ruleset.Load(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("erro ao ler casos golden: %w", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return fmt.Errorf("erro ao parsear casos golden: %w", err)
	}

	engine := triage.NewEngine(rs)

	var failures []goldenFailure
	for _, c := range cases {
		s := engine.Suggest(c.Text)
		if s.SpecialtyID != c.Expected {
			failures = append(failures, goldenFailure{
				Text:     c.Text,
				Expected: c.Expected,
				Got:      s.SpecialtyID,
				Why:      s.Why,
			})
		}
	}

	if *jsonOutput {
		out, _ := json.MarshalIndent(map[string]any{
			"total":    len(cases),
			"failures": failures,
		}, "", "  ")
		fmt.Println(string(out))
	} else {
		fmt.Printf("Casos: %d, falhas: %d\n", len(cases), len(failures))
		for _, f := range failures {
			fmt.Printf("  - texto=%q esperado=%s obtido=%s (%s)\n", f.Text, f.Expected, f.Got, f.Why)
		}
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
	return nil
}

func writeRuleset(rs *models.Ruleset) error {
	out, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar ruleset: %w", err)
	}
	out = append(out, '\n')

	if *output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", *output, err)
	}
	return nil
}
