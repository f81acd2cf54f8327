package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown remove formatação markdown de textos autorados no ruleset
// (racional, próximo passo, disclaimer) e devolve texto plano para exibição.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// extractText percorre a AST acumulando só o conteúdo textual.
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.Hardbreak:
		buf.WriteString("\n")
		return
	case *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	children := node.GetChildren()
	for i, child := range children {
		extractText(child, buf)
		// Blocos viram parágrafos separados por quebra simples
		if _, ok := child.(*ast.Paragraph); ok && i < len(children)-1 {
			buf.WriteString("\n")
		}
	}
}
