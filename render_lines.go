package main

import (
	"strings"

	"quill/internal/highlighter"

	"github.com/charmbracelet/lipgloss"
)

// renderTokenLine paints one display line from its normalized spans.
// Spans are expected to cover the line; a missing span list renders
// the whole line plain.
func renderTokenLine(text string, spans []highlighter.Span, selected bool) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(spans) == 0 {
		spans = []highlighter.Span{{Start: 0, End: len(runes), Cat: highlighter.TokenPlain}}
	}

	var b strings.Builder
	for _, span := range spans {
		start := clamp(span.Start, 0, len(runes))
		end := clamp(span.End, 0, len(runes))
		if end <= start {
			continue
		}
		b.WriteString(tokenStyle(span.Cat, selected).Render(string(runes[start:end])))
	}

	return b.String()
}

func tokenStyle(cat highlighter.TokenCategory, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Text))
	if selected {
		style = style.Background(lipgloss.Color(appTheme.SelectionBG))
	}

	switch cat {
	case highlighter.TokenKeyword:
		return style.Foreground(lipgloss.Color(appTheme.Keyword))
	case highlighter.TokenType:
		return style.Foreground(lipgloss.Color(appTheme.Type))
	case highlighter.TokenFunction:
		return style.Foreground(lipgloss.Color(appTheme.Function))
	case highlighter.TokenString:
		return style.Foreground(lipgloss.Color(appTheme.String))
	case highlighter.TokenNumber:
		return style.Foreground(lipgloss.Color(appTheme.Number))
	case highlighter.TokenComment:
		return style.Foreground(lipgloss.Color(appTheme.Comment)).Italic(true)
	case highlighter.TokenProperty:
		return style.Foreground(lipgloss.Color(appTheme.Property))
	case highlighter.TokenPreproc:
		return style.Foreground(lipgloss.Color(appTheme.Preproc))
	default:
		return style
	}
}
