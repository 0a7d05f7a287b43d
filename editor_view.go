package main

import (
	"fmt"
	"strings"

	"quill/internal/highlighter"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.renderHeader()
	_, contentH, previewW := m.layout()

	main := m.editor.View()
	if m.previewOn && previewW > 0 {
		preview := m.renderPreview(previewW, contentH)
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, " ", preview)
	}

	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, main, footer)
}

func (m model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Header)).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Muted))
	dirtyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Accent))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Error))

	name := m.cfg.Path
	if name == "" {
		name = "[scratch]"
	}

	line1 := titleStyle.Render("quill ") + metaStyle.Render(truncateText(name, max(0, m.width-8)))
	if m.dirty {
		line1 += dirtyStyle.Render(" *")
	}

	meta := fmt.Sprintf("%s | %s | %d lines", m.langID, appTheme.Name, len(m.lines))
	if m.status != "" {
		meta += " | " + m.status
	}
	line2 := metaStyle.Render(truncateText(meta, m.width))
	if m.errMsg != "" {
		line2 += "  " + errStyle.Render(truncateText(m.errMsg, m.width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}

func (m model) renderFooter() string {
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Muted))
	text := "ctrl+s save  ctrl+p preview  ctrl+q quit"
	return footerStyle.Render(truncateText(text, m.width))
}

func (m model) renderPreview(width int, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Header)).Bold(true)
	numStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Dim))

	lines := make([]string, 0, height)
	lines = append(lines, headerStyle.Render(truncateText("preview  "+string(m.langID), width)))

	avail := height - 1
	maxCode := max(0, width-7)
	cursorLine := m.editor.Line()

	start := clamp(cursorLine-avail/2, 0, max(0, len(m.lines)-avail))
	for i := start; i < len(m.lines) && len(lines) <= avail; i++ {
		prefix := numStyle.Render(fmt.Sprintf("%5d ", i+1))

		display := truncateText(m.lines[i], maxCode)
		spans := m.previewSpans(i, display)
		selected := i == cursorLine
		code := renderTokenLine(display, spans, selected)
		lines = append(lines, prefix+padRightANSI(code, maxCode))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// previewSpans projects a line's buffer spans onto its display form
// (tabs expanded, possibly truncated with an ellipsis). Projection
// failure falls back to plain text rather than misaligned colors.
func (m model) previewSpans(lineIdx int, display string) []highlighter.Span {
	if lineIdx < 0 || lineIdx >= len(m.lineSpans) {
		return nil
	}
	projected, ok := highlighter.ProjectToDisplay(m.lineSpans[lineIdx], m.lines[lineIdx], display)
	if !ok {
		return []highlighter.Span{{Start: 0, End: utf8RuneCount(display), Cat: highlighter.TokenPlain}}
	}
	return projected
}

func (m model) layout() (editorWidth int, contentHeight int, previewWidth int) {
	headerHeight := 2
	footerHeight := 1
	contentHeight = max(m.height-headerHeight-footerHeight, 1)

	if !m.previewOn || m.width < 80 {
		return m.width, contentHeight, 0
	}

	previewWidth = max(30, m.width/2)
	editorWidth = m.width - previewWidth - 1
	if editorWidth < 20 {
		return m.width, contentHeight, 0
	}
	return editorWidth, contentHeight, previewWidth
}
