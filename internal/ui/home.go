package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/session"
)

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	featured := m.sess.Catalog.Featured()
	switch msg.Type {
	case tea.KeyUp:
		m.moveCursor(-1, len(featured))
	case tea.KeyDown:
		m.moveCursor(1, len(featured))
	case tea.KeyEnter:
		if m.cursor < len(featured) {
			m.sess.OpenVerse(featured[m.cursor])
			m.resetCursor()
		}
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, len(featured))
		case "j":
			m.moveCursor(1, len(featured))
		case "/":
			m.sess.Go(session.ViewSearch)
			m.searchInput.Focus()
			m.resetCursor()
			return m, nil
		case "p":
			m.sess.Go(session.ViewProfile)
			m.resetCursor()
		case "s":
			m.sess.Go(session.ViewSaved)
			m.resetCursor()
		case "t":
			m.sess.Go(session.ViewTranslation)
			m.resetCursor()
		case "b":
			m.sess.OpenOverlay(session.OverlayNotebook)
			return m, m.noteTitle.Focus()
		case "m":
			m.sess.OpenOverlay(session.OverlayMenu)
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.centerText(m.styles.Header.Render("Apocalipsis ✝ — Versículos destacados")))
	b.WriteString("\n\n")

	for i, v := range m.sess.Catalog.Featured() {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		ref := m.styles.Accent.Render(v.Reference)
		meta := m.styles.Dim.Render(fmt.Sprintf("%d participaciones • %d comentarios", v.Participations, len(v.Comments)))
		text := m.styles.Text.Render(truncate(v.Text, max(20, m.width-8)))
		b.WriteString(cursor + ref + "  " + meta + "\n")
		b.WriteString("    " + text + "\n\n")
	}

	notebook := "📓 cuaderno"
	if m.pulse {
		notebook = m.styles.Accent.Render(notebook)
	} else {
		notebook = m.styles.Dim.Render(notebook)
	}
	b.WriteString(m.centerText(notebook))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k: navegar • enter: abrir • /: buscar • b: cuaderno • t: traducción • p: perfil • s: notas • m: menú • q: salir"))
	return b.String()
}

func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
