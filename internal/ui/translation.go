package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/session"
)

// updateTranslation navigates the word-by-word gematria breakdown. Enter
// opens the annotation dialog for the word under the cursor.
func (m Model) updateTranslation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	words := m.sess.Catalog.TranslationVerse().Gematria
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
		return m, nil
	case tea.KeyLeft:
		m.moveCursor(-1, len(words))
	case tea.KeyRight:
		m.moveCursor(1, len(words))
	case tea.KeyEnter:
		if m.cursor < len(words) {
			w := words[m.cursor]
			m.sess.Drafts.WordTarget = &w
			m.sess.OpenOverlay(session.OverlayWordTools)
			return m, m.wordInput.Focus()
		}
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "h", "k":
			m.moveCursor(-1, len(words))
		case "l", "j":
			m.moveCursor(1, len(words))
		case "m":
			m.sess.OpenOverlay(session.OverlayMenu)
		case "q":
			m.sess.Back()
			m.resetCursor()
		}
	}
	return m, nil
}

// viewTranslation shows the Hebrew line, its transliteration and the
// per-word numerics, with the cursor word expanded.
func (m Model) viewTranslation() string {
	v := m.sess.Catalog.TranslationVerse()
	var b strings.Builder
	b.WriteString("\n  " + m.styles.Header.Render("Traducción y Gematría") + "\n")
	b.WriteString("  " + m.styles.Dim.Render(v.Reference) + "\n\n")

	b.WriteString("  " + m.styles.Accent.Render(v.HebrewText) + "\n")
	b.WriteString("  " + m.styles.Dim.Render(v.Transliteration) + "\n")
	b.WriteString("  " + m.styles.Text.Render(v.Text) + "\n\n")

	var row []string
	for i, w := range v.Gematria {
		label := fmt.Sprintf("%s %d", w.Spanish, w.Value)
		if i == m.cursor {
			row = append(row, m.styles.Highlight.Render(" "+label+" "))
		} else {
			row = append(row, m.styles.Card.Render(label))
		}
	}
	b.WriteString("  " + strings.Join(row, " ") + "\n\n")

	if m.cursor < len(v.Gematria) {
		w := v.Gematria[m.cursor]
		b.WriteString("  " + m.styles.Header.Render(w.Spanish) + "  " + m.styles.Accent.Render(w.Hebrew) + "\n")
		b.WriteString("  " + m.styles.Dim.Render(w.Transliteration) + "\n")
		b.WriteString("  " + m.styles.Text.Render(w.Meaning) + "\n")
		for _, lv := range w.LetterValues {
			b.WriteString("    " + m.styles.Text.Render(lv.Letter) + " " + m.styles.Dim.Render(fmt.Sprintf("= %d", lv.Value)) + "\n")
		}
		b.WriteString("  " + m.styles.Accent.Render(fmt.Sprintf("Total: %d", w.Value)) + "\n")
	}

	b.WriteString(m.styles.Help.Render("  h/l: palabra • enter: anotar • esc: volver"))
	return b.String()
}
