package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/session"
)

func (m Model) updateVerse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.sess.Selection.SelectedVerse
	if v == nil {
		m.sess.Back()
		return m, nil
	}

	// While the comment field has focus it owns every rune.
	if m.commentInput.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.commentInput.Blur()
			return m, nil
		case tea.KeyEnter:
			m.sess.AddComment(m.commentInput.Value())
			m.commentInput.Reset()
			m.commentInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	words := strings.Fields(v.Text)
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyUp:
		m.moveCursor(-1, len(v.Comments))
	case tea.KeyDown:
		m.moveCursor(1, len(v.Comments))
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, len(v.Comments))
		case "j":
			m.moveCursor(1, len(v.Comments))
		case "f":
			m.sess.ToggleFavorite()
		case "c":
			m.commentInput.Focus()
			return m, nil
		case "e":
			if m.cursor < len(v.Comments) {
				m.sess.ToggleCommentExpansion(v.Comments[m.cursor].ID)
			}
		case "r":
			// reply with a tagged cross-reference to the comment under the cursor
			if m.cursor < len(v.Comments) {
				m.tagCommentID = v.Comments[m.cursor].ID
				m.overlayCursor = 0
				m.sess.StartTag()
			}
		case "w":
			// cycle word selection and capture it for highlighting
			if len(words) > 0 {
				m.verseWord = (m.verseWord + 1) % len(words)
				m.sess.CaptureSelection(strings.Trim(words[m.verseWord], ".,;:!?\"'()"))
			}
		case "H":
			m.sess.HighlightSelectedText()
			m.verseWord = -1
		case "F":
			m.sess.OpenOverlay(session.OverlayTextFormat)
		case "n":
			m.verseNotes.SetValue(v.UserNotes)
			m.verseNotes.Focus()
			m.sess.OpenOverlay(session.OverlayNotes)
		case "g":
			m.proverbInput.Focus()
			m.sess.OpenOverlay(session.OverlayProverbio)
		case "y":
			m.sess.CopyVerse()
		case "S":
			m.sess.OpenOverlay(session.OverlayShare)
		case "v":
			m.sess.Go(session.ViewBibleReading)
			m.resetCursor()
		case "t":
			m.sess.Go(session.ViewTranslation)
			m.resetCursor()
		case "m":
			m.sess.OpenOverlay(session.OverlayMenu)
		}
	}
	return m, nil
}

func (m Model) viewVerse() string {
	v := m.sess.Selection.SelectedVerse
	if v == nil {
		return ""
	}
	var b strings.Builder

	fav := "♡"
	if v.IsFavorite {
		fav = m.styles.Error.Render("♥")
	}
	b.WriteString(m.centerText(m.styles.Header.Render(v.Reference) + " " + fav))
	b.WriteString("\n\n")

	text := v.Text
	if v.HighlightedText != "" {
		text = v.HighlightedText
	}
	textStyle := m.styles.Text
	if v.Format.Bold {
		textStyle = textStyle.Bold(true)
	}
	if v.Format.Italic {
		textStyle = textStyle.Italic(true)
	}
	for _, line := range wrapText(text, max(20, m.width-6)) {
		b.WriteString("  " + textStyle.Render(line) + "\n")
	}

	if m.verseWord >= 0 {
		b.WriteString("\n  " + m.styles.Dim.Render("Selección: ") + m.styles.Highlight.Render(m.sess.Drafts.SelectedText) + "\n")
	}
	if v.UserNotes != "" {
		b.WriteString("\n  " + m.styles.Dim.Render("Apuntes: ") + m.styles.Text.Render(v.UserNotes) + "\n")
	}

	b.WriteString("\n  " + m.styles.Dim.Render(fmt.Sprintf("%d participaciones", v.Participations)) + "\n")

	if len(v.Proverbios) > 0 {
		b.WriteString("\n  " + m.styles.Header.Render("Proverbios") + "\n")
		for _, p := range v.Proverbios {
			b.WriteString("    " + m.styles.Accent.Render("“"+p.Content+"”") +
				m.styles.Dim.Render(fmt.Sprintf("  — %s, %s", p.User, p.Timestamp)) + "\n")
		}
	}

	b.WriteString("\n  " + m.styles.Header.Render(fmt.Sprintf("Comentarios (%d)", len(v.Comments))) + "\n")
	for i, c := range v.Comments {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		b.WriteString(cursor + m.styles.Accent.Render(c.User) + " " + m.styles.Dim.Render(c.Timestamp) + "\n")
		b.WriteString("    " + m.styles.Text.Render(c.Content) + "\n")
		if m.sess.CommentExpanded(c.ID) {
			for _, sc := range c.SubComments {
				b.WriteString("      " + m.styles.Accent.Render(sc.User) + " " + m.styles.Dim.Render(sc.Timestamp) + "\n")
				b.WriteString("        " + m.styles.Text.Render(sc.Content) + "\n")
				if sc.Tagged != nil {
					b.WriteString("        " + m.styles.Dim.Render("→ "+sc.Tagged.Reference) + "\n")
				}
			}
		} else if n := len(c.SubComments); n > 0 {
			b.WriteString("      " + m.styles.Dim.Render(fmt.Sprintf("(%d respuestas — e para expandir)", n)) + "\n")
		}
	}

	b.WriteString("\n  " + m.commentInput.View() + "\n")
	b.WriteString(m.styles.Help.Render("  c: comentar • r: etiquetar • f: favorito • w: seleccionar palabra • H: resaltar • F: formato • n: apuntes • g: proverbio • y: copiar • S: compartir • v: leer biblia • t: traducción • esc: volver"))
	return b.String()
}

// wrapText breaks text into lines no wider than maxWidth, on word
// boundaries.
func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
