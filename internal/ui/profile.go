package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/session"
)

// profileTabs orders the annotation collections across the profile page.
var profileTabs = []string{"Apuntes", "Ilustraciones", "Traducciones"}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyTab, tea.KeyRight:
		m.cursor = (m.cursor + 1) % len(profileTabs)
	case tea.KeyLeft:
		m.cursor = (m.cursor - 1 + len(profileTabs)) % len(profileTabs)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "s":
			m.sess.Go(session.ViewSaved)
			m.resetCursor()
		case "m":
			m.sess.OpenOverlay(session.OverlayMenu)
		case "q":
			m.sess.Back()
			m.resetCursor()
		}
	}
	return m, nil
}

func (m Model) viewProfile() string {
	u := m.sess.Auth.User
	if u == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + m.styles.Header.Render(u.Emoji+" "+u.BiblicalName) + "  " + m.styles.Dim.Render(u.Name) + "\n")
	b.WriteString("  " + m.styles.Dim.Render("Miembro desde "+u.JoinDate) + "\n\n")
	b.WriteString("  " + m.styles.Text.Render(u.Bio) + "\n\n")
	b.WriteString("  " + m.styles.Accent.Render(fmt.Sprintf("%d notas", u.NotesCount)) +
		m.styles.Dim.Render("  ·  ") +
		m.styles.Accent.Render(fmt.Sprintf("%d participaciones", u.ParticipationsCount)) + "\n\n")

	var tabs []string
	for i, t := range profileTabs {
		if i == m.cursor {
			tabs = append(tabs, m.styles.Highlight.Render(" "+t+" "))
		} else {
			tabs = append(tabs, m.styles.Dim.Render(t))
		}
	}
	b.WriteString("  " + strings.Join(tabs, "  ") + "\n\n")

	var entries []string
	switch m.cursor {
	case 0:
		entries = u.Apuntes
	case 1:
		entries = u.Ilustraciones
	case 2:
		entries = u.Traducciones
	}
	if len(entries) == 0 {
		b.WriteString("  " + m.styles.Dim.Render("Sin entradas todavía.") + "\n")
	}
	for _, e := range entries {
		for _, line := range wrapText(e, min(76, m.width-6)) {
			b.WriteString("  " + m.styles.Text.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("  tab: colección • s: notas guardadas • esc: volver"))
	return b.String()
}

// updateSaved drives the notebook page: list, create, edit, delete. While
// either editor field has focus it owns the keys.
func (m Model) updateSaved(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	u := m.sess.Auth.User
	if u == nil {
		m.sess.Back()
		return m, nil
	}

	if m.noteTitle.Focused() || m.noteBody.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.noteTitle.Reset()
			m.noteBody.Reset()
			m.noteTitle.Blur()
			m.noteBody.Blur()
			m.sess.Drafts.EditingNoteID = ""
			return m, nil
		case tea.KeyTab:
			if m.noteTitle.Focused() {
				m.noteTitle.Blur()
				return m, m.noteBody.Focus()
			}
			m.noteBody.Blur()
			return m, m.noteTitle.Focus()
		case tea.KeyCtrlS:
			if m.sess.Drafts.EditingNoteID != "" {
				m.sess.UpdateNote(m.noteTitle.Value(), m.noteBody.Value())
			} else {
				m.sess.SaveNote(m.noteTitle.Value(), m.noteBody.Value())
			}
			m.noteTitle.Reset()
			m.noteBody.Reset()
			m.noteTitle.Blur()
			m.noteBody.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		if m.noteTitle.Focused() {
			m.noteTitle, cmd = m.noteTitle.Update(msg)
		} else {
			m.noteBody, cmd = m.noteBody.Update(msg)
		}
		return m, cmd
	}

	notes := u.SavedNotes
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyUp:
		m.moveCursor(-1, len(notes))
	case tea.KeyDown:
		m.moveCursor(1, len(notes))
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, len(notes))
		case "j":
			m.moveCursor(1, len(notes))
		case "n":
			m.sess.Drafts.EditingNoteID = ""
			m.noteTitle.Reset()
			m.noteBody.Reset()
			return m, m.noteTitle.Focus()
		case "e":
			if m.cursor < len(notes) {
				n := notes[m.cursor]
				m.sess.EditNote(n)
				m.noteTitle.SetValue(n.Title)
				m.noteBody.SetValue(n.Content)
				return m, m.noteTitle.Focus()
			}
		case "d":
			if m.cursor < len(notes) {
				m.sess.DeleteNote(notes[m.cursor].ID)
				m.moveCursor(0, len(notes)-1)
			}
		case "m":
			m.sess.OpenOverlay(session.OverlayMenu)
		case "q":
			m.sess.Back()
			m.resetCursor()
		}
	}
	return m, nil
}

func (m Model) viewSaved() string {
	u := m.sess.Auth.User
	if u == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + m.styles.Header.Render("📓 Notas Guardadas") + "\n\n")

	editing := m.noteTitle.Focused() || m.noteBody.Focused()
	if editing {
		label := "Nueva nota"
		if m.sess.Drafts.EditingNoteID != "" {
			label = "Editar nota"
		}
		b.WriteString("  " + m.styles.Accent.Render(label) + "\n\n")
		b.WriteString("  " + m.noteTitle.View() + "\n\n")
		b.WriteString(m.noteBody.View() + "\n")
		b.WriteString(m.styles.Help.Render("  tab: cambiar campo • ctrl+s: guardar • esc: cancelar"))
		return b.String()
	}

	if len(u.SavedNotes) == 0 {
		b.WriteString("  " + m.styles.Dim.Render("Tu cuaderno está vacío. Pulsa n para escribir la primera nota.") + "\n")
	}
	for i, n := range u.SavedNotes {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		b.WriteString(cursor + m.styles.Accent.Render(n.Title) + "  " + m.styles.Dim.Render(n.Date) + "\n")
		if n.VerseReference != "" {
			b.WriteString("    " + m.styles.Dim.Render("📖 "+n.VerseReference) + "\n")
		}
		for _, line := range wrapText(n.Content, min(72, m.width-8)) {
			b.WriteString("    " + m.styles.Text.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("  j/k: navegar • n: nueva • e: editar • d: eliminar • esc: volver"))
	return b.String()
}
