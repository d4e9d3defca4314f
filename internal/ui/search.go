package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/session"
)

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchInput.Blur()
		m.sess.Back()
		return m, nil
	case tea.KeyEnter:
		m.sess.Search.Query = m.searchInput.Value()
		m.sess.SubmitSearch()
		if m.sess.View == session.ViewResults {
			m.searchInput.Blur()
			m.resetCursor()
		}
		return m, nil
	case tea.KeyCtrlT:
		m.sess.ToggleFilter(session.FilterTodo)
		return m, nil
	case tea.KeyCtrlA:
		m.sess.ToggleFilter(session.FilterOld)
		m.resetCursor()
		return m, nil
	case tea.KeyCtrlN:
		m.sess.ToggleFilter(session.FilterNew)
		m.resetCursor()
		return m, nil
	case tea.KeyCtrlL:
		m.sess.ToggleFilter(session.FilterLibro)
		m.resetCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.centerText(m.styles.Header.Render("Buscar")))
	b.WriteString("\n\n  " + m.searchInput.View() + "\n\n")
	b.WriteString("  " + m.styles.Dim.Render("Filtros: ") + m.renderFilters() + "\n")
	b.WriteString(m.styles.Help.Render("  enter: buscar • ctrl+t/a/n/l: TODO/AT/NT/LIBRO • esc: volver"))
	return b.String()
}

func (m Model) renderFilters() string {
	active := m.sess.ActiveFilters()
	all := []string{session.FilterTodo, session.FilterOld, session.FilterNew, session.FilterLibro}
	parts := make([]string, 0, len(all))
	for _, f := range all {
		on := false
		for _, a := range active {
			if a == f {
				on = true
				break
			}
		}
		if on {
			parts = append(parts, m.styles.Accent.Render("["+f+"]"))
		} else {
			parts = append(parts, m.styles.Dim.Render(" "+f+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.sess.Search.Results
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyUp:
		m.moveCursor(-1, len(results))
	case tea.KeyDown:
		m.moveCursor(1, len(results))
	case tea.KeyEnter:
		if m.cursor < len(results) {
			m.sess.OpenVerse(results[m.cursor].Verse)
			m.resetCursor()
		}
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, len(results))
		case "j":
			m.moveCursor(1, len(results))
		case "/":
			m.sess.Go(session.ViewSearch)
			m.searchInput.Focus()
			m.resetCursor()
		}
	}
	return m, nil
}

func (m Model) viewResults() string {
	var b strings.Builder
	results := m.sess.Search.Results
	header := fmt.Sprintf("Resultados: %s (%d)", m.sess.Search.Query, len(results))
	b.WriteString(m.centerText(m.styles.Header.Render(header)))
	b.WriteString("\n  " + m.styles.Dim.Render("Filtros: ") + m.renderFilters() + "\n\n")

	for i, r := range results {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		b.WriteString(cursor + m.styles.Accent.Render(r.Verse.Reference) + "\n")
		b.WriteString("    " + r.Highlighted + "\n\n")
	}

	b.WriteString(m.styles.Help.Render("  j/k: navegar • enter: abrir • /: nueva búsqueda • esc: volver"))
	return b.String()
}

func (m Model) updateBooks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	books := m.sess.Catalog.Books()
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyUp:
		m.moveCursor(-1, len(books))
	case tea.KeyDown:
		m.moveCursor(1, len(books))
	case tea.KeyEnter:
		if m.cursor < len(books) {
			m.sess.SelectBook(books[m.cursor])
			m.resetCursor()
		}
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, len(books))
		case "j":
			m.moveCursor(1, len(books))
		case "c":
			if m.cursor < len(books) {
				m.sess.OpenBook(books[m.cursor])
				m.resetCursor()
			}
		}
	}
	return m, nil
}

func (m Model) viewBooks() string {
	var b strings.Builder
	b.WriteString(m.centerText(m.styles.Header.Render("Libros")))
	b.WriteString("\n\n")
	for i, book := range m.sess.Catalog.Books() {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		tag := m.styles.Dim.Render(fmt.Sprintf("[%s] %d capítulos", book.Testament, book.Chapters))
		b.WriteString(cursor + m.styles.Text.Render(book.Name) + " " + tag + "\n")
	}
	b.WriteString(m.styles.Help.Render("  j/k: navegar • enter: ver resultados • c: capítulos • esc: volver"))
	return b.String()
}

func (m Model) updateChapters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	book := m.sess.Selection.Book
	if book == nil {
		m.sess.Back()
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyUp:
		m.moveCursor(-1, book.Chapters)
	case tea.KeyDown:
		m.moveCursor(1, book.Chapters)
	case tea.KeyEnter:
		m.sess.OpenChapter(m.cursor + 1)
		m.resetCursor()
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, book.Chapters)
		case "j":
			m.moveCursor(1, book.Chapters)
		}
	}
	return m, nil
}

func (m Model) viewChapters() string {
	book := m.sess.Selection.Book
	if book == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.centerText(m.styles.Header.Render(book.Name + " — Capítulos")))
	b.WriteString("\n\n")

	perRow := max(1, (m.width-4)/6)
	for i := 0; i < book.Chapters; i++ {
		label := fmt.Sprintf("%3d", i+1)
		if i == m.cursor {
			label = m.styles.Cursor.Render(label)
		} else {
			label = m.styles.Text.Render(label)
		}
		b.WriteString(" " + label)
		if (i+1)%perRow == 0 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  j/k: navegar • enter: abrir capítulo • esc: volver"))
	return b.String()
}

func (m Model) updateVerses(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	verses := m.sess.Selection.Verses
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Back()
		m.resetCursor()
	case tea.KeyUp:
		m.moveCursor(-1, len(verses))
	case tea.KeyDown:
		m.moveCursor(1, len(verses))
	case tea.KeyEnter:
		if m.cursor < len(verses) {
			m.sess.OpenVerse(verses[m.cursor])
			m.resetCursor()
		}
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.moveCursor(-1, len(verses))
		case "j":
			m.moveCursor(1, len(verses))
		}
	}
	return m, nil
}

func (m Model) viewVerses() string {
	var b strings.Builder
	title := "Versículos"
	if book := m.sess.Selection.Book; book != nil {
		title = fmt.Sprintf("%s %d", book.Name, m.sess.Selection.Chapter)
	}
	b.WriteString(m.centerText(m.styles.Header.Render(title)))
	b.WriteString("\n\n")
	for i, v := range m.sess.Selection.Verses {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		num := m.styles.Accent.Render(fmt.Sprintf("%3d", v.Number))
		b.WriteString(cursor + num + " " + m.styles.Text.Render(truncate(v.Text, max(20, m.width-10))) + "\n")
	}
	b.WriteString(m.styles.Help.Render("  j/k: navegar • enter: abrir • esc: volver"))
	return b.String()
}
