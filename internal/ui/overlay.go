package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/account"
	"apocalipsis/internal/session"
	"apocalipsis/internal/share"
)

// proverbBackgrounds are the gradient swatches of the proverb composer,
// reduced to their leading color.
var proverbBackgrounds = []string{"#667eea", "#f093fb", "#4facfe", "#43e97b", "#fa709a"}

// tagVerseLimit bounds the verse picker of the tag wizard; the picker is
// numeric, not backed by real chapter contents.
const tagVerseLimit = 30

// updateOverlay handles input while a dialog is open. Escape always
// dismisses, except inside the tag wizard where it cancels the draft.
func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.sess.Overlay {
	case session.OverlayMenu:
		return m.updateMenu(msg)
	case session.OverlayNotebook:
		return m.updateNotebook(msg)
	case session.OverlayNotes:
		return m.updateVerseNotes(msg)
	case session.OverlayTextFormat:
		return m.updateTextFormat(msg)
	case session.OverlayProverbio:
		return m.updateProverbio(msg)
	case session.OverlayShare:
		return m.updateShare(msg)
	case session.OverlayWordTools:
		return m.updateWordTools(msg)
	case session.OverlayTag:
		return m.updateTag(msg)
	}
	return m, nil
}

// viewOverlay renders the active dialog inside the double-bordered frame.
func (m Model) viewOverlay() string {
	var body string
	switch m.sess.Overlay {
	case session.OverlayMenu:
		body = m.viewMenu()
	case session.OverlayNotebook:
		body = m.viewNotebook()
	case session.OverlayNotes:
		body = m.viewVerseNotes()
	case session.OverlayTextFormat:
		body = m.viewTextFormat()
	case session.OverlayProverbio:
		body = m.viewProverbio()
	case session.OverlayShare:
		body = m.viewShare()
	case session.OverlayWordTools:
		body = m.viewWordTools()
	case session.OverlayTag:
		body = m.viewTag()
	}
	return m.styles.Overlay.Render(body)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "m":
		m.sess.CloseOverlay()
	case "i":
		m.sess.Home()
		m.resetCursor()
	case "p":
		m.sess.CloseOverlay()
		m.sess.Go(session.ViewProfile)
		m.resetCursor()
	case "g":
		m.sess.CloseOverlay()
		m.sess.Go(session.ViewSaved)
		m.resetCursor()
	case "t":
		m.sess.CloseOverlay()
		m.sess.Go(session.ViewTranslation)
		m.resetCursor()
	case "l":
		m.sess.CloseOverlay()
		m.sess.Go(session.ViewBibleReading)
		m.resetCursor()
	case "s":
		m.sess.SignOut()
		m.resetCursor()
	}
	return m, nil
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Menú") + "\n\n")
	if u := m.sess.Auth.User; u != nil {
		b.WriteString(m.styles.Accent.Render(u.Emoji+" "+u.BiblicalName) + "\n\n")
	}
	b.WriteString(m.styles.Text.Render("i  Inicio") + "\n")
	b.WriteString(m.styles.Text.Render("p  Mi perfil") + "\n")
	b.WriteString(m.styles.Text.Render("g  Notas guardadas") + "\n")
	b.WriteString(m.styles.Text.Render("t  Traducción") + "\n")
	b.WriteString(m.styles.Text.Render("l  Leer la Biblia") + "\n")
	b.WriteString(m.styles.Error.Render("s  Cerrar sesión") + "\n")
	b.WriteString(m.styles.Help.Render("esc: cerrar"))
	return b.String()
}

// updateNotebook drives the quick-note composer. Tab moves between the
// title and the body; ctrl+s commits through the session.
func (m Model) updateNotebook(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.noteTitle.Reset()
		m.noteBody.Reset()
		m.noteTitle.Blur()
		m.noteBody.Blur()
		m.sess.CloseOverlay()
		return m, nil
	case tea.KeyTab:
		if m.noteTitle.Focused() {
			m.noteTitle.Blur()
			return m, m.noteBody.Focus()
		}
		m.noteBody.Blur()
		return m, m.noteTitle.Focus()
	case tea.KeyCtrlS:
		m.sess.SaveNote(m.noteTitle.Value(), m.noteBody.Value())
		m.noteTitle.Reset()
		m.noteBody.Reset()
		m.noteTitle.Blur()
		m.noteBody.Blur()
		m.sess.CloseOverlay()
		m.sess.Notice = "Nota guardada en tu cuaderno"
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

func (m Model) viewNotebook() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("📓 Cuaderno") + "\n\n")
	b.WriteString(m.noteTitle.View() + "\n\n")
	b.WriteString(m.noteBody.View() + "\n")
	b.WriteString(m.styles.Help.Render("tab: cambiar campo • ctrl+s: guardar • esc: cancelar"))
	return b.String()
}

func (m Model) updateVerseNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.verseNotes.Blur()
		m.sess.CloseOverlay()
		return m, nil
	case tea.KeyCtrlS:
		m.sess.SaveVerseNotes(m.verseNotes.Value())
		m.verseNotes.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.verseNotes, cmd = m.verseNotes.Update(msg)
	return m, cmd
}

func (m Model) viewVerseNotes() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Mis Apuntes") + "\n")
	if v := m.sess.Selection.SelectedVerse; v != nil {
		b.WriteString(m.styles.Dim.Render(v.Reference) + "\n")
	}
	b.WriteString("\n" + m.verseNotes.View() + "\n")
	b.WriteString(m.styles.Help.Render("ctrl+s: guardar • esc: cancelar"))
	return b.String()
}

// updateTextFormat adjusts size and emphasis. Every keypress replaces the
// whole format value on the verse.
func (m Model) updateTextFormat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.sess.Selection.SelectedVerse
	if v == nil {
		m.sess.CloseOverlay()
		return m, nil
	}
	f := v.Format
	switch msg.String() {
	case "esc", "q":
		m.sess.CloseOverlay()
		return m, nil
	case "+", "=":
		if f.FontSize < 32 {
			f.FontSize++
		}
	case "-":
		if f.FontSize > 8 {
			f.FontSize--
		}
	case "b":
		f.Bold = !f.Bold
	case "i":
		f.Italic = !f.Italic
	default:
		return m, nil
	}
	m.sess.UpdateTextFormat(f.FontSize, f.Bold, f.Italic)
	return m, nil
}

func (m Model) viewTextFormat() string {
	v := m.sess.Selection.SelectedVerse
	if v == nil {
		return ""
	}
	mark := func(on bool) string {
		if on {
			return m.styles.Accent.Render("●")
		}
		return m.styles.Dim.Render("○")
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Formato de Texto") + "\n\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("Tamaño: %d", v.Format.FontSize)) + m.styles.Dim.Render("  (+ / -)") + "\n")
	b.WriteString(mark(v.Format.Bold) + m.styles.Text.Render(" Negrita") + m.styles.Dim.Render("  (b)") + "\n")
	b.WriteString(mark(v.Format.Italic) + m.styles.Text.Render(" Cursiva") + m.styles.Dim.Render("  (i)") + "\n")
	b.WriteString(m.styles.Help.Render("esc: cerrar"))
	return b.String()
}

// updateProverbio drives the proverb composer. The text field owns the
// runes; ctrl+b cycles the background swatch, ctrl+s composes.
func (m Model) updateProverbio(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.proverbInput.Reset()
		m.proverbInput.Blur()
		m.sess.CloseOverlay()
		return m, nil
	case tea.KeyCtrlB:
		m.sess.Drafts.Proverbio.Background = nextSwatch(m.sess.Drafts.Proverbio.Background)
		return m, nil
	case tea.KeyCtrlS, tea.KeyEnter:
		m.sess.Drafts.Proverbio.Content = m.proverbInput.Value()
		if _, ok := m.sess.ComposeProverbio(); ok {
			m.proverbInput.Reset()
			m.proverbInput.Blur()
			m.sess.Notice = "Proverbio creado"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.proverbInput, cmd = m.proverbInput.Update(msg)
	return m, cmd
}

func nextSwatch(current string) string {
	for i, c := range proverbBackgrounds {
		if c == current {
			return proverbBackgrounds[(i+1)%len(proverbBackgrounds)]
		}
	}
	return proverbBackgrounds[0]
}

func (m Model) viewProverbio() string {
	d := m.sess.Drafts.Proverbio
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Crear Proverbio") + "\n\n")
	b.WriteString(m.proverbInput.View() + "\n\n")
	b.WriteString(m.styles.Text.Render("Fondo: ") + m.styles.Accent.Render(d.Background) + m.styles.Dim.Render("  (ctrl+b)") + "\n")
	b.WriteString(m.styles.Help.Render("enter: crear • esc: cancelar"))
	return b.String()
}

func (m Model) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var platform share.Platform
	switch msg.String() {
	case "esc", "q":
		m.sess.CloseOverlay()
		return m, nil
	case "y":
		m.sess.CopyVerse()
		m.sess.CloseOverlay()
		return m, nil
	case "w":
		platform = share.WhatsApp
	case "f":
		platform = share.Facebook
	case "t":
		platform = share.Twitter
	case "i":
		platform = share.Instagram
	default:
		return m, nil
	}
	if url, ok := m.sess.ShareTo(platform); ok {
		m.lastShareURL = url
		m.sess.Notice = "Enlace listo: " + url
	}
	return m, nil
}

func (m Model) viewShare() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Compartir Versículo") + "\n")
	if v := m.sess.Selection.SelectedVerse; v != nil {
		b.WriteString(m.styles.Dim.Render(v.Reference) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render("w  WhatsApp") + "\n")
	b.WriteString(m.styles.Text.Render("f  Facebook") + "\n")
	b.WriteString(m.styles.Text.Render("t  Twitter") + "\n")
	b.WriteString(m.styles.Text.Render("i  Instagram") + m.styles.Dim.Render("  (copia al portapapeles)") + "\n")
	b.WriteString(m.styles.Text.Render("y  Copiar texto") + "\n")
	if m.lastShareURL != "" {
		b.WriteString("\n" + m.styles.Dim.Render("Último enlace: "+m.lastShareURL) + "\n")
	}
	b.WriteString(m.styles.Help.Render("esc: cerrar"))
	return b.String()
}

// updateWordTools drives the per-word annotation dialog from the
// translation view. Tab cycles the target collection.
func (m Model) updateWordTools(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.wordInput.Reset()
		m.wordInput.Blur()
		m.sess.Drafts.WordTarget = nil
		m.sess.CloseOverlay()
		return m, nil
	case tea.KeyTab:
		m.sess.Drafts.WordCategory = nextCategory(m.sess.Drafts.WordCategory)
		return m, nil
	case tea.KeyEnter:
		m.sess.AddWordComment(m.wordInput.Value())
		m.wordInput.Reset()
		m.wordInput.Blur()
		m.sess.CloseOverlay()
		return m, nil
	}
	var cmd tea.Cmd
	m.wordInput, cmd = m.wordInput.Update(msg)
	return m, cmd
}

func nextCategory(c account.AnnotationCategory) account.AnnotationCategory {
	switch c {
	case account.CategoryApuntes:
		return account.CategoryIlustra
	case account.CategoryIlustra:
		return account.CategoryTraduce
	default:
		return account.CategoryApuntes
	}
}

func categoryLabel(c account.AnnotationCategory) string {
	switch c {
	case account.CategoryIlustra:
		return "Ilustraciones"
	case account.CategoryTraduce:
		return "Traducciones"
	default:
		return "Apuntes"
	}
}

func (m Model) viewWordTools() string {
	w := m.sess.Drafts.WordTarget
	if w == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(w.Spanish+" · "+w.Hebrew) + "\n")
	b.WriteString(m.styles.Dim.Render(w.Transliteration) + "  " + m.styles.Accent.Render(fmt.Sprintf("Gematría: %d", w.Value)) + "\n")
	b.WriteString(m.styles.Text.Render(w.Meaning) + "\n")
	if len(w.LetterValues) > 0 {
		parts := make([]string, len(w.LetterValues))
		for i, lv := range w.LetterValues {
			parts[i] = fmt.Sprintf("%s=%d", lv.Letter, lv.Value)
		}
		b.WriteString(m.styles.Dim.Render(strings.Join(parts, "  ")) + "\n")
	}
	b.WriteString("\n" + m.styles.Text.Render("Guardar en: ") + m.styles.Accent.Render(categoryLabel(m.sess.Drafts.WordCategory)) + m.styles.Dim.Render("  (tab)") + "\n")
	b.WriteString(m.wordInput.View() + "\n")
	b.WriteString(m.styles.Help.Render("enter: guardar • tab: categoría • esc: cancelar"))
	return b.String()
}

// updateTag walks the cross-reference wizard: book, chapter, verse, then
// the reply text.
func (m Model) updateTag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.tagInput.Reset()
		m.tagInput.Blur()
		m.sess.CancelTag()
		return m, nil
	}
	switch m.sess.Tag.Step {
	case session.TagStepBook:
		books := m.sess.Catalog.Books()
		switch msg.String() {
		case "k", "up":
			m.overlayCursor = clampCursor(m.overlayCursor-1, len(books))
		case "j", "down":
			m.overlayCursor = clampCursor(m.overlayCursor+1, len(books))
		case "enter":
			if m.overlayCursor < len(books) {
				m.sess.TagBook(books[m.overlayCursor])
				m.overlayCursor = 0
			}
		}
	case session.TagStepChapter:
		limit := 1
		if b := m.sess.Tag.Book; b != nil {
			limit = b.Chapters
		}
		switch msg.String() {
		case "h", "left":
			m.overlayCursor = clampCursor(m.overlayCursor-1, limit)
		case "l", "right":
			m.overlayCursor = clampCursor(m.overlayCursor+1, limit)
		case "enter":
			m.sess.TagChapter(m.overlayCursor + 1)
			m.overlayCursor = 0
		}
	case session.TagStepVerse:
		switch msg.String() {
		case "h", "left":
			m.overlayCursor = clampCursor(m.overlayCursor-1, tagVerseLimit)
		case "l", "right":
			m.overlayCursor = clampCursor(m.overlayCursor+1, tagVerseLimit)
		case "enter":
			m.sess.TagVerse(m.overlayCursor + 1)
			m.overlayCursor = 0
			return m, m.tagInput.Focus()
		}
	case session.TagStepComment:
		if msg.Type == tea.KeyEnter {
			m.sess.Tag.Comment = m.tagInput.Value()
			m.sess.ConfirmTag(m.tagCommentID)
			m.tagInput.Reset()
			m.tagInput.Blur()
			m.tagCommentID = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.tagInput, cmd = m.tagInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func clampCursor(c, listLen int) int {
	if c < 0 {
		return 0
	}
	if c >= listLen {
		return listLen - 1
	}
	return c
}

func (m Model) viewTag() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Etiquetar Versículo") + "\n\n")
	t := m.sess.Tag
	switch t.Step {
	case session.TagStepBook:
		b.WriteString(m.styles.Text.Render("Elige un libro:") + "\n")
		books := m.sess.Catalog.Books()
		start := 0
		if m.overlayCursor > 7 {
			start = m.overlayCursor - 7
		}
		for i := start; i < len(books) && i < start+8; i++ {
			cursor := "  "
			if i == m.overlayCursor {
				cursor = m.styles.Cursor.Render("> ")
			}
			b.WriteString(cursor + m.styles.Text.Render(books[i].Name) + "\n")
		}
		b.WriteString(m.styles.Help.Render("j/k: mover • enter: elegir • esc: cancelar"))
	case session.TagStepChapter:
		b.WriteString(m.styles.Text.Render(t.Book.Name+" — capítulo:") + "\n\n")
		b.WriteString(m.styles.Accent.Render(fmt.Sprintf("  %d / %d", m.overlayCursor+1, t.Book.Chapters)) + "\n")
		b.WriteString(m.styles.Help.Render("h/l: cambiar • enter: elegir • esc: cancelar"))
	case session.TagStepVerse:
		b.WriteString(m.styles.Text.Render(fmt.Sprintf("%s %d — versículo:", t.Book.Name, t.Chapter)) + "\n\n")
		b.WriteString(m.styles.Accent.Render(fmt.Sprintf("  %d", m.overlayCursor+1)) + "\n")
		b.WriteString(m.styles.Help.Render("h/l: cambiar • enter: elegir • esc: cancelar"))
	case session.TagStepComment:
		ref := ""
		if t.Book != nil {
			ref = fmt.Sprintf("%s %d:%d", t.Book.Name, t.Chapter, t.Verse)
		}
		b.WriteString(m.styles.Accent.Render("🔗 "+ref) + "\n\n")
		b.WriteString(m.tagInput.View() + "\n")
		b.WriteString(m.styles.Help.Render("enter: etiquetar • esc: cancelar"))
	}
	return b.String()
}
