package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/scripture"
	"apocalipsis/internal/session"
)

// readingVerses resolves the chapter shown by the reading view. When no
// book has been drilled into yet the Génesis sample opens the reader.
func (m Model) readingVerses() ([]scripture.Verse, string) {
	sel := m.sess.Selection
	if sel.Book != nil && len(sel.Verses) > 0 {
		return sel.Verses, fmt.Sprintf("%s %d", sel.Book.Name, sel.Chapter)
	}
	return m.sess.Catalog.SampleBookVerses(), "Génesis 1"
}

// updateReading is the continuous reader: j/k selects a verse, ctrl+d and
// ctrl+u jump half pages, enter opens the verse detail.
func (m Model) updateReading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	verses, _ := m.readingVerses()
	visible := m.visibleReadingLines(verses)
	switch msg.String() {
	case "esc", "q":
		m.sess.Back()
		m.resetCursor()
		return m, nil
	case "k", "up":
		m.moveCursor(-1, len(verses))
	case "j", "down":
		m.moveCursor(1, len(verses))
	case "ctrl+u":
		m.moveCursor(-max(1, visible/2), len(verses))
	case "ctrl+d":
		m.moveCursor(max(1, visible/2), len(verses))
	case "n":
		m.nextChapter()
		return m, nil
	case "p":
		m.prevChapter()
		return m, nil
	case "enter":
		if m.cursor < len(verses) {
			m.sess.OpenVerse(verses[m.cursor])
			m.resetCursor()
		}
		return m, nil
	case "m":
		m.sess.OpenOverlay(session.OverlayMenu)
		return m, nil
	}
	m.adjustScroll(len(verses), visible)
	return m, nil
}

func (m *Model) nextChapter() {
	b := m.sess.Selection.Book
	if b == nil {
		return
	}
	ch := m.sess.Selection.Chapter + 1
	if ch > b.Chapters {
		ch = 1
	}
	m.sess.LoadChapter(ch)
	m.resetCursor()
}

func (m *Model) prevChapter() {
	b := m.sess.Selection.Book
	if b == nil {
		return
	}
	ch := m.sess.Selection.Chapter - 1
	if ch < 1 {
		ch = b.Chapters
	}
	m.sess.LoadChapter(ch)
	m.resetCursor()
}

// adjustScroll keeps the cursor inside the window, clamped to the list.
func (m *Model) adjustScroll(listLen, visible int) {
	maxScroll := max(0, listLen-visible)
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
}

// visibleReadingLines counts how many verses fit the frame, walking from
// the scroll offset and charging each verse its wrapped height.
func (m Model) visibleReadingLines(verses []scripture.Verse) int {
	available := max(5, m.height-6)
	height := 0
	count := 0
	for i := m.scroll; i < len(verses) && height < available; i++ {
		vh := len(wrapText(verses[i].Text, min(76, m.width-8))) + 1
		if height+vh > available {
			break
		}
		height += vh
		count++
	}
	return max(1, count)
}

func (m Model) viewReading() string {
	verses, title := m.readingVerses()
	visible := m.visibleReadingLines(verses)

	var b strings.Builder
	b.WriteString("\n  " + m.styles.Header.Render("📖 "+title) + "\n\n")
	for i := m.scroll; i < len(verses) && i < m.scroll+visible; i++ {
		v := verses[i]
		num := m.styles.Dim.Render(fmt.Sprintf("%3d", v.Number))
		if i == m.cursor {
			num = m.styles.Cursor.Render(fmt.Sprintf("%3d", v.Number))
		}
		lines := wrapText(v.Text, min(76, m.width-8))
		for j, line := range lines {
			if j == 0 {
				b.WriteString("  " + num + " " + m.styles.Text.Render(line) + "\n")
			} else {
				b.WriteString("      " + m.styles.Text.Render(line) + "\n")
			}
		}
		b.WriteString("\n")
	}
	if len(verses) > m.scroll+visible {
		b.WriteString("  " + m.styles.Dim.Render(fmt.Sprintf("··· %d versículos más", len(verses)-m.scroll-visible)) + "\n")
	}
	b.WriteString(m.styles.Help.Render("  j/k: versículo • ctrl+d/u: página • n/p: capítulo • enter: abrir • esc: volver"))
	return b.String()
}
