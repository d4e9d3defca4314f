package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/config"
	"apocalipsis/internal/scripture"
	"apocalipsis/internal/session"
)

func newTestModel() Model {
	sess := session.New(scripture.NewCatalog())
	return New(sess, NewStyles(config.Default()))
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func TestLoginEnterLandsOnHome(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter")

	if m.sess.View != session.ViewHome {
		t.Fatalf("Expected home after login, got %s", m.sess.View)
	}
	if !m.sess.SignedIn() {
		t.Error("Expected a signed-in user after login")
	}
}

func TestLoginToRegisterAndBack(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "r")
	if m.sess.View != session.ViewRegister {
		t.Fatalf("Expected register view, got %s", m.sess.View)
	}
	m = press(t, m, "esc")
	if m.sess.View != session.ViewLogin {
		t.Fatalf("Expected login view after esc, got %s", m.sess.View)
	}
}

func TestHomeOpensVerseDetail(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "enter")

	if m.sess.View != session.ViewVerse {
		t.Fatalf("Expected verse view, got %s", m.sess.View)
	}
	if m.sess.Selection.SelectedVerse == nil {
		t.Fatal("Expected a selected verse")
	}
}

func TestSearchFlowReachesResults(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "/")
	if m.sess.View != session.ViewSearch {
		t.Fatalf("Expected search view, got %s", m.sess.View)
	}

	m = typeText(t, m, "principio")
	m = press(t, m, "enter")

	if m.sess.View != session.ViewResults {
		t.Fatalf("Expected results view, got %s", m.sess.View)
	}
	if len(m.sess.Search.Results) == 0 {
		t.Error("Expected non-empty results")
	}
}

func TestVerseCommentFlow(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "enter")
	before := len(m.sess.Selection.SelectedVerse.Comments)

	m = press(t, m, "c")
	m = typeText(t, m, "Amén")
	m = press(t, m, "enter")

	comments := m.sess.Selection.SelectedVerse.Comments
	if len(comments) != before+1 {
		t.Fatalf("Expected %d comments, got %d", before+1, len(comments))
	}
	if comments[len(comments)-1].Content != "Amén" {
		t.Errorf("Expected comment content Amén, got %q", comments[len(comments)-1].Content)
	}
}

func TestVerseFavoriteKey(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "enter")
	was := m.sess.Selection.SelectedVerse.IsFavorite

	m = press(t, m, "f")
	if m.sess.Selection.SelectedVerse.IsFavorite == was {
		t.Error("Expected favorite flag to flip")
	}
}

func TestMenuOverlaySignOut(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "m")
	if m.sess.Overlay != session.OverlayMenu {
		t.Fatalf("Expected menu overlay, got %q", m.sess.Overlay)
	}

	m = press(t, m, "s")
	if m.sess.View != session.ViewLogin {
		t.Fatalf("Expected login after sign out, got %s", m.sess.View)
	}
	if m.sess.SignedIn() {
		t.Error("Expected no user after sign out")
	}
}

func TestNotebookOverlaySavesNote(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter")
	before := len(m.sess.Auth.User.SavedNotes)

	m = press(t, m, "b")
	if m.sess.Overlay != session.OverlayNotebook {
		t.Fatalf("Expected notebook overlay, got %q", m.sess.Overlay)
	}
	m = typeText(t, m, "Título")
	m = press(t, m, "tab")
	m = typeText(t, m, "Contenido")
	m = press(t, m, "ctrl+s")

	if m.sess.Overlay != session.OverlayNone {
		t.Error("Expected overlay to close after save")
	}
	if len(m.sess.Auth.User.SavedNotes) != before+1 {
		t.Fatalf("Expected %d notes, got %d", before+1, len(m.sess.Auth.User.SavedNotes))
	}
}

func TestTextFormatOverlay(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "enter", "F")
	if m.sess.Overlay != session.OverlayTextFormat {
		t.Fatalf("Expected text-format overlay, got %q", m.sess.Overlay)
	}

	size := m.sess.Selection.SelectedVerse.Format.FontSize
	m = press(t, m, "+", "b")

	f := m.sess.Selection.SelectedVerse.Format
	if f.FontSize != size+1 {
		t.Errorf("Expected size %d, got %d", size+1, f.FontSize)
	}
	if !f.Bold {
		t.Error("Expected bold on")
	}
}

func TestTranslationOpensWordTools(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "t")
	if m.sess.View != session.ViewTranslation {
		t.Fatalf("Expected translation view, got %s", m.sess.View)
	}

	m = press(t, m, "enter")
	if m.sess.Overlay != session.OverlayWordTools {
		t.Fatalf("Expected word-tools overlay, got %q", m.sess.Overlay)
	}
	if m.sess.Drafts.WordTarget == nil {
		t.Fatal("Expected a word target")
	}

	m = typeText(t, m, "nota")
	m = press(t, m, "enter")
	if m.sess.Overlay != session.OverlayNone {
		t.Error("Expected overlay to close after saving annotation")
	}
}

func TestSavedNotesCreateAndDelete(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "s")
	if m.sess.View != session.ViewSaved {
		t.Fatalf("Expected saved view, got %s", m.sess.View)
	}
	before := len(m.sess.Auth.User.SavedNotes)

	m = press(t, m, "n")
	m = typeText(t, m, "Nueva")
	m = press(t, m, "tab")
	m = typeText(t, m, "Cuerpo")
	m = press(t, m, "ctrl+s")
	if len(m.sess.Auth.User.SavedNotes) != before+1 {
		t.Fatalf("Expected %d notes, got %d", before+1, len(m.sess.Auth.User.SavedNotes))
	}

	m = press(t, m, "d")
	if len(m.sess.Auth.User.SavedNotes) != before {
		t.Fatalf("Expected %d notes after delete, got %d", before, len(m.sess.Auth.User.SavedNotes))
	}
}

func TestTagWizardThroughKeys(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter", "enter")
	target := m.sess.Selection.SelectedVerse.Comments[0]
	replies := len(target.SubComments)

	m = press(t, m, "r")
	if m.sess.Overlay != session.OverlayTag {
		t.Fatalf("Expected tag overlay, got %q", m.sess.Overlay)
	}
	m = press(t, m, "enter")      // book
	m = press(t, m, "l", "enter") // chapter 2
	m = press(t, m, "enter")      // verse 1
	m = typeText(t, m, "Ver también")
	m = press(t, m, "enter")

	if m.sess.Overlay != session.OverlayNone {
		t.Error("Expected overlay to close after tagging")
	}
	got := m.sess.Selection.SelectedVerse.Comments[0].SubComments
	if len(got) != replies+1 {
		t.Fatalf("Expected %d replies, got %d", replies+1, len(got))
	}
	reply := got[len(got)-1]
	if reply.Tagged == nil || reply.Tagged.Reference != "Génesis 2:1" {
		t.Errorf("Unexpected tagged reference: %+v", reply.Tagged)
	}
}

func TestWrapTextBreaksOnWords(t *testing.T) {
	lines := wrapText("uno dos tres cuatro cinco", 10)
	for _, line := range lines {
		if len([]rune(line)) > 10 {
			t.Errorf("Line %q exceeds width", line)
		}
	}
	if joined := strings.Join(lines, " "); joined != "uno dos tres cuatro cinco" {
		t.Errorf("Words lost in wrapping: %q", joined)
	}
}

func TestInstalledHighlighterWrapsMatches(t *testing.T) {
	m := newTestModel()

	got := m.sess.Highlight("principio")
	if !strings.Contains(got, "principio") {
		t.Errorf("Expected highlighter output to contain the match, got %q", got)
	}

	// full path: select a word on a verse and highlight it
	m = press(t, m, "enter", "enter", "w", "H")
	v := m.sess.Selection.SelectedVerse
	if v.HighlightedText == "" {
		t.Error("Expected a highlighted rendering after w + H")
	}
	if !strings.Contains(v.HighlightedText, "Había") {
		t.Errorf("Expected highlighted text to keep the verse words, got %q", v.HighlightedText)
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	text := "Y miró Dios la creación: días de bendición y corazón contrito"
	for maxLen := 1; maxLen < len([]rune(text)); maxLen++ {
		got := truncate(text, maxLen)
		if !utf8.ValidString(got) {
			t.Fatalf("truncate(%d) produced invalid UTF-8: %q", maxLen, got)
		}
		if n := len([]rune(got)); n > maxLen {
			t.Fatalf("truncate(%d) returned %d runes", maxLen, n)
		}
	}
	if got := truncate("corto", 20); got != "corto" {
		t.Errorf("Expected short text unchanged, got %q", got)
	}
}

func TestReaderChapterFlipStaysInReader(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter")
	b, ok := m.sess.Catalog.BookByID("gen")
	if !ok {
		t.Fatal("Expected the Génesis book in the catalog")
	}
	m.sess.OpenBook(b)
	m.sess.OpenChapter(1)
	m.sess.Go(session.ViewBibleReading)

	m = press(t, m, "n", "n")
	if m.sess.View != session.ViewBibleReading {
		t.Fatalf("Expected to stay in the reader, got %s", m.sess.View)
	}
	if m.sess.Selection.Chapter != 3 {
		t.Errorf("Expected chapter 3 after two flips, got %d", m.sess.Selection.Chapter)
	}

	// one esc returns to the verses view actually visited, not a flip stop
	m = press(t, m, "esc")
	if m.sess.View != session.ViewVerses {
		t.Fatalf("Expected verses view after esc, got %s", m.sess.View)
	}
}

func TestNoticeClearsOnNextKey(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "enter")
	m.sess.Notice = "aviso"
	m = press(t, m, "j")
	if m.sess.Notice != "" {
		t.Errorf("Expected notice to clear, got %q", m.sess.Notice)
	}
}
