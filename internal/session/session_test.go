package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apocalipsis/internal/scripture"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(scripture.NewCatalog())
}

func signedIn(t *testing.T) *Session {
	t.Helper()
	s := newSession(t)
	s.Login()
	return s
}

func openFeatured(t *testing.T, s *Session, reference string) {
	t.Helper()
	for _, v := range s.Catalog.Featured() {
		if v.Reference == reference {
			s.OpenVerse(v)
			return
		}
	}
	t.Fatalf("featured verse %q not found", reference)
}

func TestNewStartsAtLogin(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, ViewLogin, s.View)
	assert.Equal(t, []string{FilterTodo}, s.ActiveFilters())
	assert.False(t, s.SignedIn())
}

func TestLoginLandsOnHome(t *testing.T) {
	s := newSession(t)
	s.Login()
	assert.Equal(t, ViewHome, s.View)
	require.NotNil(t, s.Auth.User)
	assert.Equal(t, "David", s.Auth.User.BiblicalName)
}

func TestRegisterRequiresPersona(t *testing.T) {
	s := newSession(t)
	s.Go(ViewRegister)
	s.Auth.Password = "abc"
	s.Auth.ConfirmPassword = "abc"

	s.Register()

	assert.Equal(t, ViewRegister, s.View)
	assert.Equal(t, "Por favor selecciona un personaje bíblico", s.Auth.Err)
	assert.False(t, s.SignedIn())
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	s := newSession(t)
	s.Go(ViewRegister)
	s.ChooseCharacter()
	s.Auth.Password = "abc"
	s.Auth.ConfirmPassword = "xyz"

	s.Register()

	assert.Equal(t, ViewRegister, s.View)
	assert.Equal(t, "Las contraseñas no coinciden", s.Auth.Err)
}

func TestRegisterWithPersona(t *testing.T) {
	s := newSession(t)
	s.Go(ViewRegister)
	s.NextCharacter()
	s.ChooseCharacter()
	s.Auth.Password = "abc"
	s.Auth.ConfirmPassword = "abc"

	s.Register()

	assert.Equal(t, ViewHome, s.View)
	require.NotNil(t, s.Auth.User)
	assert.Equal(t, s.Catalog.Characters()[1].Name, s.Auth.User.BiblicalName)
}

func TestBackSkipsAuthViews(t *testing.T) {
	s := newSession(t)
	s.Go(ViewRegister)
	s.Login()
	s.Go(ViewSearch)

	s.Back()
	assert.Equal(t, ViewHome, s.View)
	s.Back()
	assert.Equal(t, ViewHome, s.View, "history never re-enters auth")
}

func TestSignOutResetsEverything(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	s.Search.Query = "algo"
	s.SubmitSearch()

	s.SignOut()

	assert.Equal(t, ViewLogin, s.View)
	assert.Nil(t, s.Auth.User)
	assert.Nil(t, s.Selection.SelectedVerse)
	assert.Equal(t, []string{FilterTodo}, s.ActiveFilters())
}

func TestOpenVerseDetachesSnapshot(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")

	s.ToggleFavorite()
	s.AddComment("Amén")

	for _, v := range s.Catalog.Featured() {
		if v.Reference == "Génesis 6:4" {
			assert.False(t, v.IsFavorite, "catalog never sees snapshot edits")
			for _, c := range v.Comments {
				assert.NotEqual(t, "Amén", c.Content)
			}
		}
	}
}

func TestToggleFavoriteInvolution(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Éxodo 3:14")
	was := s.Selection.SelectedVerse.IsFavorite

	s.ToggleFavorite()
	assert.Equal(t, !was, s.Selection.SelectedVerse.IsFavorite)
	s.ToggleFavorite()
	assert.Equal(t, was, s.Selection.SelectedVerse.IsFavorite)
}

func TestAddCommentAuthoredByPersona(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	before := len(s.Selection.SelectedVerse.Comments)

	s.AddComment("Amén")

	comments := s.Selection.SelectedVerse.Comments
	require.Len(t, comments, before+1)
	last := comments[len(comments)-1]
	assert.Equal(t, "David", last.User)
	assert.Equal(t, "Amén", last.Content)
	assert.Equal(t, "ahora", last.Timestamp)
}

func TestAddCommentBlankIsNoOp(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	before := len(s.Selection.SelectedVerse.Comments)

	s.AddComment("   ")

	assert.Len(t, s.Selection.SelectedVerse.Comments, before)
}

func TestAddCommentWithoutUserIsNoOp(t *testing.T) {
	s := newSession(t)
	v := s.Catalog.Featured()[0]
	s.OpenVerse(v)
	before := len(s.Selection.SelectedVerse.Comments)

	s.AddComment("hola")

	assert.Len(t, s.Selection.SelectedVerse.Comments, before)
}

func TestCommentExpansionInvolution(t *testing.T) {
	s := signedIn(t)
	assert.False(t, s.CommentExpanded("c1"))
	s.ToggleCommentExpansion("c1")
	assert.True(t, s.CommentExpanded("c1"))
	s.ToggleCommentExpansion("c1")
	assert.False(t, s.CommentExpanded("c1"))
}

func TestHighlightSelectedText(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")

	s.CaptureSelection("los")
	s.HighlightSelectedText()

	v := s.Selection.SelectedVerse
	assert.Contains(t, v.HighlightedText, "[los]")
	assert.Empty(t, s.Drafts.SelectedText, "selection clears after use")
}

func TestUpdateTextFormatReplacesWholesale(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")

	s.UpdateTextFormat(20, true, false)
	s.UpdateTextFormat(16, false, true)

	f := s.Selection.SelectedVerse.Format
	assert.Equal(t, scripture.TextFormat{FontSize: 16, Italic: true}, f)
}

func TestSaveVerseNotesClosesDialog(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	s.OpenOverlay(OverlayNotes)

	s.SaveVerseNotes("mis apuntes")

	assert.Equal(t, "mis apuntes", s.Selection.SelectedVerse.UserNotes)
	assert.Equal(t, OverlayNone, s.Overlay)
}

func TestAddWordCommentTargetsChosenCollection(t *testing.T) {
	s := signedIn(t)
	w, ok := s.Catalog.GematriaFor("principio")
	require.True(t, ok)

	s.Drafts.WordTarget = &w
	s.Drafts.WordCategory = "ilustra"
	apuntes := len(s.Auth.User.Apuntes)
	ilustra := len(s.Auth.User.Ilustraciones)

	s.AddWordComment("la primera palabra")

	require.Len(t, s.Auth.User.Ilustraciones, ilustra+1)
	assert.Len(t, s.Auth.User.Apuntes, apuntes)
	last := s.Auth.User.Ilustraciones[ilustra]
	assert.Contains(t, last, "principio (בְּרֵאשִׁית): la primera palabra")
	assert.Nil(t, s.Drafts.WordTarget, "target clears after commit")
}

func TestComposeProverbio(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	proverbios := len(s.Selection.SelectedVerse.Proverbios)

	_, ok := s.ComposeProverbio()
	assert.False(t, ok, "blank draft composes nothing")

	s.Drafts.Proverbio.Content = "La paz se siembra"
	s.OpenOverlay(OverlayProverbio)
	p, ok := s.ComposeProverbio()

	require.True(t, ok)
	assert.Equal(t, "David", p.User)
	assert.Equal(t, "ahora", p.Timestamp)
	assert.Equal(t, "serif", p.FontFamily)
	assert.Equal(t, OverlayNone, s.Overlay)
	assert.Len(t, s.Selection.SelectedVerse.Proverbios, proverbios, "preview only, never persisted")
}

func TestShareToWhatsAppClosesDialog(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	s.OpenOverlay(OverlayShare)

	url, ok := s.ShareTo("whatsapp")

	require.True(t, ok)
	assert.Contains(t, url, "wa.me")
	assert.Equal(t, OverlayNone, s.Overlay)
}

func TestShareToInstagramFallsBackToNotice(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	s.OpenOverlay(OverlayShare)

	url, ok := s.ShareTo("instagram")

	assert.False(t, ok)
	assert.Empty(t, url)
	assert.Equal(t, "Para Instagram, copia el texto y compártelo en tu historia", s.Notice)
	assert.Equal(t, OverlayNone, s.Overlay)
}

func TestNoteCRUDThroughSession(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Mateo 10:34")
	before := len(s.Auth.User.SavedNotes)

	s.SaveNote("Reflexión", "La espada divide para sanar")
	require.Len(t, s.Auth.User.SavedNotes, before+1)
	n := s.Auth.User.SavedNotes[before]
	assert.Equal(t, "Mateo 10:34", n.VerseReference)

	s.EditNote(n)
	s.UpdateNote("Reflexión editada", "Cuerpo nuevo")
	assert.Equal(t, "Reflexión editada", s.Auth.User.SavedNotes[before].Title)
	assert.Empty(t, s.Drafts.EditingNoteID)

	s.DeleteNote(n.ID)
	assert.Len(t, s.Auth.User.SavedNotes, before)
}

func TestOpenChapterRelabelsSamples(t *testing.T) {
	s := signedIn(t)
	b, ok := s.Catalog.BookByID("mat")
	require.True(t, ok)

	s.OpenBook(b)
	s.OpenChapter(5)

	assert.Equal(t, ViewVerses, s.View)
	require.NotEmpty(t, s.Selection.Verses)
	for _, v := range s.Selection.Verses {
		assert.Equal(t, "Mateo", v.Book)
		assert.Contains(t, v.Reference, "Mateo")
	}
}

func TestLoadChapterDoesNotNavigate(t *testing.T) {
	s := signedIn(t)
	b, ok := s.Catalog.BookByID("gen")
	require.True(t, ok)
	s.OpenBook(b)
	s.OpenChapter(1)
	s.Go(ViewBibleReading)

	s.LoadChapter(2)

	assert.Equal(t, ViewBibleReading, s.View)
	assert.Equal(t, 2, s.Selection.Chapter)
	require.NotEmpty(t, s.Selection.Verses)

	s.Back()
	assert.Equal(t, ViewVerses, s.View, "chapter loads leave no history entries")
}

func TestSignInAndCommentScenario(t *testing.T) {
	s := newSession(t)
	s.Login()
	openFeatured(t, s, "Génesis 6:4")
	s.AddComment("Amén")
	s.Back()

	assert.Equal(t, ViewHome, s.View)
	// the snapshot of the visit kept the comment
	comments := s.Selection.SelectedVerse.Comments
	assert.Equal(t, "Amén", comments[len(comments)-1].Content)
}
