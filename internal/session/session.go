// Package session owns the view-state machine and the in-memory content
// mutations behind it. All state lives here for the lifetime of the
// process; nothing is persisted. Each concern sits in its own substructure
// so operations touch only the state they need, and every entity mutation
// is a full copy-replace of the owning value.
package session

import (
	"strings"

	"apocalipsis/internal/account"
	"apocalipsis/internal/scripture"
)

// Auth holds the authentication phase state.
type Auth struct {
	User              *account.User
	SelectedCharacter *scripture.Character
	CharacterIndex    int
	RegisterName      string
	RegisterEmail     string
	Password          string
	ConfirmPassword   string
	Err               string
}

// Search holds the query, the current result set and the active filters.
type Search struct {
	Query   string
	Results []scripture.SearchResult
	Filters map[string]bool
}

// Selection is the currently selected book/chapter/verse. SelectedVerse is
// a detached snapshot: annotating it never updates the catalog.
type Selection struct {
	Book             *scripture.Book
	Chapter          int
	SelectedVerse    *scripture.Verse
	Verses           []scripture.Verse
	ExpandedComments map[string]bool
}

// Drafts captures in-progress form input before it is committed by an
// operation.
type Drafts struct {
	Comment       string
	WordComment   string
	WordTarget    *scripture.WordGematria
	WordCategory  account.AnnotationCategory
	VerseNotes    string
	NoteTitle     string
	NoteContent   string
	EditingNoteID string
	SelectedText  string
	Proverbio     ProverbioDraft
}

// ProverbioDraft is the styling state of the proverb composer.
type ProverbioDraft struct {
	Content    string
	Background string
	TextColor  string
	FontSize   int
}

// Session is the composed state bag the view controller owns.
type Session struct {
	Catalog *scripture.Catalog

	View    View
	Overlay Overlay
	history []View

	Auth      Auth
	Search    Search
	Selection Selection
	Drafts    Drafts
	Tag       TagDraft

	// Notice is the current user-facing alert; empty when none.
	Notice string

	// Highlight wraps matched text for display. The UI installs a styled
	// implementation; the default brackets matches so tests can see them.
	Highlight scripture.Highlighter
}

// New returns a session at the login screen.
func New(catalog *scripture.Catalog) *Session {
	return &Session{
		Catalog: catalog,
		View:    ViewLogin,
		Search: Search{
			Filters: map[string]bool{FilterTodo: true},
		},
		Selection: Selection{
			ExpandedComments: make(map[string]bool),
		},
		Drafts: Drafts{
			WordCategory: account.CategoryApuntes,
			Proverbio:    ProverbioDraft{Background: "#667eea", TextColor: "#ffffff", FontSize: 16},
		},
		Highlight: func(m string) string { return "[" + m + "]" },
	}
}

// Go moves to a view, remembering where we came from for Back.
func (s *Session) Go(v View) {
	if v == s.View {
		return
	}
	s.history = append(s.history, s.View)
	s.View = v
	s.Overlay = OverlayNone
}

// Back returns to the previous logical view, or home when there is none.
// The auth screens are never re-entered through Back.
func (s *Session) Back() {
	for len(s.history) > 0 {
		last := s.history[len(s.history)-1]
		s.history = s.history[:len(s.history)-1]
		if last == ViewLogin || last == ViewRegister {
			continue
		}
		s.View = last
		s.Overlay = OverlayNone
		return
	}
	s.Home()
}

// Home jumps to the home view and clears the navigation history.
func (s *Session) Home() {
	s.View = ViewHome
	s.Overlay = OverlayNone
	s.history = s.history[:0]
}

// OpenOverlay shows a dialog; any previously visible dialog closes.
func (s *Session) OpenOverlay(o Overlay) {
	s.Overlay = o
}

// CloseOverlay dismisses the active dialog.
func (s *Session) CloseOverlay() {
	s.Overlay = OverlayNone
}

// Login signs in as the fixed template user and lands on home.
func (s *Session) Login() {
	u := account.TemplateUser()
	s.Auth.User = &u
	s.Auth.Err = ""
	s.history = nil
	s.View = ViewHome
}

// Register validates the registration form. A missing persona or a
// password mismatch blocks the transition and reports the problem;
// otherwise the persona is merged into the template user and the session
// lands on home.
func (s *Session) Register() {
	if s.Auth.SelectedCharacter == nil {
		s.Auth.Err = "Por favor selecciona un personaje bíblico"
		return
	}
	if s.Auth.Password != s.Auth.ConfirmPassword {
		s.Auth.Err = "Las contraseñas no coinciden"
		return
	}
	u := account.FromPersona(*s.Auth.SelectedCharacter)
	s.Auth.User = &u
	s.Auth.Err = ""
	s.history = nil
	s.View = ViewHome
}

// SignOut clears the signed-in user and returns to the login screen.
func (s *Session) SignOut() {
	s.Auth = Auth{}
	s.Selection = Selection{ExpandedComments: make(map[string]bool)}
	s.Search = Search{Filters: map[string]bool{FilterTodo: true}}
	s.Drafts = Drafts{
		WordCategory: account.CategoryApuntes,
		Proverbio:    ProverbioDraft{Background: "#667eea", TextColor: "#ffffff", FontSize: 16},
	}
	s.history = nil
	s.Overlay = OverlayNone
	s.View = ViewLogin
}

// NextCharacter advances the registration carousel, wrapping around.
func (s *Session) NextCharacter() {
	chars := s.Catalog.Characters()
	s.Auth.CharacterIndex = (s.Auth.CharacterIndex + 1) % len(chars)
}

// PrevCharacter steps the carousel backwards, wrapping around.
func (s *Session) PrevCharacter() {
	chars := s.Catalog.Characters()
	s.Auth.CharacterIndex = (s.Auth.CharacterIndex - 1 + len(chars)) % len(chars)
}

// ChooseCharacter picks the carousel's current persona.
func (s *Session) ChooseCharacter() {
	chars := s.Catalog.Characters()
	ch := chars[s.Auth.CharacterIndex]
	s.Auth.SelectedCharacter = &ch
}

// OpenVerse selects a verse and shows its detail view. The stored verse is
// a snapshot; later edits stay on the snapshot.
func (s *Session) OpenVerse(v scripture.Verse) {
	snap := v.Clone()
	s.Selection.SelectedVerse = &snap
	s.Go(ViewVerse)
}

// OpenBook drills into a book's chapter list.
func (s *Session) OpenBook(b scripture.Book) {
	s.Selection.Book = &b
	s.Selection.Chapter = 0
	s.Go(ViewChapters)
}

// LoadChapter sets the chapter and its verse content without navigating.
// The verse content is the fixture sample relabeled under the chosen book.
func (s *Session) LoadChapter(chapter int) {
	s.Selection.Chapter = chapter
	if s.Selection.Book != nil {
		s.Selection.Verses = relabel(s.Catalog.SampleBookVerses(), s.Selection.Book.Name)
	}
}

// OpenChapter drills into a chapter's verse list.
func (s *Session) OpenChapter(chapter int) {
	s.LoadChapter(chapter)
	s.Go(ViewVerses)
}

// ClearNotice dismisses the current alert.
func (s *Session) ClearNotice() {
	s.Notice = ""
}

// SignedIn reports whether a user is present.
func (s *Session) SignedIn() bool {
	return s.Auth.User != nil
}

func relabel(vs []scripture.Verse, book string) []scripture.Verse {
	out := make([]scripture.Verse, len(vs))
	for i, v := range vs {
		out[i] = v.Relabeled(book)
	}
	return out
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
