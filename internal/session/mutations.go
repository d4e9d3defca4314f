package session

import (
	"fmt"

	"github.com/google/uuid"

	"apocalipsis/internal/account"
	"apocalipsis/internal/scripture"
	"apocalipsis/internal/share"
)

// Content mutation operations. All of them follow the same discipline:
// guard, build a new value with one field changed, replace the old
// reference. Blank input, a missing selection or a missing user is a
// silent no-op.

// ToggleFavorite flips the selected verse's favorite flag.
func (s *Session) ToggleFavorite() {
	v := s.Selection.SelectedVerse
	if v == nil {
		return
	}
	next := v.WithFavorite(!v.IsFavorite)
	s.Selection.SelectedVerse = &next
}

// AddComment appends a comment authored by the signed-in persona to the
// selected verse.
func (s *Session) AddComment(text string) {
	if blank(text) || s.Selection.SelectedVerse == nil || s.Auth.User == nil {
		return
	}
	next := s.Selection.SelectedVerse.WithComment(scripture.NewComment(s.Auth.User.BiblicalName, text))
	s.Selection.SelectedVerse = &next
	s.Drafts.Comment = ""
}

// ToggleCommentExpansion flips a comment's membership in the expanded set.
func (s *Session) ToggleCommentExpansion(commentID string) {
	if s.Selection.ExpandedComments[commentID] {
		delete(s.Selection.ExpandedComments, commentID)
	} else {
		s.Selection.ExpandedComments[commentID] = true
	}
}

// CommentExpanded reports whether a comment's replies are visible.
func (s *Session) CommentExpanded(commentID string) bool {
	return s.Selection.ExpandedComments[commentID]
}

// CaptureSelection records the text fragment the user selected in the
// verse body.
func (s *Session) CaptureSelection(text string) {
	if blank(text) {
		return
	}
	s.Drafts.SelectedText = text
}

// HighlightSelectedText wraps every case-insensitive occurrence of the
// captured selection inside the verse text and stores the rendering as the
// verse's highlighted variant. The captured selection is cleared.
func (s *Session) HighlightSelectedText() {
	v := s.Selection.SelectedVerse
	if v == nil || s.Drafts.SelectedText == "" {
		return
	}
	next := v.WithHighlight(scripture.HighlightAll(v.Text, s.Drafts.SelectedText, s.Highlight))
	s.Selection.SelectedVerse = &next
	s.Drafts.SelectedText = ""
}

// UpdateTextFormat replaces the selected verse's format override wholesale.
func (s *Session) UpdateTextFormat(fontSize int, bold, italic bool) {
	v := s.Selection.SelectedVerse
	if v == nil {
		return
	}
	next := v.WithFormat(scripture.TextFormat{FontSize: fontSize, Bold: bold, Italic: italic})
	s.Selection.SelectedVerse = &next
}

// SaveVerseNotes sets the verse's personal notes and closes the dialog.
func (s *Session) SaveVerseNotes(text string) {
	v := s.Selection.SelectedVerse
	if v == nil || blank(text) {
		return
	}
	next := v.WithNotes(text)
	s.Selection.SelectedVerse = &next
	s.Drafts.VerseNotes = ""
	s.Overlay = OverlayNone
}

// AddWordComment appends "<word> (<hebrew>): <text>" to the annotation
// collection chosen by the draft category.
func (s *Session) AddWordComment(text string) {
	if blank(text) || s.Drafts.WordTarget == nil || s.Auth.User == nil {
		return
	}
	w := s.Drafts.WordTarget
	formatted := fmt.Sprintf("%s (%s): %s", w.Spanish, w.Hebrew, text)
	next := s.Auth.User.WithAnnotation(s.Drafts.WordCategory, formatted)
	s.Auth.User = &next
	s.Drafts.WordComment = ""
	s.Drafts.WordTarget = nil
}

// SaveNote creates a notebook entry, tagged with the selected verse's
// reference when one is open.
func (s *Session) SaveNote(title, content string) {
	if blank(title) || blank(content) || s.Auth.User == nil {
		return
	}
	ref := ""
	if s.Selection.SelectedVerse != nil {
		ref = s.Selection.SelectedVerse.Reference
	}
	next := s.Auth.User.WithNote(account.NewNote(title, content, ref))
	s.Auth.User = &next
	s.Drafts.NoteTitle = ""
	s.Drafts.NoteContent = ""
}

// EditNote loads a note into the notebook drafts.
func (s *Session) EditNote(n account.SavedNote) {
	s.Drafts.EditingNoteID = n.ID
	s.Drafts.NoteTitle = n.Title
	s.Drafts.NoteContent = n.Content
}

// UpdateNote commits the edit in progress.
func (s *Session) UpdateNote(title, content string) {
	if s.Drafts.EditingNoteID == "" || blank(title) || blank(content) || s.Auth.User == nil {
		return
	}
	next := s.Auth.User.WithUpdatedNote(s.Drafts.EditingNoteID, title, content)
	s.Auth.User = &next
	s.Drafts.EditingNoteID = ""
	s.Drafts.NoteTitle = ""
	s.Drafts.NoteContent = ""
}

// DeleteNote removes a notebook entry by id.
func (s *Session) DeleteNote(noteID string) {
	if s.Auth.User == nil {
		return
	}
	next := s.Auth.User.WithoutNote(noteID)
	s.Auth.User = &next
}

// ComposeProverbio builds a styled proverbio from the draft, authored by
// the signed-in persona. As in the original flow the value is returned for
// preview and not persisted onto the verse.
func (s *Session) ComposeProverbio() (scripture.Proverbio, bool) {
	if blank(s.Drafts.Proverbio.Content) || s.Auth.User == nil {
		return scripture.Proverbio{}, false
	}
	p := scripture.Proverbio{
		ID:         "p-" + uuid.NewString(),
		User:       s.Auth.User.BiblicalName,
		Content:    s.Drafts.Proverbio.Content,
		Background: s.Drafts.Proverbio.Background,
		TextColor:  s.Drafts.Proverbio.TextColor,
		FontSize:   s.Drafts.Proverbio.FontSize,
		FontFamily: "serif",
		Timestamp:  "ahora",
	}
	s.Drafts.Proverbio.Content = ""
	s.Overlay = OverlayNone
	return p, true
}

// CopyVerse puts the formatted verse on the clipboard and raises a notice.
func (s *Session) CopyVerse() {
	v := s.Selection.SelectedVerse
	if v == nil {
		return
	}
	if err := share.Copy(*v); err != nil {
		s.Notice = "No se pudo copiar el versículo"
		return
	}
	s.Notice = "Versículo copiado al portapapeles"
}

// ShareTo resolves the outbound link for a platform. Instagram falls back
// to the clipboard with an instruction. The share dialog closes either way.
func (s *Session) ShareTo(platform share.Platform) (string, bool) {
	v := s.Selection.SelectedVerse
	if v == nil {
		return "", false
	}
	defer s.CloseOverlay()
	if platform == share.Instagram {
		s.CopyVerse()
		s.Notice = "Para Instagram, copia el texto y compártelo en tu historia"
		return "", false
	}
	return share.URL(platform, *v)
}
