package session

import (
	"github.com/google/uuid"

	"apocalipsis/internal/scripture"
)

// TagStep is the current step of the verse-tagging wizard.
type TagStep string

const (
	TagStepBook    TagStep = "book"
	TagStepChapter TagStep = "chapter"
	TagStepVerse   TagStep = "verse"
	TagStepComment TagStep = "comment"
)

// TagDraft is the wizard state for cross-referencing another verse from a
// comment thread.
type TagDraft struct {
	Step    TagStep
	Book    *scripture.Book
	Chapter int
	Verse   int
	Comment string
}

// StartTag opens the tagging wizard at the book step.
func (s *Session) StartTag() {
	s.Tag = TagDraft{Step: TagStepBook}
	s.Overlay = OverlayTag
}

// TagBook records the chosen book and advances to the chapter step.
func (s *Session) TagBook(b scripture.Book) {
	s.Tag.Book = &b
	s.Tag.Step = TagStepChapter
}

// TagChapter records the chosen chapter and advances to the verse step.
func (s *Session) TagChapter(chapter int) {
	s.Tag.Chapter = chapter
	s.Tag.Step = TagStepVerse
}

// TagVerse records the chosen verse number and advances to the comment
// step.
func (s *Session) TagVerse(verse int) {
	s.Tag.Verse = verse
	s.Tag.Step = TagStepComment
}

// CancelTag discards the wizard and closes the dialog.
func (s *Session) CancelTag() {
	s.Tag = TagDraft{Step: TagStepBook}
	s.Overlay = OverlayNone
}

// ConfirmTag appends a reply carrying the cross-reference to the comment,
// then resets the wizard. Incomplete drafts, a blank explanation, a
// missing user or an unknown comment id leave the thread untouched.
func (s *Session) ConfirmTag(commentID string) {
	defer s.CancelTag()
	v := s.Selection.SelectedVerse
	if v == nil || s.Auth.User == nil || s.Tag.Book == nil ||
		s.Tag.Chapter == 0 || s.Tag.Verse == 0 || blank(s.Tag.Comment) {
		return
	}
	ref := scripture.FormatReference(s.Tag.Book.Name, s.Tag.Chapter, s.Tag.Verse)
	next := v.Clone()
	for i, c := range next.Comments {
		if c.ID != commentID {
			continue
		}
		next.Comments[i].SubComments = append(next.Comments[i].SubComments, scripture.SubComment{
			ID:        "sc-" + uuid.NewString(),
			User:      s.Auth.User.BiblicalName,
			Content:   s.Tag.Comment,
			Timestamp: "ahora",
			Tagged:    &scripture.TaggedVerse{Reference: ref, Comment: s.Tag.Comment},
		})
		s.Selection.SelectedVerse = &next
		return
	}
}
