// Package scripture holds the reference data for the app: verses, books,
// biblical characters and the gematria tables, plus the value types their
// social content is built from. All reads hand out detached copies; callers
// mutate their copy through the With* constructors and never write back.
package scripture

import (
	"fmt"

	"github.com/google/uuid"
)

// Testament tags a book as Old (AT) or New (NT).
type Testament string

const (
	OldTestament Testament = "AT"
	NewTestament Testament = "NT"
)

// Book is one book of the biblical canon.
type Book struct {
	ID           string
	Name         string
	Abbreviation string
	Testament    Testament
	Chapters     int
}

// Character is a biblical persona selectable during registration.
type Character struct {
	Name  string
	Emoji string
	Color string
}

// TextFormat is a verse-level display override. Updates replace the whole
// value, they are never merged field by field.
type TextFormat struct {
	FontSize int
	Bold     bool
	Italic   bool
}

// LetterValue is the numeric value of a single Hebrew letter.
type LetterValue struct {
	Letter string
	Value  int
}

// WordGematria is the translation unit for one word: its Hebrew form,
// transliteration, numeric value and meaning. Immutable reference data.
type WordGematria struct {
	Spanish         string
	Hebrew          string
	Transliteration string
	Value           int
	Meaning         string
	LetterValues    []LetterValue
}

// TaggedVerse is a cross-reference attached to a reply, pointing at
// another verse.
type TaggedVerse struct {
	Reference string
	Comment   string
}

// SubComment is a reply inside a comment thread.
type SubComment struct {
	ID        string
	User      string
	Content   string
	Timestamp string
	Tagged    *TaggedVerse
}

// Comment is a top-level comment on a verse. IsExpanded is view state the
// session tracks separately; it is carried here only because fixtures and
// snapshots keep the original shape.
type Comment struct {
	ID          string
	User        string
	Content     string
	Timestamp   string
	SubComments []SubComment
	IsExpanded  bool
}

// NewComment builds a fresh comment authored now, with no replies and
// collapsed display state.
func NewComment(user, content string) Comment {
	return Comment{
		ID:        "c-" + uuid.NewString(),
		User:      user,
		Content:   content,
		Timestamp: "ahora",
	}
}

// Proverbio is a user-authored stylized saying attached to a verse.
type Proverbio struct {
	ID         string
	User       string
	Content    string
	Background string
	TextColor  string
	FontSize   int
	FontFamily string
	Timestamp  string
}

// Verse is a single addressable passage plus its social content.
// Reference is derivable from Book/Chapter/Number but stored redundantly;
// constructors keep the two in sync.
type Verse struct {
	ID              string
	Book            string
	Chapter         int
	Number          int
	Text            string
	Reference       string
	Comments        []Comment
	Proverbios      []Proverbio
	IsFavorite      bool
	Participations  int
	HebrewText      string
	Transliteration string
	Gematria        []WordGematria
	UserNotes       string
	Format          TextFormat
	HighlightedText string
}

// FormatReference derives the canonical reference string for a location.
func FormatReference(book string, chapter, verse int) string {
	return fmt.Sprintf("%s %d:%d", book, chapter, verse)
}

// Clone returns a deep copy of the verse; slices are copied so neither
// value can observe the other's mutations.
func (v Verse) Clone() Verse {
	out := v
	if v.Comments != nil {
		out.Comments = make([]Comment, len(v.Comments))
		for i, c := range v.Comments {
			out.Comments[i] = c
			if c.SubComments != nil {
				out.Comments[i].SubComments = append([]SubComment(nil), c.SubComments...)
			}
		}
	}
	if v.Proverbios != nil {
		out.Proverbios = append([]Proverbio(nil), v.Proverbios...)
	}
	if v.Gematria != nil {
		out.Gematria = append([]WordGematria(nil), v.Gematria...)
	}
	return out
}

// WithFavorite returns a copy with the favorite flag set.
func (v Verse) WithFavorite(fav bool) Verse {
	out := v.Clone()
	out.IsFavorite = fav
	return out
}

// WithComment returns a copy with the comment appended.
func (v Verse) WithComment(c Comment) Verse {
	out := v.Clone()
	out.Comments = append(out.Comments, c)
	return out
}

// WithFormat returns a copy with the format override replaced wholesale.
func (v Verse) WithFormat(f TextFormat) Verse {
	out := v.Clone()
	out.Format = f
	return out
}

// WithNotes returns a copy with the user-notes field set.
func (v Verse) WithNotes(notes string) Verse {
	out := v.Clone()
	out.UserNotes = notes
	return out
}

// WithHighlight returns a copy carrying the highlighted rendering of the
// verse text.
func (v Verse) WithHighlight(highlighted string) Verse {
	out := v.Clone()
	out.HighlightedText = highlighted
	return out
}

// Relabeled returns a copy re-homed under another book, with the reference
// recomputed to stay in sync.
func (v Verse) Relabeled(book string) Verse {
	out := v.Clone()
	out.Book = book
	out.Reference = FormatReference(book, out.Chapter, out.Number)
	return out
}

// SearchResult pairs a verse with a pre-highlighted rendering of its text.
// Ephemeral; rebuilt on every search.
type SearchResult struct {
	Verse       Verse
	Highlighted string
}
