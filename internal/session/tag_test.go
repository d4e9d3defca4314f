package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagWizardStepsAndConfirm(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	target := s.Selection.SelectedVerse.Comments[0]
	replies := len(target.SubComments)

	s.StartTag()
	assert.Equal(t, OverlayTag, s.Overlay)
	assert.Equal(t, TagStepBook, s.Tag.Step)

	b, ok := s.Catalog.BookByID("sal")
	require.True(t, ok)
	s.TagBook(b)
	assert.Equal(t, TagStepChapter, s.Tag.Step)
	s.TagChapter(23)
	assert.Equal(t, TagStepVerse, s.Tag.Step)
	s.TagVerse(1)
	assert.Equal(t, TagStepComment, s.Tag.Step)
	s.Tag.Comment = "El Señor es mi pastor"

	s.ConfirmTag(target.ID)

	assert.Equal(t, OverlayNone, s.Overlay)
	got := s.Selection.SelectedVerse.Comments[0].SubComments
	require.Len(t, got, replies+1)
	reply := got[len(got)-1]
	assert.Equal(t, "David", reply.User)
	assert.Equal(t, "ahora", reply.Timestamp)
	require.NotNil(t, reply.Tagged)
	assert.Equal(t, "Salmos 23:1", reply.Tagged.Reference)
}

func TestConfirmTagBlankCommentIsNoOp(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	target := s.Selection.SelectedVerse.Comments[0]
	replies := len(target.SubComments)

	s.StartTag()
	b, _ := s.Catalog.BookByID("gen")
	s.TagBook(b)
	s.TagChapter(1)
	s.TagVerse(1)
	s.Tag.Comment = "   "

	s.ConfirmTag(target.ID)

	assert.Equal(t, OverlayNone, s.Overlay)
	assert.Len(t, s.Selection.SelectedVerse.Comments[0].SubComments, replies)
}

func TestConfirmTagUnknownCommentIsNoOp(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")
	before := s.Selection.SelectedVerse.Clone()

	s.StartTag()
	b, _ := s.Catalog.BookByID("gen")
	s.TagBook(b)
	s.TagChapter(1)
	s.TagVerse(1)
	s.Tag.Comment = "hola"

	s.ConfirmTag("no-such-comment")

	assert.Equal(t, before.Comments, s.Selection.SelectedVerse.Comments)
}

func TestCancelTagResetsDraft(t *testing.T) {
	s := signedIn(t)
	openFeatured(t, s, "Génesis 6:4")

	s.StartTag()
	b, _ := s.Catalog.BookByID("gen")
	s.TagBook(b)
	s.CancelTag()

	assert.Equal(t, OverlayNone, s.Overlay)
	assert.Nil(t, s.Tag.Book)
	assert.Equal(t, TagStepBook, s.Tag.Step)
}
