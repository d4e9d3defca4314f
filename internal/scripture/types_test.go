package scripture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDetachesSlices(t *testing.T) {
	v := Verse{
		Text:     "texto",
		Comments: []Comment{{ID: "c1", SubComments: []SubComment{{ID: "sc1"}}}},
	}
	c := v.Clone()
	c.Comments[0].Content = "cambiado"
	c.Comments[0].SubComments[0].Content = "cambiado"

	assert.Empty(t, v.Comments[0].Content)
	assert.Empty(t, v.Comments[0].SubComments[0].Content)
}

func TestWithCommentLeavesOriginalUntouched(t *testing.T) {
	v := Verse{ID: "v1"}
	next := v.WithComment(NewComment("David", "Amén"))

	assert.Empty(t, v.Comments)
	require.Len(t, next.Comments, 1)
	assert.Equal(t, "David", next.Comments[0].User)
	assert.Equal(t, "ahora", next.Comments[0].Timestamp)
	assert.NotEmpty(t, next.Comments[0].ID)
}

func TestRelabeledKeepsReferenceInSync(t *testing.T) {
	v := Verse{Book: "Génesis", Chapter: 1, Number: 3, Reference: "Génesis 1:3"}
	got := v.Relabeled("Éxodo")
	assert.Equal(t, "Éxodo", got.Book)
	assert.Equal(t, "Éxodo 1:3", got.Reference)
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "Mateo 10:34", FormatReference("Mateo", 10, 34))
}

func TestHighlightAllWrapsEveryMatch(t *testing.T) {
	wrap := func(m string) string { return "[" + m + "]" }
	got := HighlightAll("El principio del Principio", "principio", wrap)
	assert.Equal(t, "El [principio] del [Principio]", got)
}

func TestHighlightAllEmptyNeedle(t *testing.T) {
	wrap := func(m string) string { return "[" + m + "]" }
	assert.Equal(t, "texto", HighlightAll("texto", "", wrap))
}
