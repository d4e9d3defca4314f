package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSearchBlankIsNoOp(t *testing.T) {
	s := signedIn(t)
	s.Go(ViewSearch)
	s.Search.Query = "   "

	s.SubmitSearch()

	assert.Equal(t, ViewSearch, s.View)
	assert.Empty(t, s.Search.Results)
}

func TestSubmitSearchAlwaysReturnsPrincipio(t *testing.T) {
	s := signedIn(t)
	s.Go(ViewSearch)
	s.Search.Query = "cualquier cosa"

	s.SubmitSearch()

	assert.Equal(t, ViewResults, s.View)
	require.Len(t, s.Search.Results, len(s.Catalog.PrincipioResults()))
	for _, r := range s.Search.Results {
		assert.Contains(t, r.Highlighted, "[principio]")
	}
}

func TestToggleFilterSpecificRemovesTodo(t *testing.T) {
	s := signedIn(t)

	s.ToggleFilter(FilterOld)

	assert.Equal(t, []string{FilterOld}, s.ActiveFilters())
	assert.Equal(t, ViewResults, s.View)
	assert.NotEmpty(t, s.Search.Results)
}

func TestToggleFilterEmptySetRestoresTodo(t *testing.T) {
	s := signedIn(t)

	s.ToggleFilter(FilterOld)
	s.ToggleFilter(FilterOld)

	assert.Equal(t, []string{FilterTodo}, s.ActiveFilters())
}

func TestToggleFilterAccumulates(t *testing.T) {
	s := signedIn(t)

	s.ToggleFilter(FilterOld)
	s.ToggleFilter(FilterNew)

	assert.Equal(t, []string{FilterOld, FilterNew}, s.ActiveFilters())
}

func TestToggleFilterLibroOpensBookPicker(t *testing.T) {
	s := signedIn(t)

	s.ToggleFilter(FilterLibro)

	assert.Equal(t, ViewBooks, s.View)
	assert.Equal(t, []string{FilterTodo}, s.ActiveFilters(), "picking nothing changes no filters")
}

func TestSelectBookReplacesFilters(t *testing.T) {
	s := signedIn(t)
	s.ToggleFilter(FilterOld)
	b, ok := s.Catalog.BookByID("isa")
	require.True(t, ok)

	s.SelectBook(b)

	assert.Equal(t, []string{FilterLibro}, s.ActiveFilters())
	assert.Equal(t, ViewResults, s.View)
	require.NotEmpty(t, s.Search.Results)
	for _, r := range s.Search.Results {
		assert.Equal(t, "Isaías", r.Verse.Book)
	}
}
