package session

import "apocalipsis/internal/scripture"

// SubmitSearch runs the placeholder search. The query only gates the
// operation: any non-blank input yields the fixed "principio" fixture set
// with the literal word highlighted. No real matching happens.
func (s *Session) SubmitSearch() {
	if blank(s.Search.Query) {
		return
	}
	fixtures := s.Catalog.PrincipioResults()
	results := make([]scripture.SearchResult, len(fixtures))
	for i, v := range fixtures {
		results[i] = scripture.SearchResult{
			Verse:       v,
			Highlighted: scripture.HighlightAll(v.Text, "principio", s.Highlight),
		}
	}
	s.Search.Results = results
	s.Go(ViewResults)
}

// ToggleFilter applies the filter rules: LIBRO opens the book picker, the
// testament filters load the sample result set and toggle membership, and
// TODO is restored whenever the last specific filter is removed.
func (s *Session) ToggleFilter(filter string) {
	switch filter {
	case FilterLibro:
		s.Go(ViewBooks)
	case FilterOld, FilterNew:
		s.loadSampleResults(s.Catalog.SampleBookVerses())
		s.Go(ViewResults)
		s.toggleFilterSet(filter)
	default:
		s.toggleFilterSet(filter)
	}
}

// SelectBook replaces the filters with {LIBRO} and shows the sample verses
// relabeled under the chosen book.
func (s *Session) SelectBook(b scripture.Book) {
	s.Selection.Book = &b
	s.loadSampleResults(relabel(s.Catalog.SampleBookVerses(), b.Name))
	s.Search.Filters = map[string]bool{FilterLibro: true}
	s.Go(ViewResults)
}

// ActiveFilters returns the filter set as a sorted-stable label list for
// display.
func (s *Session) ActiveFilters() []string {
	order := []string{FilterTodo, FilterOld, FilterNew, FilterLibro}
	var out []string
	for _, f := range order {
		if s.Search.Filters[f] {
			out = append(out, f)
		}
	}
	return out
}

func (s *Session) toggleFilterSet(filter string) {
	if s.Search.Filters[filter] {
		delete(s.Search.Filters, filter)
	} else {
		delete(s.Search.Filters, FilterTodo)
		s.Search.Filters[filter] = true
	}
	if len(s.Search.Filters) == 0 {
		s.Search.Filters[FilterTodo] = true
	}
}

func (s *Session) loadSampleResults(vs []scripture.Verse) {
	results := make([]scripture.SearchResult, len(vs))
	for i, v := range vs {
		results[i] = scripture.SearchResult{Verse: v, Highlighted: v.Text}
	}
	s.Search.Results = results
}
