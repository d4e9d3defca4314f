package scripture

// Catalog is the read-only reference data store. Every accessor returns a
// detached copy: annotating a verse obtained here never changes what the
// catalog hands out next time.
type Catalog struct{}

// NewCatalog returns the catalog over the built-in sample content.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Books returns the canon in catalog order.
func (c *Catalog) Books() []Book {
	return append([]Book(nil), books...)
}

// BooksByTestament filters the canon by testament tag.
func (c *Catalog) BooksByTestament(t Testament) []Book {
	var out []Book
	for _, b := range books {
		if b.Testament == t {
			out = append(out, b)
		}
	}
	return out
}

// BookByID looks a book up by its identifier.
func (c *Catalog) BookByID(id string) (Book, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// Characters returns the registration personas.
func (c *Catalog) Characters() []Character {
	return append([]Character(nil), characters...)
}

// Featured returns the verses shown on the home screen, comment threads
// and proverbios included.
func (c *Catalog) Featured() []Verse {
	return cloneVerses(featuredVerses)
}

// PrincipioResults returns the fixed fixture set behind the placeholder
// search.
func (c *Catalog) PrincipioResults() []Verse {
	return cloneVerses(principioVerses)
}

// SampleBookVerses returns the Génesis 1 sample used by the testament
// filters and the book drill-down.
func (c *Catalog) SampleBookVerses() []Verse {
	return cloneVerses(sampleBookVerses)
}

// TranslationVerse returns Génesis 1:1 with its gematria breakdown.
func (c *Catalog) TranslationVerse() Verse {
	return translationVerse.Clone()
}

// GematriaFor looks a word up in the translation verse's table.
func (c *Catalog) GematriaFor(spanish string) (WordGematria, bool) {
	for _, g := range translationVerse.Gematria {
		if g.Spanish == spanish {
			return g, true
		}
	}
	return WordGematria{}, false
}

func cloneVerses(vs []Verse) []Verse {
	out := make([]Verse, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}
