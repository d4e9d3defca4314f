// Package account models the signed-in user: persona, annotation
// collections and the saved-note sequence. Users follow the same
// copy-on-write discipline as verses; every mutation returns a new value.
package account

import (
	"time"

	"github.com/google/uuid"

	"apocalipsis/internal/scripture"
)

// AnnotationCategory selects which of the three collections a word-level
// annotation lands in.
type AnnotationCategory string

const (
	CategoryApuntes AnnotationCategory = "apuntes"
	CategoryIlustra AnnotationCategory = "ilustra"
	CategoryTraduce AnnotationCategory = "traduce"
)

// SavedNote is a notebook entry, optionally tagged with a verse reference.
type SavedNote struct {
	ID             string
	Title          string
	Content        string
	Date           string
	VerseReference string
}

// User is the signed-in user record.
type User struct {
	ID                  string
	Name                string
	BiblicalName        string
	Emoji               string
	JoinDate            string
	NotesCount          int
	ParticipationsCount int
	Bio                 string
	Apuntes             []string
	Ilustraciones       []string
	Traducciones        []string
	SavedNotes          []SavedNote
}

// TemplateUser is the fixed record every sign-in produces.
func TemplateUser() User {
	return User{
		ID:                  "1",
		Name:                "David Rodriguez",
		BiblicalName:        "David",
		Emoji:               "👑",
		JoinDate:            "Enero 2024",
		NotesCount:          15,
		ParticipationsCount: 127,
		Bio:                 "Siervo de Dios, buscando Su voluntad cada día. Amante de Su Palabra y de compartir Su amor con otros.",
		Apuntes: []string{
			"Génesis 1:1 - El principio (בְּרֵאשִׁית): Representa el momento donde todo comenzó, la primera palabra de la Torá que establece a Dios como creador absoluto.",
			"Éxodo 3:14 - Yo soy (אהיה): Esta expresión revela la naturaleza eterna e inmutable de Dios, su existencia no depende de nada externo.",
		},
		Ilustraciones: []string{
			"Génesis 6:4 - Los gigantes (נפילים): En el contexto hebreo, estos seres representan la corrupción que surge cuando se mezcla lo sagrado con lo profano.",
			"Mateo 10:34 - La espada (μάχαιρα): En griego, esta palabra implica una división necesaria, como la que hace un cirujano para sanar.",
		},
		Traducciones: []string{
			"Isaías 45:7 - Crear el mal (רע): La palabra hebrea 'ra' puede traducirse como calamidad, adversidad o juicio, no necesariamente maldad moral.",
			"Salmos 23:1 - Pastor (רעה): Implica no solo cuidado, sino liderazgo activo y protección constante del rebaño.",
		},
		SavedNotes: []SavedNote{
			{
				ID:    "note1",
				Title: "Reflexión sobre Génesis 1:1",
				Content: "El principio de todo lo creado nos recuerda que Dios es el origen de toda existencia. " +
					"Cada día debemos recordar que somos parte de Su creación perfecta.",
				Date:           "2024-01-15",
				VerseReference: "Génesis 1:1",
			},
			{
				ID:    "note2",
				Title: "La importancia de la oración",
				Content: "La oración no es solo pedir, sino también escuchar. " +
					"En el silencio encontramos la voz de Dios que nos guía en cada decisión.",
				Date: "2024-01-10",
			},
			{
				ID:    "note3",
				Title: "Meditación sobre el amor de Dios",
				Content: "El amor de Dios es incondicional y eterno. No importa cuántas veces fallemos, " +
					"Él siempre está dispuesto a perdonarnos y restaurarnos.",
				Date:           "2024-01-08",
				VerseReference: "1 Juan 4:8",
			},
		},
	}
}

// FromPersona builds the template user with the chosen persona's name and
// emoji merged in. Used by the registration flow.
func FromPersona(ch scripture.Character) User {
	u := TemplateUser()
	u.BiblicalName = ch.Name
	u.Emoji = ch.Emoji
	return u
}

func (u User) clone() User {
	out := u
	out.Apuntes = append([]string(nil), u.Apuntes...)
	out.Ilustraciones = append([]string(nil), u.Ilustraciones...)
	out.Traducciones = append([]string(nil), u.Traducciones...)
	out.SavedNotes = append([]SavedNote(nil), u.SavedNotes...)
	return out
}

// WithAnnotation returns a copy with text appended to the collection named
// by category. Unknown categories leave the user unchanged.
func (u User) WithAnnotation(category AnnotationCategory, text string) User {
	out := u.clone()
	switch category {
	case CategoryApuntes:
		out.Apuntes = append(out.Apuntes, text)
	case CategoryIlustra:
		out.Ilustraciones = append(out.Ilustraciones, text)
	case CategoryTraduce:
		out.Traducciones = append(out.Traducciones, text)
	}
	return out
}

// NewNote builds a saved note dated today.
func NewNote(title, content, verseReference string) SavedNote {
	return SavedNote{
		ID:             "note-" + uuid.NewString(),
		Title:          title,
		Content:        content,
		Date:           time.Now().Format("2006-01-02"),
		VerseReference: verseReference,
	}
}

// WithNote returns a copy with the note appended.
func (u User) WithNote(n SavedNote) User {
	out := u.clone()
	out.SavedNotes = append(out.SavedNotes, n)
	return out
}

// WithUpdatedNote returns a copy with the matching note's title and content
// replaced. A missing id leaves the sequence unchanged.
func (u User) WithUpdatedNote(id, title, content string) User {
	out := u.clone()
	for i, n := range out.SavedNotes {
		if n.ID == id {
			n.Title = title
			n.Content = content
			out.SavedNotes[i] = n
			break
		}
	}
	return out
}

// WithoutNote returns a copy with the matching note removed.
func (u User) WithoutNote(id string) User {
	out := u.clone()
	notes := out.SavedNotes[:0]
	for _, n := range out.SavedNotes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	out.SavedNotes = notes
	return out
}
