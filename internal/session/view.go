package session

// View names one screen of the app. The session is always in exactly one
// view; transitions happen only in response to user intents.
type View string

const (
	ViewLogin        View = "login"
	ViewRegister     View = "register"
	ViewHome         View = "home"
	ViewSearch       View = "search"
	ViewResults      View = "results"
	ViewVerse        View = "verse"
	ViewBooks        View = "books"
	ViewChapters     View = "chapters"
	ViewVerses       View = "verses"
	ViewProfile      View = "profile"
	ViewTranslation  View = "translation"
	ViewBibleReading View = "bible-reading"
	ViewSaved        View = "saved"
)

// Overlay is the single active modal dialog. At most one overlay is
// visible at a time; OverlayNone means the underlying view has focus.
type Overlay string

const (
	OverlayNone       Overlay = ""
	OverlayMenu       Overlay = "menu"
	OverlayNotebook   Overlay = "notebook"
	OverlayProverbio  Overlay = "proverbio"
	OverlayTag        Overlay = "tag"
	OverlayNotes      Overlay = "notes"
	OverlayTextFormat Overlay = "text-format"
	OverlayShare      Overlay = "share"
	OverlayWordTools  Overlay = "word-tools"
)

// Filter labels for the search screen.
const (
	FilterTodo  = "TODO"
	FilterOld   = "AT"
	FilterNew   = "NT"
	FilterLibro = "LIBRO"
)
