package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"apocalipsis/internal/scripture"
	"apocalipsis/internal/session"
)

// Cosmetic timer messages. The rotating word and the notebook pulse never
// touch the session's selection state.
type (
	rotateWordMsg time.Time
	pulseOnMsg    time.Time
	pulseOffMsg   struct{}
)

func rotateTick() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return rotateWordMsg(t) })
}

func pulseTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return pulseOnMsg(t) })
}

func pulseOff() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg { return pulseOffMsg{} })
}

// Model is the Bubble Tea shell around the session. Cursor and input
// component state lives here; everything the spec calls state lives in
// the session.
type Model struct {
	sess   *session.Session
	styles Styles

	width  int
	height int

	searchInput  textinput.Model
	commentInput textinput.Model
	wordInput    textinput.Model
	proverbInput textinput.Model
	noteTitle    textinput.Model
	noteBody     textarea.Model
	verseNotes   textarea.Model
	regInputs    []textinput.Model
	regFocus     int
	tagInput     textinput.Model

	cursor        int
	scroll        int
	overlayCursor int

	// comment the tag wizard will reply to
	tagCommentID string

	// index of the word captured for highlighting; -1 when none
	verseWord int

	wordIndex int
	pulse     bool

	lastShareURL string
}

// New builds the model over a fresh session.
func New(sess *session.Session, styles Styles) Model {
	search := textinput.New()
	search.Placeholder = "Buscar en las Escrituras..."
	search.CharLimit = 120

	comment := textinput.New()
	comment.Placeholder = "Comparte tu reflexión..."
	comment.CharLimit = 280

	word := textinput.New()
	word.Placeholder = "Tu anotación sobre esta palabra..."
	word.CharLimit = 280

	proverb := textinput.New()
	proverb.Placeholder = "Escribe tu proverbio..."
	proverb.CharLimit = 200

	title := textinput.New()
	title.Placeholder = "Título de la nota"
	title.CharLimit = 80

	body := textarea.New()
	body.Placeholder = "Contenido de la nota..."

	notes := textarea.New()
	notes.Placeholder = "Tus apuntes personales sobre este versículo..."

	tag := textinput.New()
	tag.Placeholder = "Tu comentario sobre la referencia..."
	tag.CharLimit = 200

	regInputs := make([]textinput.Model, 4)
	for i, ph := range []string{"Tu nombre completo", "tu.correo@ejemplo.com", "Tu contraseña", "Confirma tu contraseña"} {
		in := textinput.New()
		in.Placeholder = ph
		if i >= 2 {
			in.EchoMode = textinput.EchoPassword
		}
		regInputs[i] = in
	}
	regInputs[0].Focus()

	sess.Highlight = func(match string) string { return styles.Highlight.Render(match) }

	return Model{
		sess:         sess,
		styles:       styles,
		width:        80,
		height:       24,
		searchInput:  search,
		commentInput: comment,
		wordInput:    word,
		proverbInput: proverb,
		noteTitle:    title,
		noteBody:     body,
		verseNotes:   notes,
		regInputs:    regInputs,
		tagInput:     tag,
		verseWord:    -1,
	}
}

// Init starts the two cosmetic timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(rotateTick(), pulseTick(), textinput.Blink)
}

// Update routes messages to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.noteBody.SetWidth(min(70, m.width-8))
		m.verseNotes.SetWidth(min(70, m.width-8))
		return m, nil

	case rotateWordMsg:
		m.wordIndex = (m.wordIndex + 1) % len(scripture.DynamicWords)
		return m, rotateTick()

	case pulseOnMsg:
		m.pulse = true
		return m, tea.Batch(pulseTick(), pulseOff())

	case pulseOffMsg:
		m.pulse = false
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.sess.Notice != "" {
			m.sess.ClearNotice()
		}
		if m.sess.Overlay != session.OverlayNone {
			return m.updateOverlay(msg)
		}
		switch m.sess.View {
		case session.ViewLogin:
			return m.updateLogin(msg)
		case session.ViewRegister:
			return m.updateRegister(msg)
		case session.ViewHome:
			return m.updateHome(msg)
		case session.ViewSearch:
			return m.updateSearch(msg)
		case session.ViewResults:
			return m.updateResults(msg)
		case session.ViewBooks:
			return m.updateBooks(msg)
		case session.ViewChapters:
			return m.updateChapters(msg)
		case session.ViewVerses:
			return m.updateVerses(msg)
		case session.ViewVerse:
			return m.updateVerse(msg)
		case session.ViewTranslation:
			return m.updateTranslation(msg)
		case session.ViewBibleReading:
			return m.updateReading(msg)
		case session.ViewProfile:
			return m.updateProfile(msg)
		case session.ViewSaved:
			return m.updateSaved(msg)
		}
	}
	return m, nil
}

// View renders the active view, with the overlay on top when one is open.
func (m Model) View() string {
	var page string
	switch m.sess.View {
	case session.ViewLogin:
		page = m.viewLogin()
	case session.ViewRegister:
		page = m.viewRegister()
	case session.ViewHome:
		page = m.viewHome()
	case session.ViewSearch:
		page = m.viewSearch()
	case session.ViewResults:
		page = m.viewResults()
	case session.ViewBooks:
		page = m.viewBooks()
	case session.ViewChapters:
		page = m.viewChapters()
	case session.ViewVerses:
		page = m.viewVerses()
	case session.ViewVerse:
		page = m.viewVerse()
	case session.ViewTranslation:
		page = m.viewTranslation()
	case session.ViewBibleReading:
		page = m.viewReading()
	case session.ViewProfile:
		page = m.viewProfile()
	case session.ViewSaved:
		page = m.viewSaved()
	}
	if m.sess.Overlay != session.OverlayNone {
		page = m.viewOverlay()
	}
	if m.sess.Notice != "" {
		page += "\n" + m.styles.Success.Render(m.sess.Notice)
	}
	return page
}

// goTo resets list plumbing when the session changes view.
func (m *Model) resetCursor() {
	m.cursor = 0
	m.scroll = 0
	m.verseWord = -1
}

func (m *Model) moveCursor(delta, listLen int) {
	if listLen == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= listLen {
		m.cursor = listLen - 1
	}
}
