package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"apocalipsis/internal/scripture"
	"apocalipsis/internal/session"
)

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.sess.Login()
		m.resetCursor()
		return m, nil
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "r":
			m.sess.View = session.ViewRegister
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.View = session.ViewLogin
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.regFocus = (m.regFocus + 1) % len(m.regInputs)
		m.focusRegInput()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.regFocus = (m.regFocus - 1 + len(m.regInputs)) % len(m.regInputs)
		m.focusRegInput()
		return m, nil
	case tea.KeyLeft:
		m.sess.PrevCharacter()
		return m, nil
	case tea.KeyRight:
		m.sess.NextCharacter()
		return m, nil
	case tea.KeyCtrlE:
		m.sess.ChooseCharacter()
		return m, nil
	case tea.KeyEnter:
		m.syncRegisterForm()
		m.sess.Register()
		if m.sess.View == session.ViewHome {
			m.resetCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.regInputs[m.regFocus], cmd = m.regInputs[m.regFocus].Update(msg)
	return m, cmd
}

func (m *Model) focusRegInput() {
	for i := range m.regInputs {
		if i == m.regFocus {
			m.regInputs[i].Focus()
		} else {
			m.regInputs[i].Blur()
		}
	}
}

func (m *Model) syncRegisterForm() {
	m.sess.Auth.RegisterName = m.regInputs[0].Value()
	m.sess.Auth.RegisterEmail = m.regInputs[1].Value()
	m.sess.Auth.Password = m.regInputs[2].Value()
	m.sess.Auth.ConfirmPassword = m.regInputs[3].Value()
}

// authHeader is the shared banner with the rotating word.
func (m Model) authHeader() string {
	title := m.styles.Header.Render("Apocalipsis ✝")
	sub := m.styles.Dim.Render("(The Revelation)")
	word := m.styles.Accent.Render(scripture.DynamicWords[m.wordIndex])
	tagline := m.styles.Text.Render("Cuando Dios llega a nuestra vida, el miedo se convierte en ") + word
	return lipgloss.JoinVertical(lipgloss.Center, title, sub, "", tagline)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.centerText(m.authHeader()))
	b.WriteString("\n\n")
	b.WriteString(m.centerText(m.styles.Card.Render(
		m.styles.Text.Render("Correo y contraseña no se validan en esta demo.") + "\n" +
			m.styles.Accent.Render("Enter") + m.styles.Text.Render(" Iniciar sesión"))))
	b.WriteString("\n")
	b.WriteString(m.centerText(m.styles.Help.Render("enter: entrar • r: regístrate aquí • q: salir")))
	return b.String()
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(m.centerText(m.authHeader()))
	b.WriteString("\n\n")

	labels := []string{"Nombre", "Correo", "Contraseña", "Confirmar Contraseña"}
	for i, in := range m.regInputs {
		b.WriteString("  " + m.styles.Accent.Render(labels[i]) + "\n")
		b.WriteString("  " + in.View() + "\n")
	}

	b.WriteString("\n  " + m.styles.Header.Render("Elige tu personaje bíblico") + "\n")
	chars := m.sess.Catalog.Characters()
	ch := chars[m.sess.Auth.CharacterIndex]
	carousel := fmt.Sprintf("◀  %s %s  ▶", ch.Emoji, ch.Name)
	if sel := m.sess.Auth.SelectedCharacter; sel != nil && sel.Name == ch.Name {
		carousel += m.styles.Success.Render("  ✓ elegido")
	}
	b.WriteString("  " + m.styles.Text.Render(carousel) + "\n")

	if m.sess.Auth.Err != "" {
		b.WriteString("\n  " + m.styles.Error.Render(m.sess.Auth.Err) + "\n")
	}

	b.WriteString(m.styles.Help.Render("  tab: campo • ←/→: personaje • ctrl+e: elegir • enter: crear cuenta • esc: volver"))
	return b.String()
}

func (m Model) centerText(text string) string {
	var out strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		w := lipgloss.Width(line)
		if w < m.width {
			out.WriteString(strings.Repeat(" ", (m.width-w)/2))
		}
		out.WriteString(line)
	}
	return out.String()
}
