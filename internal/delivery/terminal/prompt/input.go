package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	message string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(message string) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Width = defaultWidth
	ti.Focus()
	return inputModel{message: message, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return questionStyle.Render(m.message) + " " + answerStyle.Render(m.input.Value()) + "\n"
	}
	if m.aborted {
		return ""
	}
	return questionStyle.Render(m.message) + "\n" + m.input.View() + "\n"
}
