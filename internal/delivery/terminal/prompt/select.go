package prompt

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"employee-tracker/internal/domain"
)

const (
	defaultWidth  = 60
	maxListHeight = 20
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
)

// choiceItem implements list.Item for a domain.Choice
type choiceItem struct {
	choice domain.Choice
}

func (i choiceItem) Title() string       { return i.choice.Label }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return i.choice.Label }

type selectModel struct {
	message  string
	list     list.Model
	selected *domain.Choice
	aborted  bool
}

func newSelectModel(message string, choices []domain.Choice) selectModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem{choice: c}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, defaultWidth, listHeight(len(items)))
	l.Title = message
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return selectModel{message: message, list: l}
}

// listHeight leaves room for the title above the items.
func listHeight(items int) int {
	return min(items+4, maxListHeight)
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(choiceItem)
			if !ok {
				return m, nil
			}
			choice := item.choice
			m.selected = &choice
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.selected != nil {
		return questionStyle.Render(m.message) + " " + answerStyle.Render(m.selected.Label) + "\n"
	}
	if m.aborted {
		return ""
	}
	return m.list.View()
}
