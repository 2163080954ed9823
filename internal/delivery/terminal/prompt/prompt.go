// Package prompt asks the user for text and for one entry out of a list.
// Each question runs as its own short bubbletea program, so prompts and the
// queries between them stay strictly sequential.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"employee-tracker/internal/domain"
)

var (
	// ErrAborted is returned when the user leaves a prompt with Esc or Ctrl+C.
	ErrAborted = errors.New("prompt aborted")
	// ErrNoChoices is returned by Select for an empty list; callers are
	// expected to check before asking.
	ErrNoChoices = errors.New("prompt: no choices to select from")
)

type Prompter interface {
	Input(message string) (string, error)
	Select(message string, choices []domain.Choice) (domain.Choice, error)
}

// Terminal prompts on a real terminal. Nil In/Out fall back to bubbletea's
// defaults (stdin/stdout).
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}
	return tea.NewProgram(model, opts...).Run()
}

func (t *Terminal) Input(message string) (string, error) {
	final, err := t.run(newInputModel(message))
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", message, err)
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.input.Value()), nil
}

func (t *Terminal) Select(message string, choices []domain.Choice) (domain.Choice, error) {
	if len(choices) == 0 {
		return domain.Choice{}, ErrNoChoices
	}
	final, err := t.run(newSelectModel(message, choices))
	if err != nil {
		return domain.Choice{}, fmt.Errorf("prompt %q: %w", message, err)
	}
	m := final.(selectModel)
	if m.aborted || m.selected == nil {
		return domain.Choice{}, ErrAborted
	}
	return *m.selected, nil
}
