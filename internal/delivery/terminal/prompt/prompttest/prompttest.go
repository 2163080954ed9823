// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"fmt"
	"testing"

	"employee-tracker/internal/delivery/terminal/prompt"
	"employee-tracker/internal/domain"
)

// Abort in a script answers the prompt as if the user pressed Esc.
const Abort = "\x1b"

// Script answers prompts from a fixed list, in order. Select answers are
// matched against choice labels.
type Script struct {
	t       testing.TB
	answers []string

	// Asked records every prompt message in order.
	Asked []string
	// Choices records the list offered by each Select, keyed by message.
	Choices map[string][]domain.Choice
}

func New(t testing.TB, answers ...string) *Script {
	return &Script{t: t, answers: answers, Choices: map[string][]domain.Choice{}}
}

// Remaining reports answers that were never consumed.
func (s *Script) Remaining() []string {
	return s.answers
}

func (s *Script) next(message string) (string, error) {
	s.Asked = append(s.Asked, message)
	if len(s.answers) == 0 {
		s.t.Errorf("unexpected prompt %q: script exhausted", message)
		return "", prompt.ErrAborted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	if answer == Abort {
		return "", prompt.ErrAborted
	}
	return answer, nil
}

func (s *Script) Input(message string) (string, error) {
	return s.next(message)
}

func (s *Script) Select(message string, choices []domain.Choice) (domain.Choice, error) {
	s.Choices[message] = choices
	if len(choices) == 0 {
		return domain.Choice{}, prompt.ErrNoChoices
	}
	answer, err := s.next(message)
	if err != nil {
		return domain.Choice{}, err
	}
	for _, c := range choices {
		if c.Label == answer {
			return c, nil
		}
	}
	s.t.Errorf("prompt %q has no choice %q", message, answer)
	return domain.Choice{}, fmt.Errorf("no choice %q", answer)
}
