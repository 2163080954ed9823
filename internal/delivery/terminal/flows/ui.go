package flows

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"employee-tracker/internal/delivery/terminal/prompt"
	"employee-tracker/internal/delivery/terminal/render"
)

// UI is what a flow needs to talk to the user.
type UI struct {
	Prompt prompt.Prompter
	Out    io.Writer
	Log    *zap.Logger
}

func (ui UI) Success(msg string) {
	fmt.Fprintln(ui.Out, render.Success(msg))
}

func (ui UI) Notice(msg string) {
	fmt.Fprintln(ui.Out, render.Notice(msg))
}

// Print writes a rendered block followed by a newline.
func (ui UI) Print(block string) {
	fmt.Fprintln(ui.Out, block)
}

// cancelled turns an aborted prompt into a quiet return to the menu. Any
// other error is passed through.
func (ui UI) cancelled(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		ui.Notice("Cancelled.")
		return nil
	}
	return err
}
