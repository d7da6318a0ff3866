// Package terminal owns the process terminal for the duration of an
// interactive session.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// FrameRate bounds redraws to one frame every 50ms.
const FrameRate = 20

var (
	ErrNotTerminal = errors.New("not a terminal")
	// ErrPanicked is reported when the program panicked; the terminal has
	// already been restored by then.
	ErrPanicked = errors.New("program panicked")
)

type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// Require fails unless f is attached to a terminal.
func Require(f *os.File) error {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return &TerminalError{Op: "acquire", Err: ErrNotTerminal}
	}
	return nil
}

// Run enters raw mode and the alternate screen, runs model on the calling
// goroutine and restores the terminal on every exit path. Extra options are
// applied after the defaults.
func Run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(FrameRate),
	}, opts...)

	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return final, &TerminalError{Op: "run", Err: ctx.Err()}
		}
		return final, &TerminalError{Op: "run", Err: err}
	}
	if final == nil {
		return nil, &TerminalError{Op: "run", Err: ErrPanicked}
	}
	return final, nil
}
