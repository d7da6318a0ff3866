package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/fours-cli/internal/terminal"
)

// Run holds the terminal for the whole browse session, paging included, and
// returns the final model. A pager still open when the program stops is
// joined before Run returns. Work started by the model, feeders included,
// is cancelled when Run returns even if the program never hands back a
// final model.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.ctx = ctx

	final, err := terminal.Run(ctx, m, opts...)
	fm, ok := final.(Model)
	if !ok {
		return m, err
	}
	if fm.feed != nil {
		err = errors.Join(err, fm.feed.Close())
		fm.feed = nil
	}
	return fm, err
}
