package pager

import (
	"context"
	"errors"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/fours-cli/internal/terminal"
)

// ErrBusy is returned when a standalone session is already running.
var ErrBusy = errors.New("pager session already active")

var active atomic.Bool

type session struct {
	pager Model
}

func (s session) Init() tea.Cmd {
	return s.pager.Init()
}

func (s session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if closed, ok := msg.(ClosedMsg); ok && closed.FeedID == s.pager.feed.ID() {
		return s, tea.Quit
	}
	var cmd tea.Cmd
	s.pager, cmd = s.pager.Update(msg)
	return s, cmd
}

func (s session) View() string {
	return s.pager.View()
}

// Run shows body in a full-screen pager until the user closes it. The view
// runs on the calling goroutine while a feeder goroutine supplies content;
// the feeder is always joined before Run returns.
func Run(ctx context.Context, prompt, body string, opts ...tea.ProgramOption) error {
	if !active.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer active.Store(false)

	feed := StartFeed(ctx, body)
	_, runErr := terminal.Run(ctx, session{pager: New(prompt, feed)}, opts...)
	return errors.Join(runErr, feed.Close())
}
