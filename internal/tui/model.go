// Package tui is the interactive catalog browser. It lists the threads of a
// board catalog and opens the selected one in an embedded pager.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/fours-cli/internal/board"
	"github.com/glabrego/fours-cli/internal/pager"
	"github.com/glabrego/fours-cli/internal/render"
	"github.com/glabrego/fours-cli/internal/tui/actions"
	"github.com/glabrego/fours-cli/internal/tui/platform"
	tuistate "github.com/glabrego/fours-cli/internal/tui/state"
	tuitheme "github.com/glabrego/fours-cli/internal/tui/theme"
	tuiview "github.com/glabrego/fours-cli/internal/tui/view"
)

type State int

const (
	StateBrowsing State = iota
	StatePaging
	StateExited
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StatePaging:
		return "paging"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type clearStatusMsg struct {
	id int
}

type Option func(*Model)

func WithRenderOptions(opts render.Options) Option {
	return func(m *Model) {
		m.renderOpts = opts
	}
}

// WithURLHandlers replaces the browser and clipboard integrations.
func WithURLHandlers(openFn, copyFn func(string) error) Option {
	return func(m *Model) {
		m.openURLFn = openFn
		m.copyURLFn = copyFn
	}
}

func WithNumbers(show bool) Option {
	return func(m *Model) {
		m.showNumbers = show
	}
}

func WithTheme(th tuitheme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

type Model struct {
	ctx         context.Context
	fetcher     board.Fetcher
	catalog     *board.Catalog
	renderOpts  render.Options
	keys        keyMap
	theme       tuitheme.Theme
	state       State
	opening     bool
	openingID   int64
	reloading   bool
	thread      *board.Thread
	feed        *pager.Feed
	pager       pager.Model
	width       int
	height      int
	showNumbers bool
	status      string
	statusID    int
	err         error
	openURLFn   func(string) error
	copyURLFn   func(string) error
}

func NewModel(ctx context.Context, fetcher board.Fetcher, catalog *board.Catalog, opts ...Option) Model {
	m := Model{
		ctx:        ctx,
		fetcher:    fetcher,
		catalog:    catalog,
		renderOpts: render.DefaultOptions,
		keys:       defaultKeyMap(),
		theme:      tuitheme.Default(),
		state:      StateBrowsing,
		openURLFn:  platform.OpenURLInBrowser,
		copyURLFn:  platform.CopyURLToClipboard,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) State() State {
	return m.state
}

func (m Model) Catalog() *board.Catalog {
	return m.catalog
}

// Err is the last error shown in the status line.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StatePaging {
			var cmd tea.Cmd
			m.pager, cmd = m.pager.Update(msg)
			return m, cmd
		}
		return m, nil
	case actions.ThreadOpenedMsg:
		return m.startPaging(msg)
	case actions.ThreadErrorMsg:
		if !m.opening || msg.ID != m.openingID {
			return m, nil
		}
		m.opening = false
		m.status = ""
		m.err = msg.Err
		slog.Warn("open thread failed", "thread", msg.ID, "err", msg.Err, "duration", msg.Duration)
		return m, nil
	case actions.CatalogLoadedMsg:
		m.reloading = false
		m.err = nil
		cursor := m.catalog.Cursor()
		m.catalog = msg.Catalog
		m.catalog.MoveTo(cursor)
		return m.setStatus(fmt.Sprintf("Reloaded %d threads in %s", m.catalog.Len(), msg.Duration.Round(time.Millisecond)), 3*time.Second)
	case actions.CatalogErrorMsg:
		m.reloading = false
		m.status = ""
		m.err = msg.Err
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.err = nil
		return m.setStatus(msg.Status, 3*time.Second)
	case actions.OpenURLErrorMsg:
		m.status = ""
		m.err = msg.Err
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case pager.ClosedMsg:
		if m.state != StatePaging || msg.FeedID != m.feed.ID() {
			return m, nil
		}
		return m.closePager()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			return m.exit()
		}
		if m.state == StatePaging {
			var cmd tea.Cmd
			m.pager, cmd = m.pager.Update(msg)
			return m, cmd
		}
		if m.state == StateBrowsing {
			return m.handleBrowseKey(msg)
		}
		return m, nil
	}

	if m.state == StatePaging {
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.exit()
	}
	if m.opening || m.reloading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.catalog.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.catalog.MoveUp()
	case key.Matches(msg, m.keys.Top):
		m.catalog.MoveFirst()
	case key.Matches(msg, m.keys.Bottom):
		m.catalog.MoveLast()
	case key.Matches(msg, m.keys.PageDown):
		m.catalog.MoveTo(m.catalog.Cursor() + tuistate.PageStep(m.height, m.hasStatus()))
	case key.Matches(msg, m.keys.PageUp):
		m.catalog.MoveTo(m.catalog.Cursor() - tuistate.PageStep(m.height, m.hasStatus()))
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Browser):
		url, ok := m.catalog.ThreadURL()
		if !ok {
			m.err = board.ErrNotFound
			return m, nil
		}
		return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
	case key.Matches(msg, m.keys.Copy):
		url, ok := m.catalog.ThreadURL()
		if !ok {
			m.err = board.ErrNotFound
			return m, nil
		}
		return m, actions.CopyURLCmd(url, m.copyURLFn)
	case key.Matches(msg, m.keys.Reload):
		m.reloading = true
		m.err = nil
		m.status = "Reloading catalog..."
		return m, actions.ReloadCatalogCmd(m.ctx, m.fetcher, m.catalog.Board())
	}
	return m, nil
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	post, ok := m.catalog.Selected()
	if !ok {
		m.err = board.ErrNotFound
		return m, nil
	}
	m.opening = true
	m.openingID = post.No
	m.err = nil
	m.status = fmt.Sprintf("Opening thread %d...", post.No)
	return m, actions.OpenThreadCmd(m.ctx, m.fetcher, m.catalog.Board(), post.No, m.renderOpts)
}

func (m Model) startPaging(msg actions.ThreadOpenedMsg) (tea.Model, tea.Cmd) {
	if !m.opening || msg.Thread.ID() != m.openingID {
		return m, nil
	}
	m.opening = false
	m.status = ""
	m.err = nil
	m.thread = msg.Thread
	m.feed = pager.StartFeed(m.ctx, msg.Body)

	var opts []pager.Option
	if m.width > 0 && m.height > 0 {
		opts = append(opts, pager.WithSize(m.width, m.height))
	}
	opts = append(opts, pager.WithPromptStyle(m.theme.Prompt))
	m.pager = pager.New(render.Leftpad(msg.Thread.URL(), m.promptWidth()), m.feed, opts...)
	m.state = StatePaging
	slog.Debug("thread opened", "thread", msg.Thread.ID(), "posts", len(msg.Thread.Posts()), "duration", msg.Duration)
	return m, m.pager.Init()
}

func (m Model) closePager() (tea.Model, tea.Cmd) {
	id := m.thread.ID()
	err := m.feed.Close()
	m.feed = nil
	m.thread = nil
	m.state = StateBrowsing
	if err != nil {
		m.err = err
		return m, nil
	}
	return m.setStatus(fmt.Sprintf("Closed thread %d", id), 3*time.Second)
}

func (m Model) exit() (tea.Model, tea.Cmd) {
	if m.feed != nil {
		if err := m.feed.Close(); err != nil {
			m.err = err
		}
		m.feed = nil
	}
	m.state = StateExited
	return m, tea.Quit
}

func (m Model) setStatus(status string, after time.Duration) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = status
	return m, clearStatusCmd(m.statusID, after)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) promptWidth() int {
	if m.renderOpts.Width < 1 {
		return render.DefaultWidth
	}
	return m.renderOpts.Width
}

func (m Model) hasStatus() bool {
	return m.status != "" || m.err != nil || m.opening || m.reloading
}

func (m Model) View() string {
	switch m.state {
	case StateExited:
		return ""
	case StatePaging:
		return m.pager.View()
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	total := m.catalog.Len()
	cursor := m.catalog.Cursor()

	var b strings.Builder
	b.WriteString(tuiview.Header(m.catalog.Board(), tuistate.Position(cursor, total), m.theme))
	b.WriteString("\n")

	if total == 0 {
		b.WriteString(fmt.Sprintf("No threads with a subject on /%s/\n", m.catalog.Board()))
	} else {
		start, end := tuistate.CenteredWindow(total, cursor, tuistate.ListHeight(m.height, m.hasStatus()))
		posts := m.catalog.Posts()
		b.WriteString(tuiview.RenderListBody(tuiview.ListRenderInput{
			Total:  total,
			Start:  start,
			End:    end,
			Cursor: cursor,
			RenderLine: func(i int, active bool) string {
				return tuiview.RenderThreadLine(tuiview.ThreadLineParams{
					Post:        posts[i],
					Pos:         i,
					ShowNumbers: m.showNumbers,
					Active:      active,
					Busy:        m.opening && posts[i].No == m.openingID,
					Width:       width,
				}, m.theme)
			},
		}))
	}

	b.WriteString("\n")
	if m.hasStatus() {
		warning := ""
		if m.err != nil {
			warning = m.err.Error()
		}
		b.WriteString(tuiview.StatusLine(m.opening || m.reloading, m.err != nil, m.status, warning, m.theme))
		b.WriteString("\n")
	}
	b.WriteString(tuiview.Footer(m.catalog.Board(), total, len(m.catalog.Pages()), m.theme))
	b.WriteString("\n")
	b.WriteString(tuiview.Toolbar(false))
	return b.String()
}
