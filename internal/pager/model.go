// Package pager is a scrollable view over a document delivered by a Feed.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ClosedMsg is emitted when the user dismisses the pager.
type ClosedMsg struct {
	FeedID int64
}

type Option func(*Model)

func WithSize(width, height int) Option {
	return func(m *Model) {
		m.resize(width, height)
	}
}

func WithPromptStyle(style lipgloss.Style) Option {
	return func(m *Model) {
		m.promptStyle = style
	}
}

type Model struct {
	prompt      string
	promptStyle lipgloss.Style
	feed        *Feed
	content     string
	done        bool
	width       int
	viewport    viewport.Model
	keys        keyMap
}

func New(prompt string, feed *Feed, opts ...Option) Model {
	m := Model{
		prompt:      prompt,
		promptStyle: lipgloss.NewStyle().Reverse(true),
		feed:        feed,
		viewport:    viewport.New(defaultWidth, defaultHeight-1),
		width:       defaultWidth,
		keys:        defaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m *Model) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height - 1
}

func (m Model) Init() tea.Cmd {
	return m.feed.Next()
}

func (m Model) Content() string {
	return m.content
}

func (m Model) Done() bool {
	return m.done
}

// reflow hard-wraps the content to the viewport width so that every line
// handed to the viewport is exactly one screen row.
func (m *Model) reflow() {
	if m.content == "" {
		return
	}
	m.viewport.SetContent(wrap.String(strings.TrimSuffix(m.content, "\n"), m.viewport.Width))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.reflow()
		return m, nil
	case ChunkMsg:
		if msg.FeedID != m.feed.ID() {
			return m, nil
		}
		m.content += msg.Text
		m.reflow()
		return m, m.feed.Next()
	case DoneMsg:
		if msg.FeedID == m.feed.ID() {
			m.done = true
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			id := m.feed.ID()
			return m, func() tea.Msg { return ClosedMsg{FeedID: id} }
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.promptLine()
}

func (m Model) promptLine() string {
	status := "(loading)"
	if m.done {
		status = fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	}
	line := m.prompt + " " + status
	return m.promptStyle.Render(ansi.Truncate(line, m.width, "…"))
}
