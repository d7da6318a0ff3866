package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/fours-cli/internal/board"
	"github.com/glabrego/fours-cli/internal/export"
	"github.com/glabrego/fours-cli/internal/pager"
	"github.com/glabrego/fours-cli/internal/render"
	"github.com/glabrego/fours-cli/internal/tui"
)

type Service struct {
	fetcher     board.Fetcher
	renderOpts  render.Options
	outputDir   string
	programOpts []tea.ProgramOption
	tuiOpts     []tui.Option
}

type Option func(*Service)

// WithProgramOptions is passed to every terminal session the service starts.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(s *Service) {
		s.programOpts = append(s.programOpts, opts...)
	}
}

func WithTUIOptions(opts ...tui.Option) Option {
	return func(s *Service) {
		s.tuiOpts = append(s.tuiOpts, opts...)
	}
}

func NewService(fetcher board.Fetcher, renderOpts render.Options, outputDir string, opts ...Option) *Service {
	s := &Service{fetcher: fetcher, renderOpts: renderOpts, outputDir: outputDir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Catalog(ctx context.Context, boardID string) (*board.Catalog, error) {
	catalog, err := board.NewCatalog(ctx, s.fetcher, boardID)
	if err != nil {
		return nil, fmt.Errorf("load /%s/ catalog: %w", boardID, err)
	}
	slog.Debug("catalog loaded", "board", boardID, "pages", len(catalog.Pages()), "threads", catalog.Len())
	return catalog, nil
}

// FindThread returns the first catalog thread whose subject contains subject.
func (s *Service) FindThread(ctx context.Context, boardID, subject string) (*board.Thread, error) {
	catalog, err := s.Catalog(ctx, boardID)
	if err != nil {
		return nil, err
	}
	thread, err := catalog.FindThread(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("find %q on /%s/: %w", subject, boardID, err)
	}
	return thread, nil
}

func (s *Service) Thread(ctx context.Context, boardID string, id int64) (*board.Thread, error) {
	thread, err := board.NewThread(ctx, s.fetcher, boardID, id)
	if err != nil {
		return nil, fmt.Errorf("load thread %d on /%s/: %w", id, boardID, err)
	}
	return thread, nil
}

func (s *Service) Render(thread *board.Thread) (string, error) {
	return thread.Render(s.renderOpts)
}

// Write stores the rendered thread in the output directory and returns the
// file path.
func (s *Service) Write(thread *board.Thread) (string, error) {
	path, err := export.Write(s.outputDir, thread, s.renderOpts)
	if err != nil {
		return "", err
	}
	slog.Info("thread written", "board", thread.Board(), "thread", thread.ID(), "path", path)
	return path, nil
}

// Page shows the rendered thread in a full-screen pager and blocks until it
// is dismissed.
func (s *Service) Page(ctx context.Context, thread *board.Thread) error {
	body, err := s.Render(thread)
	if err != nil {
		return err
	}
	prompt := render.Leftpad(thread.URL(), s.renderOpts.Width)
	if err := pager.Run(ctx, prompt, body, s.programOpts...); err != nil {
		return fmt.Errorf("page thread %d: %w", thread.ID(), err)
	}
	return nil
}

// Browse loads the catalog and runs the interactive browser until the user
// quits.
func (s *Service) Browse(ctx context.Context, boardID string) error {
	catalog, err := s.Catalog(ctx, boardID)
	if err != nil {
		return err
	}
	opts := append([]tui.Option{tui.WithRenderOptions(s.renderOpts)}, s.tuiOpts...)
	final, err := tui.Run(ctx, tui.NewModel(ctx, s.fetcher, catalog, opts...), s.programOpts...)
	if err != nil {
		return fmt.Errorf("browse /%s/: %w", boardID, err)
	}
	slog.Debug("browse finished", "board", boardID, "state", final.State().String())
	return nil
}
