package actions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/fours-cli/internal/board"
	"github.com/glabrego/fours-cli/internal/render"
)

type ThreadOpenedMsg struct {
	Thread   *board.Thread
	Body     string
	Duration time.Duration
}

type ThreadErrorMsg struct {
	ID       int64
	Err      error
	Duration time.Duration
}

type CatalogLoadedMsg struct {
	Catalog  *board.Catalog
	Duration time.Duration
}

type CatalogErrorMsg struct {
	Err error
}

type OpenURLSuccessMsg struct {
	Status string
}

type OpenURLErrorMsg struct {
	Err error
}

// OpenThreadCmd fetches thread id and renders it off the event loop. A panic
// while fetching or rendering is reported as a ThreadErrorMsg.
func OpenThreadCmd(ctx context.Context, fetcher board.Fetcher, boardName string, id int64, opts render.Options) tea.Cmd {
	return func() (msg tea.Msg) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("open thread panicked", "board", boardName, "thread", id, "panic", r)
				msg = ThreadErrorMsg{ID: id, Err: fmt.Errorf("open thread %d: panic: %v", id, r), Duration: time.Since(start)}
			}
		}()

		thread, err := board.NewThread(ctx, fetcher, boardName, id)
		if err != nil {
			return ThreadErrorMsg{ID: id, Err: err, Duration: time.Since(start)}
		}
		body, err := thread.Render(opts)
		if err != nil {
			return ThreadErrorMsg{ID: id, Err: err, Duration: time.Since(start)}
		}
		return ThreadOpenedMsg{Thread: thread, Body: body, Duration: time.Since(start)}
	}
}

func ReloadCatalogCmd(ctx context.Context, fetcher board.Fetcher, boardName string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		catalog, err := board.NewCatalog(ctx, fetcher, boardName)
		if err != nil {
			return CatalogErrorMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: catalog, Duration: time.Since(start)}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened thread in browser"}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}
