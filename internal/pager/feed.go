package pager

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const chunkLines = 64

// ChunkMsg carries the next piece of a feed's document.
type ChunkMsg struct {
	FeedID int64
	Text   string
}

// DoneMsg is delivered once a feed has no more content.
type DoneMsg struct {
	FeedID int64
}

var lastFeedID atomic.Int64

// Feed pushes a document to a pager from a background goroutine, in chunks
// of whole lines, until the document is exhausted or the feed is closed.
type Feed struct {
	id     int64
	parent context.Context
	chunks chan string
	cancel context.CancelFunc
	group  *errgroup.Group

	closeOnce sync.Once
	err       error
}

func StartFeed(ctx context.Context, body string) *Feed {
	feedCtx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(feedCtx)
	f := &Feed{
		id:     lastFeedID.Add(1),
		parent: ctx,
		chunks: make(chan string),
		cancel: cancel,
		group:  group,
	}
	group.Go(func() error {
		defer close(f.chunks)
		for _, chunk := range splitChunks(body, chunkLines) {
			select {
			case f.chunks <- chunk:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})
	return f
}

func (f *Feed) ID() int64 {
	return f.id
}

// Next returns a command that waits for the next chunk.
func (f *Feed) Next() tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-f.chunks
		if !ok {
			return DoneMsg{FeedID: f.id}
		}
		return ChunkMsg{FeedID: f.id, Text: chunk}
	}
}

// Close stops the feeder and waits for it to exit. Stopping a feed early is
// not an error; cancellation of the parent context is.
func (f *Feed) Close() error {
	f.closeOnce.Do(func() {
		f.cancel()
		err := f.group.Wait()
		if errors.Is(err, context.Canceled) && f.parent.Err() == nil {
			err = nil
		}
		f.err = err
	})
	return f.err
}

func splitChunks(body string, lines int) []string {
	if lines < 1 {
		lines = 1
	}
	chunks := make([]string, 0, strings.Count(body, "\n")/lines+1)
	for body != "" {
		end := 0
		for n := 0; n < lines && end < len(body); n++ {
			i := strings.IndexByte(body[end:], '\n')
			if i < 0 {
				end = len(body)
				break
			}
			end += i + 1
		}
		chunks = append(chunks, body[:end])
		body = body[end:]
	}
	return chunks
}
