package actions

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/glabrego/fours-cli/internal/board"
	"github.com/glabrego/fours-cli/internal/fourchan"
	"github.com/glabrego/fours-cli/internal/render"
)

type fakeFetcher struct {
	pages      []fourchan.Page
	posts      []fourchan.Post
	catalogErr error
	threadErr  error
	panicOn    bool
	lastID     int64
}

func (f *fakeFetcher) FetchCatalog(_ context.Context, _ string) ([]fourchan.Page, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.pages, nil
}

func (f *fakeFetcher) FetchThread(_ context.Context, _ string, id int64) ([]fourchan.Post, error) {
	f.lastID = id
	if f.panicOn {
		panic("decoder exploded")
	}
	if f.threadErr != nil {
		return nil, f.threadErr
	}
	return f.posts, nil
}

func (f *fakeFetcher) Links() fourchan.Links {
	return fourchan.DefaultLinks()
}

func TestOpenThreadCmd_Success(t *testing.T) {
	f := &fakeFetcher{posts: []fourchan.Post{{No: 5, Subject: "s", Comment: "hello"}}}
	msg := OpenThreadCmd(context.Background(), f, "g", 5, render.DefaultOptions)()
	opened, ok := msg.(ThreadOpenedMsg)
	if !ok {
		t.Fatalf("expected ThreadOpenedMsg, got %T", msg)
	}
	if f.lastID != 5 || opened.Thread.ID() != 5 {
		t.Fatalf("unexpected thread id: fetched=%d opened=%d", f.lastID, opened.Thread.ID())
	}
	if !strings.Contains(opened.Body, "hello") {
		t.Fatalf("expected rendered body, got %q", opened.Body)
	}
}

func TestOpenThreadCmd_Errors(t *testing.T) {
	notFound := &fourchan.FetchError{Resource: "thread", StatusCode: http.StatusNotFound}
	cases := []struct {
		name    string
		fetcher *fakeFetcher
		check   func(error) bool
	}{
		{name: "fetch", fetcher: &fakeFetcher{threadErr: notFound}, check: func(err error) bool {
			var fe *fourchan.FetchError
			return errors.As(err, &fe) && fe.NotFound()
		}},
		{name: "format", fetcher: &fakeFetcher{}, check: func(err error) bool {
			var fe *fourchan.FormatError
			return errors.As(err, &fe)
		}},
		{name: "panic", fetcher: &fakeFetcher{panicOn: true}, check: func(err error) bool {
			return err != nil && strings.Contains(err.Error(), "decoder exploded")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := OpenThreadCmd(context.Background(), tc.fetcher, "g", 9, render.DefaultOptions)()
			failed, ok := msg.(ThreadErrorMsg)
			if !ok {
				t.Fatalf("expected ThreadErrorMsg, got %T", msg)
			}
			if failed.ID != 9 || !tc.check(failed.Err) {
				t.Fatalf("unexpected error msg: %+v", failed)
			}
		})
	}
}

func TestReloadCatalogCmd(t *testing.T) {
	f := &fakeFetcher{pages: []fourchan.Page{{Page: 1, Threads: []fourchan.Post{{No: 1, Subject: "a"}, {No: 2}}}}}
	msg := ReloadCatalogCmd(context.Background(), f, "g")()
	loaded, ok := msg.(CatalogLoadedMsg)
	if !ok {
		t.Fatalf("expected CatalogLoadedMsg, got %T", msg)
	}
	if loaded.Catalog.Len() != 1 {
		t.Fatalf("expected one flattened thread, got %d", loaded.Catalog.Len())
	}

	f.catalogErr = errors.New("down")
	if _, ok := ReloadCatalogCmd(context.Background(), f, "g")().(CatalogErrorMsg); !ok {
		t.Fatal("expected CatalogErrorMsg")
	}
}

func TestOpenURLCmd(t *testing.T) {
	ok := func(string) error { return nil }
	fail := func(string) error { return errors.New("nope") }

	if msg, _ := OpenURLCmd("https://x", ok, fail)().(OpenURLSuccessMsg); msg.Status != "Opened thread in browser" {
		t.Fatalf("expected opened success, got %+v", msg)
	}
	msg, isSuccess := OpenURLCmd("https://x", fail, ok)().(OpenURLSuccessMsg)
	if !isSuccess || !strings.Contains(msg.Status, "copied") {
		t.Fatalf("expected copy fallback, got %+v", msg)
	}
	if _, isErr := OpenURLCmd("https://x", fail, fail)().(OpenURLErrorMsg); !isErr {
		t.Fatal("expected OpenURLErrorMsg")
	}
}

func TestCopyURLCmd(t *testing.T) {
	var copied string
	copyFn := func(u string) error {
		copied = u
		return nil
	}
	if _, ok := CopyURLCmd("https://x", copyFn)().(OpenURLSuccessMsg); !ok || copied != "https://x" {
		t.Fatalf("expected copy success, copied=%q", copied)
	}
	if _, ok := CopyURLCmd("https://x", nil)().(OpenURLErrorMsg); !ok {
		t.Fatal("expected OpenURLErrorMsg without copy function")
	}
}

var _ board.Fetcher = (*fakeFetcher)(nil)
