package board

import (
	"context"
	"errors"
	"strings"

	"github.com/glabrego/fours-cli/internal/fourchan"
)

// ErrNotFound is returned when no catalog entry matches or the list is empty.
var ErrNotFound = errors.New("thread not found")

type Fetcher interface {
	FetchCatalog(ctx context.Context, board string) ([]fourchan.Page, error)
	FetchThread(ctx context.Context, board string, id int64) ([]fourchan.Post, error)
	Links() fourchan.Links
}

// Catalog is one fetched board catalog. Posts holds the opening posts that
// carry a subject, flattened in page then position order.
type Catalog struct {
	board   string
	fetcher Fetcher
	pages   []fourchan.Page
	posts   []fourchan.Post
	cursor  int
}

func NewCatalog(ctx context.Context, fetcher Fetcher, board string) (*Catalog, error) {
	pages, err := fetcher.FetchCatalog(ctx, board)
	if err != nil {
		return nil, err
	}
	return CatalogFromPages(fetcher, board, pages), nil
}

func CatalogFromPages(fetcher Fetcher, board string, pages []fourchan.Page) *Catalog {
	return &Catalog{
		board:   board,
		fetcher: fetcher,
		pages:   pages,
		posts:   flatten(pages),
	}
}

func flatten(pages []fourchan.Page) []fourchan.Post {
	out := make([]fourchan.Post, 0)
	for _, page := range pages {
		for _, post := range page.Threads {
			if post.Subject == "" {
				continue
			}
			out = append(out, post)
		}
	}
	return out
}

func (c *Catalog) Board() string {
	return c.board
}

func (c *Catalog) Pages() []fourchan.Page {
	return c.pages
}

func (c *Catalog) Posts() []fourchan.Post {
	return c.posts
}

func (c *Catalog) Len() int {
	return len(c.posts)
}

func (c *Catalog) Cursor() int {
	return c.cursor
}

func (c *Catalog) Selected() (fourchan.Post, bool) {
	if len(c.posts) == 0 {
		return fourchan.Post{}, false
	}
	return c.posts[c.cursor], true
}

func (c *Catalog) MoveDown() {
	c.MoveTo(c.cursor + 1)
}

func (c *Catalog) MoveUp() {
	c.MoveTo(c.cursor - 1)
}

func (c *Catalog) MoveFirst() {
	c.MoveTo(0)
}

func (c *Catalog) MoveLast() {
	c.MoveTo(len(c.posts) - 1)
}

// MoveTo places the cursor at i, clamped to the list. It is a no-op on an
// empty catalog.
func (c *Catalog) MoveTo(i int) {
	if len(c.posts) == 0 {
		c.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.posts) {
		i = len(c.posts) - 1
	}
	c.cursor = i
}

// Search returns the first post, in list order, whose subject contains
// subject. Matching is case-sensitive.
func (c *Catalog) Search(subject string) (fourchan.Post, bool) {
	for _, post := range c.posts {
		if strings.Contains(post.Subject, subject) {
			return post, true
		}
	}
	return fourchan.Post{}, false
}

func (c *Catalog) FindThread(ctx context.Context, subject string) (*Thread, error) {
	post, ok := c.Search(subject)
	if !ok {
		return nil, ErrNotFound
	}
	return NewThread(ctx, c.fetcher, c.board, post.No)
}

func (c *Catalog) OpenSelected(ctx context.Context) (*Thread, error) {
	post, ok := c.Selected()
	if !ok {
		return nil, ErrNotFound
	}
	return NewThread(ctx, c.fetcher, c.board, post.No)
}

// ThreadURL is the public URL of the selected thread.
func (c *Catalog) ThreadURL() (string, bool) {
	post, ok := c.Selected()
	if !ok {
		return "", false
	}
	return c.fetcher.Links().Thread(c.board, post.No), true
}
