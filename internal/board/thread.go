package board

import (
	"context"

	"github.com/glabrego/fours-cli/internal/fourchan"
	"github.com/glabrego/fours-cli/internal/render"
)

// Thread is an opening post followed by its replies, in thread order.
type Thread struct {
	board string
	id    int64
	posts []fourchan.Post
	links fourchan.Links
}

func NewThread(ctx context.Context, fetcher Fetcher, board string, id int64) (*Thread, error) {
	posts, err := fetcher.FetchThread(ctx, board, id)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, &fourchan.FormatError{Resource: "thread", Reason: "thread has no posts"}
	}
	return &Thread{
		board: board,
		id:    id,
		posts: posts,
		links: fetcher.Links(),
	}, nil
}

func (t *Thread) Board() string {
	return t.board
}

func (t *Thread) ID() int64 {
	return t.id
}

func (t *Thread) Posts() []fourchan.Post {
	return t.posts
}

// Subject is the opening post's subject, empty when it has none.
func (t *Thread) Subject() string {
	return t.posts[0].Subject
}

func (t *Thread) URL() string {
	return t.links.Thread(t.board, t.id)
}

func (t *Thread) ImageURL(post fourchan.Post) string {
	if !post.HasImage() {
		return ""
	}
	return t.links.Image(t.board, post.Tim, post.Ext)
}

func (t *Thread) Render(opts render.Options) (string, error) {
	return render.Thread(t, opts)
}
