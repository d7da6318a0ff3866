package render

import (
	"strconv"
	"strings"

	"github.com/glabrego/fours-cli/internal/fourchan"
)

type Options struct {
	Width int
	// Banner surrounds the thread body with its leftpadded URL.
	Banner bool
}

var DefaultOptions = Options{Width: DefaultWidth}

func (o Options) width() int {
	if o.Width < 1 {
		return DefaultWidth
	}
	return o.Width
}

// Source is a thread that can be rendered as one document.
type Source interface {
	URL() string
	Posts() []fourchan.Post
	ImageURL(post fourchan.Post) string
}

// Post renders the post id, the image URL when present and the wrapped body
// when present. A post with neither yields only its id line.
func Post(post fourchan.Post, imageURL string, opts Options) (string, error) {
	width := opts.width()
	var b strings.Builder
	b.WriteString(Leftpad(strconv.FormatInt(post.No, 10), width))
	b.WriteByte('\n')
	if post.HasImage() && imageURL != "" {
		b.WriteString(imageURL)
		b.WriteByte('\n')
	}
	if post.HasBody() {
		text, err := DecodePost(post)
		if err != nil {
			return "", err
		}
		b.WriteString(SelectiveWrap(text, width))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func Thread(src Source, opts Options) (string, error) {
	width := opts.width()
	var b strings.Builder
	if opts.Banner {
		b.WriteString(Leftpad(src.URL(), width))
		b.WriteByte('\n')
	}
	for _, post := range src.Posts() {
		imageURL := ""
		if post.HasImage() {
			imageURL = src.ImageURL(post)
		}
		text, err := Post(post, imageURL, opts)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	if opts.Banner {
		b.WriteString(Leftpad(src.URL(), width))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
