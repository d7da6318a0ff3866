package render

import (
	"errors"
	"fmt"
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/glabrego/fours-cli/internal/fourchan"
)

// ErrNoBody is returned when a post carries no comment markup.
var ErrNoBody = errors.New("post has no body")

// RenderError reports markup that could not be turned into text.
type RenderError struct {
	PostID int64
	Err    error
}

func (e *RenderError) Error() string {
	if e.PostID != 0 {
		return fmt.Sprintf("render post %d: %v", e.PostID, e.Err)
	}
	return fmt.Sprintf("render: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

var markupReplacer = strings.NewReplacer(
	"<wbr>", "",
	"<br>", "\n",
)

func DecodePost(post fourchan.Post) (string, error) {
	if !post.HasBody() {
		return "", ErrNoBody
	}
	text, err := Decode(post.Comment)
	if err != nil {
		var renderErr *RenderError
		if errors.As(err, &renderErr) {
			renderErr.PostID = post.No
		}
		return "", err
	}
	return text, nil
}

// Decode flattens comment markup to plain text. Word-break markers are
// dropped, line breaks become newlines, entities are decoded and the text
// of every text node is concatenated in document order.
func Decode(markup string) (string, error) {
	if markup == "" {
		return "", ErrNoBody
	}
	fragment := html.UnescapeString(markupReplacer.Replace(markup))

	body := &nethtml.Node{Type: nethtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := nethtml.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", &RenderError{Err: fmt.Errorf("parse fragment: %w", err)}
	}

	var b strings.Builder
	for _, node := range nodes {
		collectText(&b, node)
	}
	return b.String(), nil
}

func collectText(b *strings.Builder, node *nethtml.Node) {
	if node == nil {
		return
	}
	if node.Type == nethtml.TextNode {
		b.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(b, child)
	}
}
