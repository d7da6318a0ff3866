package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/fours-cli/internal/fourchan"
	tuitheme "github.com/glabrego/fours-cli/internal/tui/theme"
)

type ThreadLineParams struct {
	Post        fourchan.Post
	Pos         int
	ShowNumbers bool
	Active      bool
	Busy        bool
	Width       int
}

// RenderThreadLine lays out one catalog entry: cursor marker, subject and the
// reply/image counts pushed to the right edge.
func RenderThreadLine(p ThreadLineParams, th tuitheme.Theme) string {
	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}
	prefix := fmt.Sprintf("  %s ", cursorMarker)
	if p.ShowNumbers {
		prefix = fmt.Sprintf("  %s%3d. ", cursorMarker, p.Pos+1)
	}

	counts := CountsLabel(p.Post)
	available := p.Width - visibleLen(prefix) - 1 - visibleLen(counts)
	if available < 1 {
		available = 1
	}
	label := ansi.Truncate(SubjectLabel(p.Post), available, "...")
	styledCounts := th.ReplyCount.Render(fmt.Sprintf("r:%d", p.Post.Replies)) + " " +
		th.ImageCount.Render(fmt.Sprintf("i:%d", p.Post.Images))

	gap := p.Width - visibleLen(prefix) - visibleLen(label) - visibleLen(counts)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(p.Active, prefix+th.StyleSubject(label, p.Busy)+strings.Repeat(" ", gap)+styledCounts)
}

// SubjectLabel is the display form of a catalog subject with entities decoded.
func SubjectLabel(post fourchan.Post) string {
	subject := strings.TrimSpace(html.UnescapeString(post.Subject))
	if subject == "" {
		return fmt.Sprintf("(no subject) #%d", post.No)
	}
	return subject
}

func CountsLabel(post fourchan.Post) string {
	return fmt.Sprintf("r:%d i:%d", post.Replies, post.Images)
}

func visibleLen(s string) int {
	return ansi.StringWidth(s)
}
