package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glabrego/fours-cli/internal/fourchan"
	tuitheme "github.com/glabrego/fours-cli/internal/tui/theme"
)

func TestRenderThreadLine(t *testing.T) {
	th := tuitheme.Default()
	post := fourchan.Post{No: 1, Subject: "Daily Programming Thread", Replies: 120, Images: 7}

	active := stripANSI(RenderThreadLine(ThreadLineParams{Post: post, Active: true, Width: 60}, th))
	if !strings.HasPrefix(active, "  > Daily Programming Thread") {
		t.Fatalf("unexpected active line: %q", active)
	}
	if !strings.HasSuffix(active, "r:120 i:7") {
		t.Fatalf("expected counts at the right edge: %q", active)
	}
	if w := visibleLen(active); w != 60 {
		t.Fatalf("expected line width 60, got %d", w)
	}

	numbered := stripANSI(RenderThreadLine(ThreadLineParams{Post: post, Pos: 4, ShowNumbers: true, Width: 60}, th))
	if !strings.HasPrefix(numbered, "     5. Daily") {
		t.Fatalf("unexpected numbered line: %q", numbered)
	}
}

func TestRenderThreadLine_TruncatesLongSubjects(t *testing.T) {
	th := tuitheme.Default()
	post := fourchan.Post{No: 1, Subject: strings.Repeat("long ", 40), Replies: 3, Images: 1}
	got := stripANSI(RenderThreadLine(ThreadLineParams{Post: post, Width: 40}, th))
	if w := visibleLen(got); w != 40 {
		t.Fatalf("expected width 40, got %d (%q)", w, got)
	}
	if !strings.Contains(got, "...") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestSubjectLabel(t *testing.T) {
	if got := SubjectLabel(fourchan.Post{Subject: "Q&amp;A &gt; all"}); got != "Q&A > all" {
		t.Fatalf("unexpected decoded subject: %q", got)
	}
	if got := SubjectLabel(fourchan.Post{No: 9}); got != "(no subject) #9" {
		t.Fatalf("unexpected empty subject label: %q", got)
	}
}

func TestRenderListBody(t *testing.T) {
	got := RenderListBody(ListRenderInput{
		Total:  5,
		Start:  1,
		End:    4,
		Cursor: 2,
		RenderLine: func(i int, active bool) string {
			return fmt.Sprintf("%d:%v", i, active)
		},
	})
	if got != "1:false\n2:true\n3:false\n" {
		t.Fatalf("unexpected list body: %q", got)
	}
	if got := RenderListBody(ListRenderInput{}); got != "" {
		t.Fatalf("expected empty body, got %q", got)
	}
}
