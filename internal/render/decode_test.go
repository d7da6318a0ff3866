package render

import (
	"errors"
	"testing"

	"github.com/glabrego/fours-cli/internal/fourchan"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "breaks", in: "a<br>b<wbr>c", want: "a\nbc"},
		{name: "entity", in: "&amp;", want: "&"},
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "greentext", in: `<span class="quote">&gt;implying</span> text`, want: ">implying text"},
		{name: "quotelink", in: `<a href="#p123" class="quotelink">&gt;&gt;123</a><br>hello`, want: ">>123\nhello"},
		{name: "escaped markup is parsed", in: "&lt;b&gt;bold&lt;/b&gt;", want: "bold"},
		{name: "nested", in: "<b>one <i>two</i></b> three", want: "one two three"},
		{name: "numeric entity", in: "it&#039;s", want: "it's"},
		{name: "comment dropped", in: "a<!-- hidden -->b", want: "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.in)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Decode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecode_EmptyIsNoBody(t *testing.T) {
	if _, err := Decode(""); !errors.Is(err, ErrNoBody) {
		t.Fatalf("expected ErrNoBody, got %v", err)
	}
}

func TestDecodePost(t *testing.T) {
	got, err := DecodePost(fourchan.Post{No: 1, Comment: "x<br>y"})
	if err != nil {
		t.Fatalf("DecodePost returned error: %v", err)
	}
	if got != "x\ny" {
		t.Fatalf("unexpected text: %q", got)
	}

	if _, err := DecodePost(fourchan.Post{No: 2}); !errors.Is(err, ErrNoBody) {
		t.Fatalf("expected ErrNoBody for post without comment, got %v", err)
	}
}

func TestRenderError(t *testing.T) {
	inner := errors.New("boom")
	err := &RenderError{PostID: 42, Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected RenderError to unwrap")
	}
	if got := err.Error(); got != "render post 42: boom" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := (&RenderError{Err: inner}).Error(); got != "render: boom" {
		t.Fatalf("unexpected message without id: %q", got)
	}
}

func FuzzDecode(f *testing.F) {
	seeds := []string{
		"",
		"a<br>b",
		"&amp;&lt;&gt;",
		"<<<<<<<<",
		"<span class=\"quote\">&gt;text",
		"\x00\x01\x02<script>alert(1)</script>",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		if len(raw) > 10_000 {
			raw = raw[:10_000]
		}
		text, err := Decode(raw)
		if raw == "" {
			if !errors.Is(err, ErrNoBody) {
				t.Fatalf("expected ErrNoBody, got %v", err)
			}
			return
		}
		if err != nil {
			return
		}
		for _, width := range []int{1, 20, DefaultWidth} {
			_ = SelectiveWrap(text, width)
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	markup := `<a href="#p1" class="quotelink">&gt;&gt;1</a><br><span class="quote">&gt;be me</span><br>` +
		`went outside &amp; saw the sun<wbr>light<br>https://example.com/some/long/path`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(markup)
	}
}
