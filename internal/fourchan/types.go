package fourchan

import "fmt"

const (
	DefaultAPIBaseURL   = "https://a.4cdn.org"
	DefaultSiteURL      = "https://boards.4chan.org"
	DefaultImageBaseURL = "https://i.4cdn.org"

	defaultImageExt = ".jpg"
)

// Post is the subset of 4chan post fields used by the app. Catalog entries
// and thread posts share this shape; Subject is only set on opening posts.
type Post struct {
	No       int64  `json:"no"`
	Comment  string `json:"com,omitempty"`
	Tim      int64  `json:"tim,omitempty"`
	Ext      string `json:"ext,omitempty"`
	Filename string `json:"filename,omitempty"`
	Subject  string `json:"sub,omitempty"`
	Name     string `json:"name,omitempty"`
	Time     int64  `json:"time,omitempty"`
	Replies  int    `json:"replies,omitempty"`
	Images   int    `json:"images,omitempty"`
}

func (p Post) HasBody() bool {
	return p.Comment != ""
}

func (p Post) HasImage() bool {
	return p.Tim != 0
}

// Page is one page of a board catalog as returned by /{board}/catalog.json.
type Page struct {
	Page    int    `json:"page"`
	Threads []Post `json:"threads"`
}

// Links derives human-facing URLs for threads and images.
type Links struct {
	Site      string
	ImageBase string
}

func DefaultLinks() Links {
	return Links{Site: DefaultSiteURL, ImageBase: DefaultImageBaseURL}
}

func (l Links) Thread(board string, id int64) string {
	return fmt.Sprintf("%s/%s/thread/%d", l.Site, board, id)
}

func (l Links) Image(board string, tim int64, ext string) string {
	if ext == "" {
		ext = defaultImageExt
	}
	return fmt.Sprintf("%s/%s/%d%s", l.ImageBase, board, tim, ext)
}
