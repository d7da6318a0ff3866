package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glabrego/fours-cli/internal/render"
)

// Document is a thread that can be rendered to text and named on disk.
type Document interface {
	Board() string
	ID() int64
	Subject() string
	Render(opts render.Options) (string, error)
}

var nameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

// FileName is "{board}-{subject}" lower-cased. Threads without a subject
// use their id instead.
func FileName(board, subject string, id int64) string {
	name := strings.TrimSpace(subject)
	if name == "" {
		name = strconv.FormatInt(id, 10)
	}
	return nameReplacer.Replace(strings.ToLower(board + "-" + name))
}

func Path(dir string, doc Document) string {
	return filepath.Join(dir, FileName(doc.Board(), doc.Subject(), doc.ID()))
}

// Write renders doc and stores it under dir, replacing any previous copy.
func Write(dir string, doc Document, opts render.Options) (string, error) {
	body, err := doc.Render(opts)
	if err != nil {
		return "", err
	}
	path := Path(dir, doc)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write thread %d: %w", doc.ID(), err)
	}
	return path, nil
}
