package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/fours-cli/internal/tui/theme"
)

func Header(board, position string, th tuitheme.Theme) string {
	return th.Title.Render("fours") + " " + th.BoardPill.Render("/"+board+"/") + " " + th.MetaValue.Render(position)
}

func Toolbar(paging bool) string {
	if paging {
		return "j/k scroll | pgup/pgdown page | g/G top/bottom | q back"
	}
	return "j/k move | g/G top/bottom | l/enter open | o browser | y copy URL | r reload | q/x quit"
}

func Footer(board string, threads, pages int, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("board") + " " + th.MetaValue.Render(board),
		th.MetaLabel.Render("threads") + " " + th.MetaValue.Render(fmt.Sprintf("%d", threads)),
		th.MetaLabel.Render("pages") + " " + th.MetaValue.Render(fmt.Sprintf("%d", pages)),
	}
	return strings.Join(parts, " • ")
}

func StatusLine(loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
