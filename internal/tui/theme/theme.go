package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	BoardPill  lipgloss.Style
	ReplyCount lipgloss.Style
	ImageCount lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
	Prompt     lipgloss.Style

	Subject     lipgloss.Style
	SubjectBusy lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		BoardPill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		ReplyCount:  lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ImageCount:  lipgloss.NewStyle().Foreground(cpTeal),
		ActiveLine:  lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:   lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:   lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:   lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:   lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:   lipgloss.NewStyle().Foreground(cpPeach),
		Prompt:      lipgloss.NewStyle().Foreground(cpText).Background(cpSurface0),
		Subject:     lipgloss.NewStyle().Foreground(cpText),
		SubjectBusy: lipgloss.NewStyle().Italic(true).Foreground(cpPeach),
	}
}

// Plain uses only bold, italic and reverse video, for terminals with a
// palette that clashes with the default colors.
func Plain() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:       plain.Bold(true),
		BoardPill:   plain.Reverse(true).Padding(0, 1),
		ReplyCount:  plain.Bold(true),
		ImageCount:  plain,
		ActiveLine:  plain.Reverse(true),
		MetaLabel:   plain.Faint(true),
		MetaValue:   plain,
		StateIdle:   plain,
		StateWarn:   plain.Bold(true),
		StateLoad:   plain.Italic(true),
		Prompt:      plain.Reverse(true),
		Subject:     plain,
		SubjectBusy: plain.Italic(true),
	}
}

// ByName returns the theme called name ("default" or "plain").
func ByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return Default(), nil
	case "plain":
		return Plain(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// StyleSubject renders a catalog subject; busy marks the thread being opened.
func (t Theme) StyleSubject(subject string, busy bool) string {
	if subject == "" {
		return subject
	}
	if busy {
		return t.SubjectBusy.Render(subject)
	}
	return t.Subject.Render(subject)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
