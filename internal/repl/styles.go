package repl

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	replyStyle = lipgloss.NewStyle()

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// entryKind selects how a transcript line is rendered.
type entryKind int

const (
	kindBanner entryKind = iota
	kindEcho
	kindReply
	kindFailure
)

func (k entryKind) style() lipgloss.Style {
	switch k {
	case kindBanner:
		return bannerStyle
	case kindEcho:
		return echoStyle
	case kindFailure:
		return failureStyle
	default:
		return replyStyle
	}
}
