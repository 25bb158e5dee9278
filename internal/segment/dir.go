package segment

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DirMaxWidth bounds the directory segment so deep trees do not crowd
// out the rest of the line.
const DirMaxWidth = 40

var dirStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89dceb"))

// Dir renders the working directory: home contracted to ~, then
// left-truncated to maxWidth display cells with a leading ellipsis.
func Dir(path string, maxWidth int) string {
	short := shortenDir(path, maxWidth)
	if short == "" {
		return ""
	}
	return dirStyle.Render(short)
}

func shortenDir(path string, maxWidth int) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if path == home {
			path = "~"
		} else if strings.HasPrefix(path, home+string(os.PathSeparator)) {
			path = "~" + path[len(home):]
		}
	}
	if maxWidth <= 0 || runewidth.StringWidth(path) <= maxWidth {
		return path
	}
	// Keep the tail; that is the part the user is navigating.
	runes := []rune(path)
	for len(runes) > 0 && runewidth.StringWidth(string(runes)) > maxWidth-1 {
		runes = runes[1:]
	}
	return "…" + string(runes)
}
