package format

import "github.com/charmbracelet/glamour"

const markdownStyle = "dark"

// FormatMarkdown renders an assistant reply for the terminal.
func FormatMarkdown(text string) (string, error) {
	return glamour.Render(text, markdownStyle)
}
