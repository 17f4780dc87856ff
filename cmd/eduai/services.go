package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"eduai/internal/client"
	"eduai/internal/format"
	"eduai/internal/ui"
)

type TUIService interface {
	Run(model ui.ChatTUIModel) (tea.Model, error)
}

type TransportFactory func(endpoint string) client.Transport

// Services are the side effects of the eduai command, swapped out in tests.
type Services struct {
	TUI            TUIService
	NewTransport   TransportFactory
	IsTerminal     func() bool
	FormatMarkdown func(text string) (string, error)
}

type DefaultTUIService struct{}

func (s *DefaultTUIService) Run(model ui.ChatTUIModel) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func NewDefaultServices() Services {
	return Services{
		TUI: &DefaultTUIService{},
		NewTransport: func(endpoint string) client.Transport {
			return client.NewHTTPTransport(endpoint)
		},
		IsTerminal:     stdoutIsTerminal,
		FormatMarkdown: format.FormatMarkdown,
	}
}
