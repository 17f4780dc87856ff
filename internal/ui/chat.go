package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eduai/internal/client"
	"eduai/internal/format"
	"eduai/internal/models"
)

type ChatTUIModel struct {
	textInput textinput.Model
	viewport  viewport.Model
	session   *client.Session
	title     string
	ctx       context.Context

	render func(text string) (string, error)
}

// ReplyMsg carries the outcome of one transport call back into the model.
type ReplyMsg struct {
	Response *models.ChatResponse
	Err      error
}

const (
	CHAT_TITLE             = "eduAI Assistant"
	CHAT_INPUT_PLACEHOLDER = "Ask a question about math, science, history, programming..."
	CHAT_THINKING          = "> Thinking..."
	CHAT_EMPTY_STATE       = "Start by asking a question. For example:"
)

var Suggestions = []string{
	"Explain Newton's laws in simple words.",
	"Help me understand the difference between HTTP and HTTPS.",
	"Give me a quick summary of World War II.",
}

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true)
)

type InitialModelOptions struct {
	Title   string
	Session *client.Session
	Context context.Context
	// Render formats assistant replies. Defaults to format.FormatMarkdown.
	Render func(text string) (string, error)
}

func InitialModel(opts InitialModelOptions) ChatTUIModel {
	ti := textinput.New()
	ti.Placeholder = CHAT_INPUT_PLACEHOLDER
	ti.Focus()

	title := opts.Title
	if title == "" {
		title = CHAT_TITLE
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	render := opts.Render
	if render == nil {
		render = format.FormatMarkdown
	}

	m := ChatTUIModel{
		textInput: ti,
		viewport:  viewport.New(0, 0),
		session:   opts.Session,
		title:     title,
		ctx:       ctx,
		render:    render,
	}
	m.updateViewport()
	return m
}

func (m ChatTUIModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.EnableMouseCellMotion,
	)
}

func (m ChatTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := max(msg.Width, 1)
		titleLines := (len(m.title) / width) + 1
		// title border, input with its border, status line
		m.viewport = viewport.New(max(msg.Width, 0), max(msg.Height-(4+titleLines), 0))
		m.updateViewport()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				m.viewport.ScrollDown(1)
			}
		}

	case ReplyMsg:
		m.session.Resolve(msg.Response, msg.Err)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if req, ok := m.session.Begin(m.textInput.Value()); ok {
				m.textInput.SetValue("")
				m.updateViewport()
				cmd = m.send(req)
			}
		}
	}

	// Typing stays possible while waiting; only submission is gated.
	m.textInput, _ = m.textInput.Update(msg)
	m.session.SetInput(m.textInput.Value())

	return m, cmd
}

func (m ChatTUIModel) send(req models.ChatRequest) tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		resp, err := session.Send(ctx, req)
		return ReplyMsg{Response: resp, Err: err}
	}
}

func (m *ChatTUIModel) updateViewport() {
	transcript := m.session.Transcript()
	if len(transcript) == 0 {
		lines := []string{CHAT_EMPTY_STATE}
		for _, s := range Suggestions {
			lines = append(lines, "  • "+s)
		}
		m.viewport.SetContent(hintStyle.Render(strings.Join(lines, "\n")))
		return
	}

	displayedMessages := make([]string, len(transcript))
	for i, msg := range transcript {
		switch msg.Role {
		case models.RoleAssistant:
			out, err := m.render(msg.Content)
			if err != nil {
				out = msg.Content
			}
			displayedMessages[i] = botStyle.Render(strings.TrimSpace(out))
		case models.RoleUser:
			displayedMessages[i] = userStyle.Render(fmt.Sprintf("> %s", msg.Content))
		}
	}

	m.viewport.SetContent(strings.Join(displayedMessages, "\n\n"))
	m.viewport.GotoBottom()
}

func (m ChatTUIModel) View() string {
	status := ""
	if m.session.Waiting() {
		status = hintStyle.Render(CHAT_THINKING)
	} else if e := m.session.LastError(); e != "" {
		status = errorStyle.Render(e)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.viewport.Width).Render(m.title),
		m.viewport.View(),
		status,
		inputStyle.Width(m.viewport.Width).Render(m.textInput.View()),
	)
}
