// Package chatui is a terminal front end for a conversation.
package chatui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"honnef.co/go/bubble"
	"honnef.co/go/bubble/conversation"
	"honnef.co/go/bubble/message"
	"honnef.co/go/bubble/render"
)

const defaultWidth = 80

type side struct {
	box  lipgloss.Style
	mark lipgloss.Style
}

func newSide(c lipgloss.Color) side {
	return side{
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			PaddingLeft(1).
			PaddingRight(1),
		mark: lipgloss.NewStyle().Foreground(c),
	}
}

type changedMsg struct{}
type closedMsg struct{}

// Model is a bubbletea model showing the messages of a conversation above a
// text input. Typing edits the conversation's draft, Enter submits it.
type Model struct {
	conv  *conversation.Conversation
	log   *zap.Logger
	input textinput.Model
	width int

	sent     side
	received side
	hint     lipgloss.Style
	errStyle lipgloss.Style
	err      error
}

func New(conv *conversation.Conversation, palette render.Palette, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message (Enter to send)"
	ti.CharLimit = 0
	ti.Focus()
	ti.SetValue(conv.Draft().Content)

	return &Model{
		conv:     conv,
		log:      log,
		input:    ti,
		width:    defaultWidth,
		sent:     newSide(lipgloss.Color(render.FormatColor(palette.Sent))),
		received: newSide(lipgloss.Color(render.FormatColor(palette.Received))),
		hint:     lipgloss.NewStyle().Faint(true),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return closedMsg{}
		}
		return changedMsg{}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.conv.Changes()))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(1, msg.Width-len(m.input.Prompt)-1)
		return m, nil
	case changedMsg:
		return m, waitForChange(m.conv.Changes())
	case closedMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		case tea.KeyCtrlL:
			m.conv.Clear()
			m.input.Reset()
			m.err = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.conv.SetDraft(m.input.Value())
	return m, cmd
}

func (m *Model) submit() {
	sub, err := m.conv.Submit(context.Background())
	switch {
	case errors.Is(err, conversation.ErrEmptyDraft):
		return
	case err != nil:
		m.err = err
		m.log.Warn("Submit failed", zap.Error(err))
		return
	}
	m.err = nil
	m.input.Reset()
	m.log.Debug("Message sent", zap.Stringer("id", sub.ID))
}

// bubbleWidth is the widest a bubble's content may be.
func (m *Model) bubbleWidth() int {
	return max(8, m.width*2/3)
}

// renderMessage renders one message as a box, aligned to its side of the
// screen, with a corner mark under the box on the tail's side.
func (m *Model) renderMessage(msg message.Message, tail bubble.TailSide) string {
	sd := m.received
	if msg.Type == message.Sent {
		sd = m.sent
	}
	style := sd.box
	// Border and padding take four columns. Width includes the padding.
	if lipgloss.Width(msg.Content)+4 > m.bubbleWidth() {
		style = style.Width(m.bubbleWidth() - 2)
	}
	box := style.Render(msg.Content)
	w := lipgloss.Width(box)
	col := 0
	if msg.Type == message.Sent {
		col = max(0, m.width-w)
	}

	var sb strings.Builder
	for line := range strings.SplitSeq(box, "\n") {
		sb.WriteString(strings.Repeat(" ", col))
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	switch tail {
	case bubble.TailLeft:
		sb.WriteString(strings.Repeat(" ", col))
		sb.WriteString(sd.mark.Render("◣"))
		sb.WriteString("\n")
	case bubble.TailRight:
		sb.WriteString(strings.Repeat(" ", col+w-1))
		sb.WriteString(sd.mark.Render("◢"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) View() string {
	var sb strings.Builder
	msgs := m.conv.Messages()
	sides := message.Sides(msgs)
	for i, msg := range msgs {
		if !msg.Visible() {
			continue
		}
		sb.WriteString(m.renderMessage(msg, sides[i]))
	}
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.err != nil {
		sb.WriteString(m.errStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.hint.Render("enter: send  esc: quit  ctrl+l: clear"))
	sb.WriteString("\n")
	return sb.String()
}

// Run runs the terminal front end until the user quits, ctx is cancelled or
// the conversation is closed.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
