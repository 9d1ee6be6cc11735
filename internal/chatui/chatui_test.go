package chatui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"honnef.co/go/bubble/conversation"
	"honnef.co/go/bubble/message"
	"honnef.co/go/bubble/render"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newModel(t *testing.T) (*Model, *conversation.Conversation) {
	t.Helper()
	conv := conversation.New(conversation.WithExpiry(0))
	t.Cleanup(conv.Close)
	return New(conv, render.DefaultPalette, nil), conv
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func contents(conv *conversation.Conversation) []string {
	var out []string
	for _, msg := range conv.Messages() {
		out = append(out, msg.Content)
	}
	return out
}

func TestTypingAndSubmit(t *testing.T) {
	m, conv := newModel(t)

	typeText(m, "hi")
	if d := cmp.Diff([]string{"hi"}, contents(conv)); d != "" {
		t.Errorf("unexpected messages (-want +got):\n%s", d)
	}
	if v := m.View(); !strings.Contains(v, "hi") || !strings.Contains(v, "◢") {
		t.Errorf("draft not shown as a bubble with a tail:\n%s", v)
	}

	press(m, tea.KeyEnter)
	if d := cmp.Diff([]string{"hi", ""}, contents(conv)); d != "" {
		t.Errorf("unexpected messages (-want +got):\n%s", d)
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}

	// Submitting an empty draft does nothing.
	press(m, tea.KeyEnter)
	if d := cmp.Diff([]string{"hi", ""}, contents(conv)); d != "" {
		t.Errorf("unexpected messages (-want +got):\n%s", d)
	}
	if m.err != nil {
		t.Errorf("unexpected error %v", m.err)
	}
}

func TestTailFollowsLastMessage(t *testing.T) {
	m, conv := newModel(t)
	typeText(m, "hi")
	press(m, tea.KeyEnter)
	if err := conv.Append(message.New("yo", message.Received)); err != nil {
		t.Fatal(err)
	}
	v := m.View()
	if !strings.Contains(v, "◣") {
		t.Errorf("received message has no left tail:\n%s", v)
	}
	if strings.Contains(v, "◢") {
		t.Errorf("sent message still has a tail:\n%s", v)
	}
}

func TestClear(t *testing.T) {
	m, conv := newModel(t)
	typeText(m, "one")
	press(m, tea.KeyEnter)
	typeText(m, "two")
	press(m, tea.KeyCtrlL)
	if d := cmp.Diff([]string{""}, contents(conv)); d != "" {
		t.Errorf("unexpected messages (-want +got):\n%s", d)
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}
	if strings.Contains(m.View(), "one") {
		t.Error("cleared message still shown")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _ := newModel(t)
		cmd := press(m, k)
		if cmd == nil {
			t.Fatalf("%v: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: didn't quit", k)
		}
	}
}

func TestChanges(t *testing.T) {
	m, conv := newModel(t)
	conv.SetDraft("from elsewhere")
	msg := waitForChange(conv.Changes())()
	if _, ok := msg.(changedMsg); !ok {
		t.Fatalf("got %T, want changedMsg", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("stopped listening for changes")
	}

	conv.Close()
	msg = waitForChange(conv.Changes())()
	if _, ok := msg.(closedMsg); !ok {
		t.Fatalf("got %T, want closedMsg", msg)
	}
	_, cmd = m.Update(msg)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("didn't quit after the conversation was closed")
	}
}

func TestSubmitError(t *testing.T) {
	m, conv := newModel(t)
	typeText(m, "late")
	conv.Close()
	press(m, tea.KeyEnter)
	if m.err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(m.View(), conversation.ErrClosed.Error()) {
		t.Errorf("error not shown:\n%s", m.View())
	}
}

func TestAlignment(t *testing.T) {
	m, conv := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	typeText(m, "right")
	conv.Append(message.New("left", message.Received))

	var sentTop, receivedTop string
	for _, line := range strings.Split(m.View(), "\n") {
		if !strings.Contains(line, "╭") {
			continue
		}
		if strings.HasPrefix(line, " ") {
			sentTop = line
		} else {
			receivedTop = line
		}
	}
	if receivedTop == "" {
		t.Error("received bubble isn't left-aligned")
	}
	if lipgloss.Width(sentTop) != 40 {
		t.Errorf("sent bubble isn't right-aligned: %q", sentTop)
	}
}

func TestLongMessageWraps(t *testing.T) {
	m, _ := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	typeText(m, strings.Repeat("word ", 20))
	for _, line := range strings.Split(m.View(), "\n") {
		if strings.ContainsAny(line, "│╭╰") && lipgloss.Width(line) > 30 {
			t.Errorf("line wider than the screen: %q", line)
		}
	}
}
