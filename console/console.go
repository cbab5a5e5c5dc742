// Package console provides a Bubble Tea harness that drives a herald Relay
// against an in-memory guild, so commands and forms can be tried without
// a Discord connection.
package console

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/herald"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits or ctx is canceled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// RelayDoneMsg carries the outcome of one relay call to the model.
type RelayDoneMsg struct {
	Replies []string
	Form    *herald.Form
	Err     error
}

// collector is the console's herald.Responder. It buffers what the relay
// says so the model can render it once the call returns.
type collector struct {
	mu      sync.Mutex
	replies []string
	form    *herald.Form
}

var _ herald.Responder = (*collector)(nil)

func (c *collector) Reply(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies = append(c.replies, text)
	return nil
}

func (c *collector) OpenForm(_ context.Context, f herald.Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = &f
	return nil
}

// handle runs in into relay off the update loop.
func handle(relay *herald.Relay, in herald.Interaction) tea.Cmd {
	return func() tea.Msg {
		c := &collector{}
		err := relay.Handle(context.Background(), in, c)
		c.mu.Lock()
		defer c.mu.Unlock()
		return RelayDoneMsg{Replies: c.replies, Form: c.form, Err: err}
	}
}
