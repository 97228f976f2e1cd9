package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/todomvc/internal/controller"
)

// completionMsg carries a finished store call back onto the Update loop.
type completionMsg struct {
	next func()
}

// scheduler turns controller store calls into tea.Cmds. Bubbletea runs each
// command on its own goroutine and delivers the resulting completionMsg to
// Update, which is the controller loop.
//
// Calls are collected while a message is handled and released by flush.
type scheduler struct {
	ctx     context.Context
	pending []tea.Cmd
}

var _ controller.Scheduler = (*scheduler)(nil)

func newScheduler(ctx context.Context) *scheduler {
	return &scheduler{ctx: ctx}
}

// Schedule implements controller.Scheduler.
func (s *scheduler) Schedule(call controller.Call) {
	ctx := s.ctx
	s.pending = append(s.pending, func() tea.Msg {
		return completionMsg{next: call(ctx)}
	})
}

// flush returns the calls scheduled since the last flush as one command.
func (s *scheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
