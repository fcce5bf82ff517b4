// Package tui provides the Bubble Tea integration for the portfolio.
// It handles the terminal UI loop, input mapping and page orchestration.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an animation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// bridgeBuffer bounds how many timer messages may wait for the loop.
const bridgeBuffer = 128

// timerBridge carries messages from clock callbacks, which run on their own
// goroutines, into the Bubble Tea loop. wait() must be re-issued after
// every delivered message.
type timerBridge struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

func newTimerBridge() *timerBridge {
	return &timerBridge{
		ch:   make(chan tea.Msg, bridgeBuffer),
		done: make(chan struct{}),
	}
}

// post queues msg without blocking; it is dropped when the buffer is full
// or the bridge is closed.
func (b *timerBridge) post(msg tea.Msg) {
	select {
	case <-b.done:
		return
	default:
	}
	select {
	case b.ch <- msg:
	default:
	}
}

// wait returns a command that delivers the next posted message.
func (b *timerBridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// close releases any pending wait.
func (b *timerBridge) close() {
	b.once.Do(func() { close(b.done) })
}
