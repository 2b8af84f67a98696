// Package tui provides the Bubble Tea front end for seedart: a seed
// browser with terminal previews, a render history table and an SSH server
// that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the slideshow by one seed. Gen identifies the tick chain
// that sent it; ticks from an older chain are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends one tick of chain gen
// after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
