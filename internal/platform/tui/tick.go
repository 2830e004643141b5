// Package tui provides the Bubble Tea front end for aztec: the playback
// viewer, the saved-runs browser, the session menu and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance playback by one frame. ID names the viewer that
// scheduled it, so a viewer never consumes ticks left over from another one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastViewerID atomic.Int64

func nextViewerID() int64 {
	return lastViewerID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the given rate.
func tickCmd(id int64, fps int) tea.Cmd {
	if fps <= 0 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
