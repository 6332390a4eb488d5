package technical

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerTickMsg is sent every second while a question countdown runs. gen
// ties the tick to the countdown that scheduled it.
type timerTickMsg struct {
	gen uint64
}

// tickCmd returns a 1-second tick command for countdown gen.
func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}
