package carousel

import (
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns a delayed message into a command.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// TickScheduler delivers messages with tea.Tick.
type TickScheduler struct{}

func (TickScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

type scheduled struct {
	due time.Duration
	seq int
	msg tea.Msg
}

// ManualScheduler queues messages against a virtual clock that only moves
// when Advance is called.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []scheduled
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After records msg and returns nil; the message is handed out by Advance.
func (s *ManualScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = append(s.pending, scheduled{due: s.now + d, seq: s.seq, msg: msg})
	return nil
}

// Advance moves the clock by d and returns every message now due, oldest first.
func (s *ManualScheduler) Advance(d time.Duration) []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now += d
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	var due []tea.Msg
	keep := s.pending[:0]
	for _, p := range s.pending {
		if p.due <= s.now {
			due = append(due, p.msg)
			continue
		}
		keep = append(keep, p)
	}
	s.pending = keep
	return due
}

// Pending reports how many messages are waiting.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
