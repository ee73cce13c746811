package sim

import "github.com/meghashyamc/stealth2d/world"

// Session is the world.World the player and the enemies share during a game. Level load
// requests are queued and applied by the Simulation once the tick is over.
type Session struct {
	flags      *world.Flags
	pending    uint16
	hasPending bool
}

func NewSession(flags *world.Flags) *Session {
	if flags == nil {
		flags = world.NewFlags()
	}
	return &Session{flags: flags}
}

func (s *Session) Flags() *world.Flags {
	return s.flags
}

func (s *Session) MarkUnlocked(category world.Category, id uint16) {
	s.flags.Set(category, id)
}

func (s *Session) IsUnlocked(category world.Category, id uint16) bool {
	return s.flags.Test(category, id)
}

// RequestLevelLoad queues a level load. Only the first request of a tick is kept.
func (s *Session) RequestLevelLoad(levelID uint16) {
	if s.hasPending {
		return
	}
	s.pending = levelID
	s.hasPending = true
}

func (s *Session) ResetProgress() {
	s.flags.Reset()
}

// TakePendingLevel returns and clears the queued level load.
func (s *Session) TakePendingLevel() (uint16, bool) {
	if !s.hasPending {
		return 0, false
	}
	s.hasPending = false
	return s.pending, true
}
