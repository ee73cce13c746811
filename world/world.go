package world

// World is the handle entities use to touch state they do not own. It is passed into
// update calls rather than stored on the entities.
type World interface {
	MarkUnlocked(category Category, id uint16)
	IsUnlocked(category Category, id uint16) bool
	RequestLevelLoad(levelID uint16)
	// ResetProgress clears every unlocked flag, as on death or a new game.
	ResetProgress()
}
