package sim

// Sound is a discrete audio event raised by the simulation.
type Sound int

const (
	SoundShotFired Sound = iota
	SoundShotgunHit
	SoundEnemyKilled
	SoundAmmoPickedUp
	SoundKeyPickedUp
	SoundReload
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundShotFired:
		return "shot_fired"
	case SoundShotgunHit:
		return "shotgun_hit"
	case SoundEnemyKilled:
		return "enemy_killed"
	case SoundAmmoPickedUp:
		return "ammo_picked_up"
	case SoundKeyPickedUp:
		return "key_picked_up"
	case SoundReload:
		return "reload"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// NoChannel is returned by SoundPlayer.Play when no voice is free.
const NoChannel = -1

// SoundPlayer plays sound effects. Play returns the channel used or NoChannel; running out
// of channels is never an error for the simulation.
type SoundPlayer interface {
	Play(sound Sound) int
}

type silentPlayer struct{}

func (silentPlayer) Play(Sound) int { return NoChannel }

// Silent returns a SoundPlayer that drops every sound.
func Silent() SoundPlayer {
	return silentPlayer{}
}
