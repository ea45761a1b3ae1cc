// Package audio plays the two fire-and-forget sound cues. Cues are
// synthesized procedurally; nothing is loaded from disk.
package audio

// Cue identifies a sound effect.
type Cue int

const (
	CueBoost Cue = iota
	CueDeath
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBoost:
		return "boost"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Sink requests playback. Play must return immediately.
type Sink interface {
	Play(c Cue)
}

// Nop discards every cue. Used when audio is muted or unavailable.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
