package annotation

import (
	"melodia/internal/feedback"
)

// Player is the audio player a timeline drives.
type Player interface {
	// SeekTo moves playback to a normalized position in [0, 1].
	SeekTo(progress float64) error
	Play() error
	IsPlaying() bool
}

// Timeline binds one player to its playhead and the recording duration.
type Timeline struct {
	Player   Player
	Playhead *Playhead
	Duration float64
}

func NewTimeline(player Player, duration float64) *Timeline {
	return &Timeline{
		Player:   player,
		Playhead: NewPlayhead(),
		Duration: duration,
	}
}

// Activate seeks to the marker and starts playback if the player is paused.
// With an unknown duration nothing happens.
func (t *Timeline) Activate(m Marker) error {
	target, ok := SeekTarget(m.TimestampSeconds, t.Duration)
	if !ok {
		return nil
	}

	if err := t.Player.SeekTo(target); err != nil {
		return err
	}
	t.Playhead.Set(target * t.Duration)

	if !t.Player.IsPlaying() {
		return t.Player.Play()
	}

	return nil
}

// Draft stamps a new feedback request with the current playhead time.
func (t *Timeline) Draft(comment string) feedback.CreateFeedback {
	ts := t.Playhead.Current()

	return feedback.CreateFeedback{
		Comment:          comment,
		TimestampSeconds: &ts,
	}
}
