// Package annotation maps feedback timestamps onto a recording's timeline:
// marker positions, seek targets and hover labels.
package annotation

import (
	"fmt"
	"math"
	"strings"

	"melodia/internal/feedback"
)

// PointPosition returns where ts sits on a timeline of the given duration,
// as a percentage in [0, 100]. A non-positive or non-finite duration puts
// every point at 0.
func PointPosition(ts, duration float64) float64 {
	r, ok := ratio(ts, duration)
	if !ok {
		return 0
	}

	return clamp(r*100, 0, 100)
}

// SeekTarget returns the normalized player position for ts. ok is false when
// the duration is unknown and the player must not be moved.
func SeekTarget(ts, duration float64) (target float64, ok bool) {
	r, ok := ratio(ts, duration)
	if !ok {
		return 0, false
	}

	return clamp(r, 0, 1), true
}

func ratio(ts, duration float64) (float64, bool) {
	if duration <= 0 || math.IsInf(duration, 0) || math.IsNaN(duration) {
		return 0, false
	}

	r := ts / duration
	if math.IsNaN(r) {
		return 0, false
	}

	return r, true
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))

	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Label is the hover text of a marker.
func Label(comment string, ts float64) string {
	if strings.TrimSpace(comment) != "" {
		return comment
	}

	return "feedback at " + FormatTime(ts)
}

type Marker struct {
	FeedbackID       string  `json:"feedback_id"`
	TimestampSeconds float64 `json:"timestamp_seconds"`
	Position         float64 `json:"position"`
	Label            string  `json:"label"`
	IsResolved       bool    `json:"is_resolved"`
	Likes            int     `json:"likes"`
}

// Markers builds one marker per top-level feedback, in input order.
// Replies are shown under their parent and get no marker of their own.
func Markers(items []feedback.Feedback, duration float64) []Marker {
	markers := make([]Marker, 0, len(items))
	for _, f := range items {
		if f.IsReply() {
			continue
		}

		var ts float64
		if f.TimestampSeconds != nil {
			ts = *f.TimestampSeconds
		}

		markers = append(markers, Marker{
			FeedbackID:       f.ID,
			TimestampSeconds: ts,
			Position:         PointPosition(ts, duration),
			Label:            Label(f.Comment, ts),
			IsResolved:       f.IsResolved,
			Likes:            f.Likes,
		})
	}

	return markers
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
