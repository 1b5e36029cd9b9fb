// Package recognizer ties the presence gate, finger-state classification,
// static gesture matching, and movement tracking into a per-frame pipeline.
package recognizer

import (
	"errors"
	"fmt"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/motion"
)

// ErrTooFewLandmarks is returned when a frame passes the presence gate but
// its landmark set does not carry the full hand skeleton. The frame fails;
// no classification is guessed.
var ErrTooFewLandmarks = errors.New("landmark set is incomplete")

// minRectSize is the presence gate: a tracked rect narrower or shorter than
// this cannot plausibly be a hand.
const minRectSize = 0.01

// HandPresent reports whether the tracked rect is large enough to represent
// a real hand.
func HandPresent(rect landmark.Rect) bool {
	return rect.Width >= minRectSize && rect.Height >= minRectSize
}

// Result is the per-frame output: one static gesture name and three
// independent movement classifications, each falling back to the
// three-underscore sentinel.
type Result struct {
	Gesture gesture.Name  `json:"gesture"`
	Scroll  motion.Scroll `json:"scroll"`
	Zoom    motion.Zoom   `json:"zoom"`
	Slide   motion.Slide  `json:"slide"`
}

func absent() Result {
	return Result{
		Gesture: gesture.None,
		Scroll:  motion.ScrollNone,
		Zoom:    motion.ZoomNone,
		Slide:   motion.SlideNone,
	}
}

// Recognizer processes the frame stream of one tracked-hand session. It is
// not safe for concurrent use: the caller serializes frames per session, and
// independent hands get independent Recognizer instances.
type Recognizer struct {
	tracker *motion.Tracker
}

// New creates a Recognizer for a fresh hand-tracking session.
func New() *Recognizer {
	return &Recognizer{tracker: motion.NewTracker()}
}

// Process classifies one frame. When the presence gate rejects the rect the
// result is fully sentinel, the landmarks are not read, and the movement
// history is left untouched. Otherwise the landmark set must be complete.
func (r *Recognizer) Process(rect landmark.Rect, set landmark.Set) (Result, error) {
	if !HandPresent(rect) {
		return absent(), nil
	}

	if !set.Complete() {
		return absent(), fmt.Errorf("%w: got %d of %d landmarks", ErrTooFewLandmarks, len(set), landmark.NumLandmarks)
	}

	states := gesture.Fingers(set)
	mov := r.tracker.Track(rect, set)

	return Result{
		Gesture: gesture.Static(states, set),
		Scroll:  mov.Scroll,
		Zoom:    mov.Zoom,
		Slide:   mov.Slide,
	}, nil
}

// Reset starts a new session, clearing all movement history.
func (r *Recognizer) Reset() {
	r.tracker.Reset()
}
