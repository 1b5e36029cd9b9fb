// Package motion classifies hand movement between consecutive frames into
// scroll, zoom, and slide directions.
package motion

import (
	"math"

	"github.com/ayusman/mudra/internal/landmark"
)

// Scroll is the direction of hand-center displacement.
type Scroll string

// Zoom is the direction of hand-size change.
type Zoom string

// Slide is the direction of wrist-orientation change.
type Slide string

// Movement vocabularies. The three-underscore sentinel means no movement of
// that kind was recognized this frame.
const (
	ScrollNone  Scroll = "___"
	ScrollRight Scroll = "right"
	ScrollUp    Scroll = "up"
	ScrollLeft  Scroll = "left"
	ScrollDown  Scroll = "down"

	ZoomNone Zoom = "___"
	ZoomIn   Zoom = "zoom in"
	ZoomOut  Zoom = "zoom out"

	SlideNone  Slide = "___"
	SlideLeft  Slide = "slide left"
	SlideRight Slide = "slide right"
)

// Movement thresholds. Scroll and zoom thresholds scale with the current rect
// height so that apparent motion is distance-invariant: a hand near the
// camera must move as far, relative to its own size, as a hand far away.
const (
	scrollDistanceFactor = 0.02
	zoomHeightFactor     = 0.03
	slideAngleDelta      = 12

	// Slide is gated to a near-vertical forearm. Detection assumes a
	// camera-facing upright wrist; mirrored feeds are not compensated.
	slideGateMinDeg = 80
	slideGateMaxDeg = 100
)

// Result bundles the three independent movement classifications for one frame.
type Result struct {
	Scroll Scroll `json:"scroll"`
	Zoom   Zoom   `json:"zoom"`
	Slide  Slide  `json:"slide"`
}

// NoMovement is the all-sentinel result.
var NoMovement = Result{Scroll: ScrollNone, Zoom: ZoomNone, Slide: SlideNone}

// Tracker holds the previous frame's hand geometry for one tracked-hand
// session. One Tracker belongs to exactly one session and must not be shared
// across concurrently processed sessions; frames within a session must be
// fed sequentially.
type Tracker struct {
	prevCenter landmark.Point
	hasCenter  bool

	prevHeight float64
	hasHeight  bool

	prevAngle int
	hasAngle  bool

	// frames counts invocations; slide is evaluated only on even values to
	// decimate orientation noise.
	frames uint64
}

// NewTracker creates a Tracker with no history. The first tracked frame
// always yields no movement.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Reset clears all history, returning the tracker to the fresh-session state.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Track classifies the movement between the stored previous frame and the
// current one, then updates the stored history. Absent history degrades to
// sentinel results, never an error. The landmark set must be complete.
func (t *Tracker) Track(rect landmark.Rect, set landmark.Set) Result {
	res := Result{
		Scroll: t.trackScroll(rect),
		Zoom:   t.trackZoom(rect),
		Slide:  t.trackSlide(set),
	}
	t.frames++
	return res
}

func (t *Tracker) trackScroll(rect landmark.Rect) Scroll {
	scroll := ScrollNone

	center := rect.Center()
	if t.hasCenter {
		d := landmark.Distance(center, t.prevCenter)
		if d > scrollDistanceFactor*rect.Height {
			angle := landmark.SignedAngleDeg(t.prevCenter, center, landmark.HorizontalRay(t.prevCenter))
			switch {
			case angle >= -45 && angle < 45:
				scroll = ScrollRight
			case angle >= 45 && angle < 135:
				scroll = ScrollUp
			case angle >= 135 || angle < -135:
				scroll = ScrollLeft
			case angle >= -135 && angle < -45:
				scroll = ScrollDown
			}
		}
	}

	t.prevCenter = center
	t.hasCenter = true
	return scroll
}

func (t *Tracker) trackZoom(rect landmark.Rect) Zoom {
	zoom := ZoomNone

	if t.hasHeight {
		threshold := zoomHeightFactor * rect.Height
		if rect.Height < t.prevHeight-threshold {
			zoom = ZoomOut
		} else if rect.Height > t.prevHeight+threshold {
			zoom = ZoomIn
		}
	}

	t.prevHeight = rect.Height
	t.hasHeight = true
	return zoom
}

func (t *Tracker) trackSlide(set landmark.Set) Slide {
	slide := SlideNone

	// Odd frames are skipped entirely: no orientation is computed and the
	// stored angle is left untouched.
	if t.frames%2 != 0 {
		return slide
	}

	wrist := set[landmark.Wrist]
	mcp := set[landmark.MiddleMCP]

	// A NaN coordinate would convert to a garbage integer angle, passing
	// the threshold comparison and corrupting the stored angle. Treat the
	// frame like a skipped one instead.
	if math.IsNaN(wrist.X) || math.IsNaN(wrist.Y) || math.IsNaN(mcp.X) || math.IsNaN(mcp.Y) {
		return slide
	}

	angle := landmark.SignedAngleDeg(wrist, mcp, landmark.HorizontalRay(wrist))

	if t.hasAngle && t.prevAngle >= slideGateMinDeg && t.prevAngle <= slideGateMaxDeg {
		if angle > t.prevAngle+slideAngleDelta {
			slide = SlideLeft
		} else if angle < t.prevAngle-slideAngleDelta {
			slide = SlideRight
		}
	}

	t.prevAngle = angle
	t.hasAngle = true
	return slide
}
