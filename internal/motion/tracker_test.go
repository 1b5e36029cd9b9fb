package motion

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/landmark"
)

// rectAt builds a hand rect centered at (x, y) with the given height.
func rectAt(x, y, height float64) landmark.Rect {
	return landmark.Rect{XCenter: x, YCenter: y, Width: height, Height: height}
}

// orientedSet builds a minimal landmark set whose wrist-to-middle-MCP axis
// forms the given angle with the horizontal. 90 degrees is an upright hand.
func orientedSet(angleDeg float64) landmark.Set {
	set := make(landmark.Set, landmark.NumLandmarks)
	wrist := landmark.Point{X: 0.5, Y: 0.9}
	rad := angleDeg * math.Pi / 180

	set[landmark.Wrist] = wrist
	// y grows downward, so an upward-pointing hand has a smaller MCP y
	set[landmark.MiddleMCP] = landmark.Point{
		X: wrist.X + 0.3*math.Cos(rad),
		Y: wrist.Y - 0.3*math.Sin(rad),
	}
	return set
}

func TestTracker_FirstFrameIsQuiet(t *testing.T) {
	tr := NewTracker()

	res := tr.Track(rectAt(0.5, 0.5, 0.2), orientedSet(90))

	if res != NoMovement {
		t.Errorf("expected no movement on the first frame, got %+v", res)
	}

	// History must be fully populated after the first frame
	if !tr.hasCenter || !tr.hasHeight || !tr.hasAngle {
		t.Errorf("expected full history after first frame: center=%v height=%v angle=%v",
			tr.hasCenter, tr.hasHeight, tr.hasAngle)
	}
}

func TestTracker_ScrollThresholdBoundary(t *testing.T) {
	set := orientedSet(90)

	// With height 0.5 the scroll threshold is 0.01; the comparison is
	// strict, so a displacement at or below it must not scroll
	tr := NewTracker()
	tr.Track(rectAt(0.5, 0.5, 0.5), set)

	res := tr.Track(rectAt(0.5099, 0.5, 0.5), set)
	if res.Scroll != ScrollNone {
		t.Errorf("displacement within the threshold must not scroll, got %q", res.Scroll)
	}

	tr.Reset()
	tr.Track(rectAt(0.5, 0.5, 0.5), set)

	res = tr.Track(rectAt(0.511, 0.5, 0.5), set)
	if res.Scroll != ScrollRight {
		t.Errorf("expected %q just above the threshold, got %q", ScrollRight, res.Scroll)
	}
}

func TestTracker_ScrollDirections(t *testing.T) {
	set := orientedSet(90)

	tests := []struct {
		name string
		to   landmark.Rect
		want Scroll
	}{
		{"right", rectAt(0.6, 0.5, 0.2), ScrollRight},
		{"left", rectAt(0.4, 0.5, 0.2), ScrollLeft},
		// y grows downward: moving up on screen means y decreases
		{"up", rectAt(0.5, 0.4, 0.2), ScrollUp},
		{"down", rectAt(0.5, 0.6, 0.2), ScrollDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			tr.Track(rectAt(0.5, 0.5, 0.2), set)

			res := tr.Track(tt.to, set)
			if res.Scroll != tt.want {
				t.Errorf("expected %q, got %q", tt.want, res.Scroll)
			}
		})
	}
}

func TestTracker_ScrollCenterAlwaysUpdated(t *testing.T) {
	set := orientedSet(90)
	tr := NewTracker()

	// Two sub-threshold steps of 0.008 each: the second step must be
	// measured against the first frame's center, not the origin, so
	// neither step scrolls even though the total displacement exceeds
	// the threshold.
	tr.Track(rectAt(0.5, 0.5, 0.5), set)
	if res := tr.Track(rectAt(0.508, 0.5, 0.5), set); res.Scroll != ScrollNone {
		t.Errorf("first sub-threshold step: expected none, got %q", res.Scroll)
	}
	if res := tr.Track(rectAt(0.516, 0.5, 0.5), set); res.Scroll != ScrollNone {
		t.Errorf("second sub-threshold step: expected none, got %q", res.Scroll)
	}
}

func TestTracker_Zoom(t *testing.T) {
	set := orientedSet(90)

	t.Run("in", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(rectAt(0.5, 0.5, 0.20), set)

		res := tr.Track(rectAt(0.5, 0.5, 0.25), set)
		if res.Zoom != ZoomIn {
			t.Errorf("expected %q for a growing rect, got %q", ZoomIn, res.Zoom)
		}
	})

	t.Run("out", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(rectAt(0.5, 0.5, 0.25), set)

		res := tr.Track(rectAt(0.5, 0.5, 0.20), set)
		if res.Zoom != ZoomOut {
			t.Errorf("expected %q for a shrinking rect, got %q", ZoomOut, res.Zoom)
		}
	})

	t.Run("within threshold", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(rectAt(0.5, 0.5, 0.200), set)

		res := tr.Track(rectAt(0.5, 0.5, 0.202), set)
		if res.Zoom != ZoomNone {
			t.Errorf("expected none for a sub-threshold change, got %q", res.Zoom)
		}
	})
}

func TestTracker_SlideLeftRight(t *testing.T) {
	rect := rectAt(0.5, 0.5, 0.2)

	t.Run("left", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(rect, orientedSet(90)) // frame 0: stores angle 90
		tr.Track(rect, orientedSet(90)) // frame 1: skipped

		res := tr.Track(rect, orientedSet(110)) // frame 2: 110 > 90+12
		if res.Slide != SlideLeft {
			t.Errorf("expected %q, got %q", SlideLeft, res.Slide)
		}
	})

	t.Run("right", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(rect, orientedSet(95))
		tr.Track(rect, orientedSet(95))

		res := tr.Track(rect, orientedSet(70)) // 70 < 95-12
		if res.Slide != SlideRight {
			t.Errorf("expected %q, got %q", SlideRight, res.Slide)
		}
	})

	t.Run("within delta", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(rect, orientedSet(90))
		tr.Track(rect, orientedSet(90))

		res := tr.Track(rect, orientedSet(100)) // delta 10 <= 12
		if res.Slide != SlideNone {
			t.Errorf("expected none for a small tilt, got %q", res.Slide)
		}
	})
}

func TestTracker_SlideGatedToUprightWrist(t *testing.T) {
	rect := rectAt(0.5, 0.5, 0.2)
	tr := NewTracker()

	// Previous angle 50 is outside the [80,100] gate: even a large delta
	// must not slide.
	tr.Track(rect, orientedSet(50))
	tr.Track(rect, orientedSet(50))

	res := tr.Track(rect, orientedSet(110))
	if res.Slide != SlideNone {
		t.Errorf("expected none outside the upright gate, got %q", res.Slide)
	}
}

func TestTracker_SlideDecimation(t *testing.T) {
	rect := rectAt(0.5, 0.5, 0.2)
	tr := NewTracker()

	tr.Track(rect, orientedSet(90)) // frame 0: stores 90

	// Frame 1 is skipped: the extreme tilt is neither classified nor stored
	res := tr.Track(rect, orientedSet(150))
	if res.Slide != SlideNone {
		t.Errorf("odd frame must not slide, got %q", res.Slide)
	}

	// Frame 2 compares against 90, not 150
	res = tr.Track(rect, orientedSet(91))
	if res.Slide != SlideNone {
		t.Errorf("expected none when compared against the retained angle, got %q", res.Slide)
	}
	if tr.prevAngle != 91 {
		t.Errorf("expected stored angle 91, got %d", tr.prevAngle)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Track(rectAt(0.5, 0.5, 0.2), orientedSet(90))
	tr.Track(rectAt(0.6, 0.5, 0.2), orientedSet(90))

	tr.Reset()

	if tr.hasCenter || tr.hasHeight || tr.hasAngle || tr.frames != 0 {
		t.Error("expected empty history after reset")
	}

	res := tr.Track(rectAt(0.9, 0.9, 0.2), orientedSet(90))
	if res != NoMovement {
		t.Errorf("expected no movement on the first frame after reset, got %+v", res)
	}
}

func TestTracker_SlideNaNLandmarksAreQuiet(t *testing.T) {
	rect := rectAt(0.5, 0.5, 0.2)
	tr := NewTracker()

	nanSet := make(landmark.Set, landmark.NumLandmarks)
	for i := range nanSet {
		nanSet[i] = landmark.Point{X: math.NaN(), Y: math.NaN()}
	}

	tr.Track(rect, orientedSet(90)) // frame 0: stores angle 90
	tr.Track(rect, orientedSet(90)) // frame 1: skipped

	// Frame 2 is evaluated with upright history; NaN coordinates must not
	// produce a slide label or disturb the stored angle
	res := tr.Track(rect, nanSet)
	if res.Slide != SlideNone {
		t.Errorf("expected none for NaN landmarks, got %q", res.Slide)
	}
	if tr.prevAngle != 90 {
		t.Errorf("expected stored angle 90 after the NaN frame, got %d", tr.prevAngle)
	}

	// The retained history still drives later evaluated frames
	tr.Track(rect, orientedSet(90)) // frame 3: skipped
	res = tr.Track(rect, orientedSet(110))
	if res.Slide != SlideLeft {
		t.Errorf("expected %q against the retained angle, got %q", SlideLeft, res.Slide)
	}
}

func TestTracker_NaNGeometryIsQuiet(t *testing.T) {
	tr := NewTracker()
	tr.Track(rectAt(0.5, 0.5, 0.2), orientedSet(90))

	bad := rectAt(math.NaN(), math.NaN(), math.NaN())
	res := tr.Track(bad, orientedSet(90))

	if res.Scroll != ScrollNone || res.Zoom != ZoomNone {
		t.Errorf("expected sentinel results for NaN geometry, got %+v", res)
	}
}
