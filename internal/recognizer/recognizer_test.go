package recognizer

import (
	"errors"
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/motion"
)

func handRect() landmark.Rect {
	return landmark.Rect{XCenter: 0.5, YCenter: 0.5, Width: 0.2, Height: 0.2}
}

func TestHandPresent(t *testing.T) {
	tests := []struct {
		name string
		rect landmark.Rect
		want bool
	}{
		{"normal hand", handRect(), true},
		{"zero rect", landmark.Rect{}, false},
		{"too narrow", landmark.Rect{Width: 0.005, Height: 0.2}, false},
		{"too short", landmark.Rect{Width: 0.2, Height: 0.005}, false},
	}

	for _, tt := range tests {
		if got := HandPresent(tt.rect); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestProcess_AbsentHand(t *testing.T) {
	r := New()
	tiny := landmark.Rect{XCenter: 0.5, YCenter: 0.5, Width: 0.005, Height: 0.005}

	// Landmarks are not required when the gate rejects the frame
	res, err := r.Process(tiny, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gesture != gesture.None {
		t.Errorf("expected gesture %q for an absent hand, got %q", gesture.None, res.Gesture)
	}
	if res.Scroll != motion.ScrollNone || res.Zoom != motion.ZoomNone || res.Slide != motion.SlideNone {
		t.Errorf("expected sentinel movement for an absent hand, got %+v", res)
	}
}

func TestProcess_AbsentFramesLeaveHistoryUntouched(t *testing.T) {
	r := New()
	tiny := landmark.Rect{Width: 0.005, Height: 0.005}

	if _, err := r.Process(tiny, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The next admitted frame is still the session's first tracked frame,
	// so it must not report movement.
	res, err := r.Process(handRect(), landmark.FistLandmarks())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Scroll != motion.ScrollNone || res.Zoom != motion.ZoomNone || res.Slide != motion.SlideNone {
		t.Errorf("expected no movement on the first tracked frame, got %+v", res)
	}
}

func TestProcess_TooFewLandmarks(t *testing.T) {
	r := New()

	_, err := r.Process(handRect(), make(landmark.Set, 5))
	if !errors.Is(err, ErrTooFewLandmarks) {
		t.Fatalf("expected ErrTooFewLandmarks, got %v", err)
	}
}

func TestProcess_FistFirstFrame(t *testing.T) {
	r := New()

	res, err := r.Process(handRect(), landmark.FistLandmarks())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Gesture != gesture.Fist {
		t.Errorf("expected %q, got %q", gesture.Fist, res.Gesture)
	}
	if res.Scroll != motion.ScrollNone || res.Zoom != motion.ZoomNone || res.Slide != motion.SlideNone {
		t.Errorf("expected no movement on the first frame, got %+v", res)
	}
}

func TestProcess_OKGesture(t *testing.T) {
	r := New()

	res, err := r.Process(handRect(), landmark.OKLandmarks())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gesture != gesture.OK {
		t.Errorf("expected %q, got %q", gesture.OK, res.Gesture)
	}
}

func TestProcess_ScrollAcrossFrames(t *testing.T) {
	r := New()
	set := landmark.OpenPalmLandmarks()

	if _, err := r.Process(handRect(), set); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved := landmark.Rect{XCenter: 0.6, YCenter: 0.5, Width: 0.2, Height: 0.2}
	res, err := r.Process(moved, set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Gesture != gesture.Five {
		t.Errorf("expected %q, got %q", gesture.Five, res.Gesture)
	}
	if res.Scroll != motion.ScrollRight {
		t.Errorf("expected %q, got %q", motion.ScrollRight, res.Scroll)
	}
}

func TestProcess_ResetClearsHistory(t *testing.T) {
	r := New()
	set := landmark.OpenPalmLandmarks()

	if _, err := r.Process(handRect(), set); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Reset()

	moved := landmark.Rect{XCenter: 0.9, YCenter: 0.5, Width: 0.2, Height: 0.2}
	res, err := r.Process(moved, set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Scroll != motion.ScrollNone {
		t.Errorf("expected no scroll right after reset, got %q", res.Scroll)
	}
}

func TestProcess_NaNCoordinatesDegradeToNone(t *testing.T) {
	r := New()

	set := make(landmark.Set, landmark.NumLandmarks)
	for i := range set {
		set[i] = landmark.Point{X: math.NaN(), Y: math.NaN()}
	}

	res, err := r.Process(handRect(), set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gesture != gesture.None {
		t.Errorf("expected %q for NaN landmarks, got %q", gesture.None, res.Gesture)
	}
}
