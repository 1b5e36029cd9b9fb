// Package gesture classifies a single frame of hand landmarks into discrete
// finger states and a static hand-pose name.
package gesture

import "github.com/ayusman/mudra/internal/landmark"

// FingerState is the discrete flexion state of one finger, recomputed fresh
// every frame from the current landmarks only.
type FingerState int

const (
	// Unknown means the finger joints are in an ambiguous or borderline
	// arrangement.
	Unknown FingerState = iota
	// Open means the finger is extended.
	Open
	// Closed means the finger is folded toward the palm.
	Closed
)

// String returns the finger state name.
func (s FingerState) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Finger indices into a finger-state tuple.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// flexThreshold is the minimum normalized-coordinate gap between consecutive
// joints for a chain to count as strictly monotonic.
const flexThreshold = 0.01

type axis int

const (
	axisX axis = iota
	axisY
)

// chain designates the three joints inspected along one finger and the axis
// the comparison runs on. The thumb flexes sideways relative to a
// camera-facing palm, so it is judged on x while the other four fingers are
// judged on y.
type chain struct {
	pivot, middle, tip int
	axis               axis
}

var chains = [NumFingers]chain{
	Thumb:  {landmark.ThumbMCP, landmark.ThumbIP, landmark.ThumbTip, axisX},
	Index:  {landmark.IndexPIP, landmark.IndexDIP, landmark.IndexTip, axisY},
	Middle: {landmark.MiddlePIP, landmark.MiddleDIP, landmark.MiddleTip, axisY},
	Ring:   {landmark.RingPIP, landmark.RingDIP, landmark.RingTip, axisY},
	Pinky:  {landmark.PinkyPIP, landmark.PinkyDIP, landmark.PinkyTip, axisY},
}

func (c chain) coord(p landmark.Point) float64 {
	if c.axis == axisX {
		return p.X
	}
	return p.Y
}

// classify maps one finger chain to a state. Open is a strictly monotonic
// decrease of the chain coordinate from pivot to tip, Closed a strictly
// monotonic increase; anything else is Unknown.
func (c chain) classify(set landmark.Set) FingerState {
	pivot := c.coord(set[c.pivot])
	middle := c.coord(set[c.middle])
	tip := c.coord(set[c.tip])

	switch {
	case middle+flexThreshold < pivot && tip+flexThreshold < middle:
		return Open
	case pivot+flexThreshold < middle && middle+flexThreshold < tip:
		return Closed
	default:
		return Unknown
	}
}

// Fingers returns the flexion state of all five fingers for the given
// landmark set. The set must be complete.
func Fingers(set landmark.Set) [NumFingers]FingerState {
	var states [NumFingers]FingerState
	for i, c := range chains {
		states[i] = c.classify(set)
	}
	return states
}
