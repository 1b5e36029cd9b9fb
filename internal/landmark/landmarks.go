// Package landmark provides hand-skeleton keypoint types and the 2D geometry
// used by gesture and movement classification.
package landmark

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point is a 2D hand keypoint with coordinates normalized to [0,1]
// relative to the camera frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Set is an ordered sequence of hand landmarks. Index positions follow the
// MediaPipe convention above; a complete set has NumLandmarks entries.
type Set []Point

// Complete reports whether the set carries the full hand skeleton.
func (s Set) Complete() bool {
	return len(s) >= NumLandmarks
}

// Rect is the tracked hand region for the current frame. All fields are
// normalized to [0,1]. Rects are owned per-frame by the caller and never
// mutated here.
type Rect struct {
	XCenter float64 `json:"x_center"`
	YCenter float64 `json:"y_center"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Center returns the rect center as a Point.
func (r Rect) Center() Point {
	return Point{X: r.XCenter, Y: r.YCenter}
}

// Distance calculates the Euclidean distance between two points.
// NaN coordinates propagate into the result.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SignedAngleDeg returns the signed angle at vertex, measured from the ray
// vertex->a to the ray vertex->c, in degrees rounded half-up. The result lies
// in (-180, 180].
func SignedAngleDeg(vertex, a, c Point) int {
	ux := a.X - vertex.X
	uy := a.Y - vertex.Y
	vx := c.X - vertex.X
	vy := c.Y - vertex.Y

	dot := ux*vx + uy*vy
	cross := ux*vy - uy*vx

	rad := math.Atan2(cross, dot)
	deg := int(math.Floor(rad*180/math.Pi + 0.5))

	// Atan2 yields -pi for a negative-zero cross product, which would round
	// to -180; the half-open range maps that direction to 180.
	if deg == -180 {
		deg = 180
	}
	return deg
}

// HorizontalRay returns a point offset from p along the positive x axis.
// Passing it as the third argument of SignedAngleDeg measures an angle
// against the horizontal.
func HorizontalRay(p Point) Point {
	return Point{X: p.X + 0.1, Y: p.Y}
}
