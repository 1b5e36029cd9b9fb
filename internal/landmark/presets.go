package landmark

// Preset landmark sets for well-known hand poses. They are used by tests
// across the module and as reference inputs for replaying the classifier
// without a live tracking pipeline. Coordinates follow the camera-image
// convention: y grows downward, so an extended finger pointing up has
// decreasing y values toward the tip.

// OpenPalmLandmarks returns a hand with all five fingers extended (FIVE).
func OpenPalmLandmarks() Set {
	s := make(Set, NumLandmarks)

	s[Wrist] = Point{X: 0.50, Y: 0.90}

	// Thumb extended to the side, x decreasing toward the tip
	s[ThumbCMC] = Point{X: 0.44, Y: 0.84}
	s[ThumbMCP] = Point{X: 0.38, Y: 0.80}
	s[ThumbIP] = Point{X: 0.31, Y: 0.77}
	s[ThumbTip] = Point{X: 0.24, Y: 0.74}

	// Index finger extended upward
	s[IndexMCP] = Point{X: 0.44, Y: 0.62}
	s[IndexPIP] = Point{X: 0.44, Y: 0.55}
	s[IndexDIP] = Point{X: 0.44, Y: 0.45}
	s[IndexTip] = Point{X: 0.44, Y: 0.35}

	// Middle finger extended upward
	s[MiddleMCP] = Point{X: 0.50, Y: 0.60}
	s[MiddlePIP] = Point{X: 0.50, Y: 0.52}
	s[MiddleDIP] = Point{X: 0.50, Y: 0.41}
	s[MiddleTip] = Point{X: 0.50, Y: 0.30}

	// Ring finger extended upward
	s[RingMCP] = Point{X: 0.56, Y: 0.62}
	s[RingPIP] = Point{X: 0.56, Y: 0.54}
	s[RingDIP] = Point{X: 0.56, Y: 0.44}
	s[RingTip] = Point{X: 0.56, Y: 0.34}

	// Pinky finger extended upward
	s[PinkyMCP] = Point{X: 0.62, Y: 0.65}
	s[PinkyPIP] = Point{X: 0.62, Y: 0.58}
	s[PinkyDIP] = Point{X: 0.62, Y: 0.50}
	s[PinkyTip] = Point{X: 0.62, Y: 0.42}

	return s
}

// FistLandmarks returns a hand with all five fingers folded (FIST).
func FistLandmarks() Set {
	s := make(Set, NumLandmarks)

	s[Wrist] = Point{X: 0.50, Y: 0.90}

	// Thumb folded across the palm, x increasing toward the tip
	s[ThumbCMC] = Point{X: 0.44, Y: 0.82}
	s[ThumbMCP] = Point{X: 0.40, Y: 0.76}
	s[ThumbIP] = Point{X: 0.45, Y: 0.78}
	s[ThumbTip] = Point{X: 0.52, Y: 0.80}

	// Index finger curled, tip folding back toward the palm
	s[IndexMCP] = Point{X: 0.44, Y: 0.62}
	s[IndexPIP] = Point{X: 0.44, Y: 0.58}
	s[IndexDIP] = Point{X: 0.44, Y: 0.65}
	s[IndexTip] = Point{X: 0.44, Y: 0.72}

	// Middle finger curled
	s[MiddleMCP] = Point{X: 0.50, Y: 0.60}
	s[MiddlePIP] = Point{X: 0.50, Y: 0.56}
	s[MiddleDIP] = Point{X: 0.50, Y: 0.63}
	s[MiddleTip] = Point{X: 0.50, Y: 0.70}

	// Ring finger curled
	s[RingMCP] = Point{X: 0.56, Y: 0.62}
	s[RingPIP] = Point{X: 0.56, Y: 0.58}
	s[RingDIP] = Point{X: 0.56, Y: 0.65}
	s[RingTip] = Point{X: 0.56, Y: 0.72}

	// Pinky finger curled
	s[PinkyMCP] = Point{X: 0.62, Y: 0.65}
	s[PinkyPIP] = Point{X: 0.62, Y: 0.61}
	s[PinkyDIP] = Point{X: 0.62, Y: 0.67}
	s[PinkyTip] = Point{X: 0.62, Y: 0.74}

	return s
}

// OneLandmarks returns a hand with only the index finger extended (ONE).
func OneLandmarks() Set {
	s := FistLandmarks()

	s[IndexMCP] = Point{X: 0.44, Y: 0.62}
	s[IndexPIP] = Point{X: 0.44, Y: 0.55}
	s[IndexDIP] = Point{X: 0.44, Y: 0.45}
	s[IndexTip] = Point{X: 0.44, Y: 0.35}

	return s
}

// YeahLandmarks returns a hand with index and middle fingers extended (YEAH).
func YeahLandmarks() Set {
	s := OneLandmarks()

	s[MiddleMCP] = Point{X: 0.50, Y: 0.60}
	s[MiddlePIP] = Point{X: 0.50, Y: 0.52}
	s[MiddleDIP] = Point{X: 0.50, Y: 0.41}
	s[MiddleTip] = Point{X: 0.50, Y: 0.30}

	return s
}

// OKLandmarks returns a hand with thumb tip and index tip touching while the
// remaining three fingers are extended (OK).
func OKLandmarks() Set {
	s := OpenPalmLandmarks()

	// Thumb curls inward so the tip meets the index tip
	s[ThumbMCP] = Point{X: 0.40, Y: 0.78}
	s[ThumbIP] = Point{X: 0.43, Y: 0.73}
	s[ThumbTip] = Point{X: 0.46, Y: 0.68}

	// Index finger closes onto the thumb
	s[IndexMCP] = Point{X: 0.44, Y: 0.62}
	s[IndexPIP] = Point{X: 0.44, Y: 0.58}
	s[IndexDIP] = Point{X: 0.44, Y: 0.64}
	s[IndexTip] = Point{X: 0.45, Y: 0.70}

	return s
}
