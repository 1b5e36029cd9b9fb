package gesture

import "github.com/ayusman/mudra/internal/landmark"

// Name is a recognized static hand-pose gesture. The vocabulary is closed;
// None is the sentinel for an unrecognized or absent hand.
type Name string

const (
	None      Name = "___"
	Five      Name = "FIVE"
	Four      Name = "FOUR"
	Three     Name = "THREE"
	Two       Name = "TWO"
	One       Name = "ONE"
	Yeah      Name = "YEAH"
	Rock      Name = "ROCK"
	Spiderman Name = "SPIDERMAN"
	Fist      Name = "FIST"
	OK        Name = "OK"
)

// thumbNearIndexMax is the maximum normalized distance between thumb tip and
// index tip for the OK proximity predicate.
const thumbNearIndexMax = 0.1

// rule is one entry of the ordered classification table. A rule matches when
// every relevant finger is in the wanted state. anyThumb rules ignore the
// thumb state entirely; thumbNearIndex additionally requires the thumb tip to
// touch the index tip.
type rule struct {
	name           Name
	states         [NumFingers]FingerState
	anyThumb       bool
	thumbNearIndex bool
}

// Classification table, first match wins. The OK rule deliberately
// substitutes the tip-proximity predicate for the thumb's own state: a thumb
// touching a fingertip does not register as fully flexed under the chain
// comparison.
var rules = []rule{
	{name: Five, states: [NumFingers]FingerState{Open, Open, Open, Open, Open}},
	{name: Four, states: [NumFingers]FingerState{Closed, Open, Open, Open, Open}},
	{name: Three, states: [NumFingers]FingerState{Open, Open, Open, Closed, Closed}},
	{name: Two, states: [NumFingers]FingerState{Open, Open, Closed, Closed, Closed}},
	{name: One, states: [NumFingers]FingerState{Closed, Open, Closed, Closed, Closed}},
	{name: Yeah, states: [NumFingers]FingerState{Closed, Open, Open, Closed, Closed}},
	{name: Rock, states: [NumFingers]FingerState{Closed, Open, Closed, Closed, Open}},
	{name: Spiderman, states: [NumFingers]FingerState{Open, Open, Closed, Closed, Open}},
	{name: Fist, states: [NumFingers]FingerState{Closed, Closed, Closed, Closed, Closed}},
	{name: OK, states: [NumFingers]FingerState{Unknown, Closed, Open, Open, Open}, anyThumb: true, thumbNearIndex: true},
}

func (r rule) matches(states [NumFingers]FingerState, set landmark.Set) bool {
	for f := Thumb; f < NumFingers; f++ {
		if f == Thumb && r.anyThumb {
			continue
		}
		if states[f] != r.states[f] {
			return false
		}
	}
	if r.thumbNearIndex {
		d := landmark.Distance(set[landmark.ThumbTip], set[landmark.IndexTip])
		if !(d < thumbNearIndexMax) {
			return false
		}
	}
	return true
}

// Static maps a finger-state tuple to a gesture name via the ordered rule
// table. The landmark set is consulted only for the OK proximity predicate.
func Static(states [NumFingers]FingerState, set landmark.Set) Name {
	for _, r := range rules {
		if r.matches(states, set) {
			return r.name
		}
	}
	return None
}

// Recognize classifies a complete landmark set into a static gesture name.
func Recognize(set landmark.Set) Name {
	return Static(Fingers(set), set)
}
