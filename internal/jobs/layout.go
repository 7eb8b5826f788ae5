package jobs

import "fmt"

// Orientation selects how the layered diagram is laid out. It is a pure
// coordinate transform applied uniformly to all nodes at render time and has
// no effect on computed layers or the ordered table.
type Orientation string

const (
	// OrientationTopToBottom places layer 1 at the top, growing downward.
	OrientationTopToBottom Orientation = "top-bottom"
	// OrientationBottomToTop places layer 1 at the bottom, growing upward.
	OrientationBottomToTop Orientation = "bottom-top"
	// OrientationLeftToRight places layer 1 at the left, growing rightward.
	OrientationLeftToRight Orientation = "left-right"
	// OrientationRightToLeft places layer 1 at the right, growing leftward.
	OrientationRightToLeft Orientation = "right-left"
)

// Orientations lists all supported orientations in selector order.
func Orientations() []Orientation {
	return []Orientation{
		OrientationTopToBottom,
		OrientationBottomToTop,
		OrientationLeftToRight,
		OrientationRightToLeft,
	}
}

// ParseOrientation converts a config or flag value into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range Orientations() {
		if s == string(o) {
			return o, nil
		}
	}
	return "", fmt.Errorf("invalid orientation %q (valid: top-bottom, bottom-top, left-right, right-left)", s)
}

// Label returns the human-readable name for the orientation.
func (o Orientation) Label() string {
	switch o {
	case OrientationTopToBottom:
		return "Top to Bottom"
	case OrientationBottomToTop:
		return "Bottom to Top"
	case OrientationLeftToRight:
		return "Left to Right"
	case OrientationRightToLeft:
		return "Right to Left"
	default:
		return string(o)
	}
}

// Next cycles to the following orientation in selector order.
func (o Orientation) Next() Orientation {
	all := Orientations()
	for i, cur := range all {
		if cur == o {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Point is a node position in diagram coordinates. Y grows upward, matching
// plot conventions; the ASCII renderer flips it when printing.
type Point struct {
	X int
	Y int
}

// Positions computes diagram coordinates for every node under the given
// orientation. One axis encodes the display layer, the other spreads nodes
// by their insertion index i to avoid overlap:
//
//	top-bottom:  (i, -layer)
//	bottom-top:  (i, layer)
//	left-right:  (layer, -i)
//	right-left:  (-layer, -i)
func Positions(s *Snapshot, o Orientation) map[string]Point {
	pos := make(map[string]Point, s.Graph.NodeCount())

	for i, id := range s.Graph.Nodes() {
		layer := s.Layers[id] + displayLayerOffset
		switch o {
		case OrientationBottomToTop:
			pos[id] = Point{X: i, Y: layer}
		case OrientationLeftToRight:
			pos[id] = Point{X: layer, Y: -i}
		case OrientationRightToLeft:
			pos[id] = Point{X: -layer, Y: -i}
		default:
			pos[id] = Point{X: i, Y: -layer}
		}
	}

	return pos
}
