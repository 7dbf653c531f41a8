// Package tile models the collision shapes of a tile grid: the canonical
// shape types, their geometry, the vertex-adjacency ground truth used to
// derive restraint target sets, and the 8-directional neighbour graph.
package tile

// ShapeType identifies one of the canonical tile collision shapes.
//
// Half tiles are named for the side of the cell they fill; corner halves
// for the corner their right angle sits in. Quarter tiles are named for
// the edge they rest on, the side their thick end sits on, and whether
// they are the low or high piece of a two-tile slope run.
type ShapeType int

const (
	Empty ShapeType = iota
	Full
	HalfBottom
	HalfTop
	HalfLeft
	HalfRight
	HalfBottomLeft
	HalfBottomRight
	HalfTopLeft
	HalfTopRight
	QuarterBottomLeftLow
	QuarterBottomLeftHigh
	QuarterBottomRightLow
	QuarterBottomRightHigh
	QuarterLeftBottomLow
	QuarterLeftBottomHigh
	QuarterLeftTopLow
	QuarterLeftTopHigh
	QuarterRightBottomLow
	QuarterRightBottomHigh
	QuarterRightTopLow
	QuarterRightTopHigh
	QuarterTopLeftLow
	QuarterTopLeftHigh
	QuarterTopRightLow
	QuarterTopRightHigh

	shapeTypeCount int = iota
)

// typeNames holds the canonical authored-language name of each shape type.
var typeNames = map[ShapeType]string{
	Empty:                  "EMPTY",
	Full:                   "FULL",
	HalfBottom:             "HALF_BOTTOM",
	HalfTop:                "HALF_TOP",
	HalfLeft:               "HALF_LEFT",
	HalfRight:              "HALF_RIGHT",
	HalfBottomLeft:         "HALF_BOTTOM_LEFT",
	HalfBottomRight:        "HALF_BOTTOM_RIGHT",
	HalfTopLeft:            "HALF_TOP_LEFT",
	HalfTopRight:           "HALF_TOP_RIGHT",
	QuarterBottomLeftLow:   "QUARTER_BOTTOM_LEFT_LOW",
	QuarterBottomLeftHigh:  "QUARTER_BOTTOM_LEFT_HIGH",
	QuarterBottomRightLow:  "QUARTER_BOTTOM_RIGHT_LOW",
	QuarterBottomRightHigh: "QUARTER_BOTTOM_RIGHT_HIGH",
	QuarterLeftBottomLow:   "QUARTER_LEFT_BOTTOM_LOW",
	QuarterLeftBottomHigh:  "QUARTER_LEFT_BOTTOM_HIGH",
	QuarterLeftTopLow:      "QUARTER_LEFT_TOP_LOW",
	QuarterLeftTopHigh:     "QUARTER_LEFT_TOP_HIGH",
	QuarterRightBottomLow:  "QUARTER_RIGHT_BOTTOM_LOW",
	QuarterRightBottomHigh: "QUARTER_RIGHT_BOTTOM_HIGH",
	QuarterRightTopLow:     "QUARTER_RIGHT_TOP_LOW",
	QuarterRightTopHigh:    "QUARTER_RIGHT_TOP_HIGH",
	QuarterTopLeftLow:      "QUARTER_TOP_LEFT_LOW",
	QuarterTopLeftHigh:     "QUARTER_TOP_LEFT_HIGH",
	QuarterTopRightLow:     "QUARTER_TOP_RIGHT_LOW",
	QuarterTopRightHigh:    "QUARTER_TOP_RIGHT_HIGH",
}

var nameTypes = func() map[string]ShapeType {
	m := make(map[string]ShapeType, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

func (t ShapeType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ResolveType maps an authored shape-type name to its code. The second
// return reports whether the name is known.
func ResolveType(name string) (ShapeType, bool) {
	t, ok := nameTypes[name]
	return t, ok
}

// Slot names one of the eight neighbour directions of a tile.
type Slot int

const (
	Above Slot = iota
	Below
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight

	slotCount int = iota
)

var slotNames = [slotCount]string{
	"above", "below", "left", "right",
	"topLeft", "topRight", "bottomLeft", "bottomRight",
}

func (s Slot) String() string {
	if s < 0 || int(s) >= slotCount {
		return "invalid"
	}
	return slotNames[s]
}
