package tile

import "log"

// vertexTypeNames is the vertex-adjacency ground truth: for each of the
// eight cell locations (corners and edge midpoints), the shape types that
// are solid at that point of their cell. Hand-authored from the shape
// geometry; consumed only when restraint tables are compiled, never on the
// per-collision path.
var vertexTypeNames = map[string][]string{
	"topLeft": {
		"FULL", "HALF_TOP", "HALF_LEFT",
		"HALF_BOTTOM_LEFT", "HALF_TOP_LEFT", "HALF_TOP_RIGHT",
		"QUARTER_BOTTOM_LEFT_HIGH",
		"QUARTER_LEFT_BOTTOM_LOW", "QUARTER_LEFT_BOTTOM_HIGH",
		"QUARTER_LEFT_TOP_LOW", "QUARTER_LEFT_TOP_HIGH",
		"QUARTER_RIGHT_TOP_HIGH",
		"QUARTER_TOP_LEFT_LOW", "QUARTER_TOP_LEFT_HIGH",
		"QUARTER_TOP_RIGHT_LOW", "QUARTER_TOP_RIGHT_HIGH",
	},
	"top": {
		"FULL", "HALF_TOP", "HALF_LEFT", "HALF_RIGHT",
		"HALF_TOP_LEFT", "HALF_TOP_RIGHT",
		"QUARTER_LEFT_BOTTOM_HIGH",
		"QUARTER_LEFT_TOP_LOW", "QUARTER_LEFT_TOP_HIGH",
		"QUARTER_RIGHT_BOTTOM_HIGH",
		"QUARTER_RIGHT_TOP_LOW", "QUARTER_RIGHT_TOP_HIGH",
		"QUARTER_TOP_LEFT_LOW", "QUARTER_TOP_LEFT_HIGH",
		"QUARTER_TOP_RIGHT_LOW", "QUARTER_TOP_RIGHT_HIGH",
	},
	"topRight": {
		"FULL", "HALF_TOP", "HALF_RIGHT",
		"HALF_BOTTOM_RIGHT", "HALF_TOP_LEFT", "HALF_TOP_RIGHT",
		"QUARTER_BOTTOM_RIGHT_HIGH",
		"QUARTER_LEFT_TOP_HIGH",
		"QUARTER_RIGHT_BOTTOM_LOW", "QUARTER_RIGHT_BOTTOM_HIGH",
		"QUARTER_RIGHT_TOP_LOW", "QUARTER_RIGHT_TOP_HIGH",
		"QUARTER_TOP_LEFT_LOW", "QUARTER_TOP_LEFT_HIGH",
		"QUARTER_TOP_RIGHT_LOW", "QUARTER_TOP_RIGHT_HIGH",
	},
	"left": {
		"FULL", "HALF_BOTTOM", "HALF_TOP", "HALF_LEFT",
		"HALF_BOTTOM_LEFT", "HALF_TOP_LEFT",
		"QUARTER_BOTTOM_LEFT_LOW", "QUARTER_BOTTOM_LEFT_HIGH",
		"QUARTER_BOTTOM_RIGHT_HIGH",
		"QUARTER_LEFT_BOTTOM_LOW", "QUARTER_LEFT_BOTTOM_HIGH",
		"QUARTER_LEFT_TOP_LOW", "QUARTER_LEFT_TOP_HIGH",
		"QUARTER_TOP_LEFT_LOW", "QUARTER_TOP_LEFT_HIGH",
		"QUARTER_TOP_RIGHT_HIGH",
	},
	"right": {
		"FULL", "HALF_BOTTOM", "HALF_TOP", "HALF_RIGHT",
		"HALF_BOTTOM_RIGHT", "HALF_TOP_RIGHT",
		"QUARTER_BOTTOM_LEFT_HIGH",
		"QUARTER_BOTTOM_RIGHT_LOW", "QUARTER_BOTTOM_RIGHT_HIGH",
		"QUARTER_RIGHT_BOTTOM_LOW", "QUARTER_RIGHT_BOTTOM_HIGH",
		"QUARTER_RIGHT_TOP_LOW", "QUARTER_RIGHT_TOP_HIGH",
		"QUARTER_TOP_LEFT_HIGH",
		"QUARTER_TOP_RIGHT_LOW", "QUARTER_TOP_RIGHT_HIGH",
	},
	"bottomLeft": {
		"FULL", "HALF_BOTTOM", "HALF_LEFT",
		"HALF_BOTTOM_LEFT", "HALF_BOTTOM_RIGHT", "HALF_TOP_LEFT",
		"QUARTER_BOTTOM_LEFT_LOW", "QUARTER_BOTTOM_LEFT_HIGH",
		"QUARTER_BOTTOM_RIGHT_LOW", "QUARTER_BOTTOM_RIGHT_HIGH",
		"QUARTER_LEFT_BOTTOM_LOW", "QUARTER_LEFT_BOTTOM_HIGH",
		"QUARTER_LEFT_TOP_LOW", "QUARTER_LEFT_TOP_HIGH",
		"QUARTER_RIGHT_BOTTOM_HIGH",
		"QUARTER_TOP_LEFT_HIGH",
	},
	"bottom": {
		"FULL", "HALF_BOTTOM", "HALF_LEFT", "HALF_RIGHT",
		"HALF_BOTTOM_LEFT", "HALF_BOTTOM_RIGHT",
		"QUARTER_BOTTOM_LEFT_LOW", "QUARTER_BOTTOM_LEFT_HIGH",
		"QUARTER_BOTTOM_RIGHT_LOW", "QUARTER_BOTTOM_RIGHT_HIGH",
		"QUARTER_LEFT_BOTTOM_LOW", "QUARTER_LEFT_BOTTOM_HIGH",
		"QUARTER_LEFT_TOP_HIGH",
		"QUARTER_RIGHT_BOTTOM_LOW", "QUARTER_RIGHT_BOTTOM_HIGH",
		"QUARTER_RIGHT_TOP_HIGH",
	},
	"bottomRight": {
		"FULL", "HALF_BOTTOM", "HALF_RIGHT",
		"HALF_BOTTOM_LEFT", "HALF_BOTTOM_RIGHT", "HALF_TOP_RIGHT",
		"QUARTER_BOTTOM_LEFT_LOW", "QUARTER_BOTTOM_LEFT_HIGH",
		"QUARTER_BOTTOM_RIGHT_LOW", "QUARTER_BOTTOM_RIGHT_HIGH",
		"QUARTER_LEFT_BOTTOM_HIGH",
		"QUARTER_RIGHT_BOTTOM_LOW", "QUARTER_RIGHT_BOTTOM_HIGH",
		"QUARTER_RIGHT_TOP_LOW", "QUARTER_RIGHT_TOP_HIGH",
		"QUARTER_TOP_RIGHT_HIGH",
	},
}

// ResolveTypeNames returns the names of the shape types that are solid at
// every one of the given cell locations. A single location returns the
// table entry itself; multiple locations intersect their entries. An
// unknown location is reported and contributes an empty set, which
// collapses the whole intersection to empty — callers relying on that
// degenerate behavior get it unchanged.
func ResolveTypeNames(locations ...string) []string {
	if len(locations) == 0 {
		return nil
	}

	for _, loc := range locations {
		if _, ok := vertexTypeNames[loc]; !ok {
			log.Printf("tile: unknown vertex location %q", loc)
			return nil
		}
	}

	result := vertexTypeNames[locations[0]]
	for _, loc := range locations[1:] {
		result = intersectNames(result, vertexTypeNames[loc])
	}
	return result
}

// ResolveTypeSet is the typed form of ResolveTypeNames.
func ResolveTypeSet(locations ...string) []ShapeType {
	names := ResolveTypeNames(locations...)
	types := make([]ShapeType, 0, len(names))
	for _, name := range names {
		if t, ok := ResolveType(name); ok {
			types = append(types, t)
		}
	}
	return types
}

// intersectNames keeps the members of a that also appear in b, preserving
// a's order.
func intersectNames(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, name := range a {
		for _, other := range b {
			if name == other {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
