package restraint

import "github.com/automoto/slopes/tile"

// DefaultRestraints returns the authored rule set for the canonical tile
// shapes. It is data: each entry describes the seams of one shape type
// and the rule to apply per seam, with neighbour target sets derived
// from the vertex-adjacency table rather than hand-enumerated.
//
// Three kinds of rules appear:
//
//   - Flush-seam suppression: the subject's solid span on a cardinal
//     border is fully covered by the neighbour's facing solidity, so the
//     subject's face there is internal and separation is suppressed.
//   - Slope-run continuation: the next piece of a multi-tile slope
//     (same-type 45-degree runs continue diagonally, low/high quarter
//     pairs continue across cardinal and diagonal slots) owns the
//     surface, so separation is suppressed. These seams produce diagonal
//     normals, so they match a single quantized overlap component.
//   - Full-tile eager separation: square tiles bordering diagonal
//     neighbours defer to FullTileSeparation to pick an axis-aligned
//     push before the raw diagonal normal can drive the body through
//     the seam.
func DefaultRestraints() map[string][]Def {
	return map[string][]Def{
		"FULL": {
			{
				Neighbour: tile.Above,
				OverlapY:  Between(-1, 0),
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Decide(FullTileSeparation),
			},
			{
				Neighbour: tile.Below,
				OverlapY:  Between(0, 1),
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Decide(FullTileSeparation),
			},
			{
				Neighbour: tile.Left,
				OverlapX:  Between(-1, 0),
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Decide(FullTileSeparation),
			},
			{
				Neighbour: tile.Right,
				OverlapX:  Between(0, 1),
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Decide(FullTileSeparation),
			},
		},

		"HALF_TOP": {
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "right"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "left"),
				Separate:  Suppress(),
			},
		},

		"HALF_BOTTOM": {
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("right", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("left", "bottomLeft"),
				Separate:  Suppress(),
			},
		},

		"HALF_LEFT": {
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottom"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "top"),
				Separate:  Suppress(),
			},
		},

		"HALF_RIGHT": {
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottom", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("top", "topRight"),
				Separate:  Suppress(),
			},
		},

		"HALF_BOTTOM_LEFT": {
			{Neighbour: tile.TopLeft, OverlapX: Between(0, 1), OverlapY: Between(-1, 0), Separate: Suppress()},
			{Neighbour: tile.BottomRight, OverlapX: Between(0, 1), OverlapY: Between(-1, 0), Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"HALF_BOTTOM_RIGHT": {
			{Neighbour: tile.TopRight, OverlapX: Between(-1, 0), OverlapY: Between(-1, 0), Separate: Suppress()},
			{Neighbour: tile.BottomLeft, OverlapX: Between(-1, 0), OverlapY: Between(-1, 0), Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"HALF_TOP_LEFT": {
			{Neighbour: tile.TopRight, OverlapX: Between(0, 1), OverlapY: Between(0, 1), Separate: Suppress()},
			{Neighbour: tile.BottomLeft, OverlapX: Between(0, 1), OverlapY: Between(0, 1), Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
		},

		"HALF_TOP_RIGHT": {
			{Neighbour: tile.TopLeft, OverlapX: Between(-1, 0), OverlapY: Between(0, 1), Separate: Suppress()},
			{Neighbour: tile.BottomRight, OverlapX: Between(-1, 0), OverlapY: Between(0, 1), Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_BOTTOM_LEFT_LOW": {
			{Neighbour: tile.Left, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_LEFT_HIGH"}, Separate: Suppress()},
			{Neighbour: tile.BottomRight, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_LEFT_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("right", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_BOTTOM_LEFT_HIGH": {
			{Neighbour: tile.TopLeft, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_LEFT_LOW"}, Separate: Suppress()},
			{Neighbour: tile.Right, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_LEFT_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("left", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_BOTTOM_RIGHT_LOW": {
			{Neighbour: tile.Right, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_RIGHT_HIGH"}, Separate: Suppress()},
			{Neighbour: tile.BottomLeft, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_RIGHT_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("left", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_BOTTOM_RIGHT_HIGH": {
			{Neighbour: tile.TopRight, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_RIGHT_LOW"}, Separate: Suppress()},
			{Neighbour: tile.Left, OverlapY: Between(-1, 0), Types: []string{"QUARTER_BOTTOM_RIGHT_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("right", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_LEFT_BOTTOM_LOW": {
			{Neighbour: tile.Below, OverlapX: Between(0, 1), Types: []string{"QUARTER_LEFT_BOTTOM_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "top"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_LEFT_BOTTOM_HIGH": {
			{Neighbour: tile.Above, OverlapX: Between(0, 1), Types: []string{"QUARTER_LEFT_BOTTOM_LOW"}, Separate: Suppress()},
			{Neighbour: tile.BottomRight, OverlapX: Between(0, 1), Types: []string{"QUARTER_LEFT_BOTTOM_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottom"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_LEFT_TOP_LOW": {
			{Neighbour: tile.Above, OverlapX: Between(0, 1), Types: []string{"QUARTER_LEFT_TOP_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottom"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_LEFT_TOP_HIGH": {
			{Neighbour: tile.Below, OverlapX: Between(0, 1), Types: []string{"QUARTER_LEFT_TOP_LOW"}, Separate: Suppress()},
			{Neighbour: tile.TopRight, OverlapX: Between(0, 1), Types: []string{"QUARTER_LEFT_TOP_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "top"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_RIGHT_BOTTOM_LOW": {
			{Neighbour: tile.Below, OverlapX: Between(-1, 0), Types: []string{"QUARTER_RIGHT_BOTTOM_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("top", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_RIGHT_BOTTOM_HIGH": {
			{Neighbour: tile.Above, OverlapX: Between(-1, 0), Types: []string{"QUARTER_RIGHT_BOTTOM_LOW"}, Separate: Suppress()},
			{Neighbour: tile.BottomLeft, OverlapX: Between(-1, 0), Types: []string{"QUARTER_RIGHT_BOTTOM_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottom", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("topLeft", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_RIGHT_TOP_LOW": {
			{Neighbour: tile.Above, OverlapX: Between(-1, 0), Types: []string{"QUARTER_RIGHT_TOP_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottom", "bottomRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_RIGHT_TOP_HIGH": {
			{Neighbour: tile.Below, OverlapX: Between(-1, 0), Types: []string{"QUARTER_RIGHT_TOP_LOW"}, Separate: Suppress()},
			{Neighbour: tile.TopLeft, OverlapX: Between(-1, 0), Types: []string{"QUARTER_RIGHT_TOP_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Below,
				Direction: "down",
				Types:     tile.ResolveTypeNames("top", "topRight"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_TOP_LEFT_LOW": {
			{Neighbour: tile.Left, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_LEFT_HIGH"}, Separate: Suppress()},
			{Neighbour: tile.TopRight, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_LEFT_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "right"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_TOP_LEFT_HIGH": {
			{Neighbour: tile.Right, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_LEFT_LOW"}, Separate: Suppress()},
			{Neighbour: tile.BottomLeft, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_LEFT_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "left"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_TOP_RIGHT_LOW": {
			{Neighbour: tile.Right, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_RIGHT_HIGH"}, Separate: Suppress()},
			{Neighbour: tile.TopLeft, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_RIGHT_HIGH"}, Separate: Suppress()},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "left"),
				Separate:  Suppress(),
			},
		},

		"QUARTER_TOP_RIGHT_HIGH": {
			{Neighbour: tile.Left, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_RIGHT_LOW"}, Separate: Suppress()},
			{Neighbour: tile.BottomRight, OverlapY: Between(0, 1), Types: []string{"QUARTER_TOP_RIGHT_LOW"}, Separate: Suppress()},
			{
				Neighbour: tile.Above,
				Direction: "up",
				Types:     tile.ResolveTypeNames("bottomLeft", "bottomRight"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Right,
				Direction: "right",
				Types:     tile.ResolveTypeNames("topLeft", "bottomLeft"),
				Separate:  Suppress(),
			},
			{
				Neighbour: tile.Left,
				Direction: "left",
				Types:     tile.ResolveTypeNames("topRight", "right"),
				Separate:  Suppress(),
			},
		},
	}
}
