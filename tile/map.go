package tile

import "math"

// Map is a dense tile grid. It owns the neighbour graph: every tile is
// linked to its up-to-eight adjacent tiles, and edges hidden behind flush
// neighbours are flagged internal at build time.
type Map struct {
	Tiles        [][]*Tile // row-major, Tiles[row][col]
	Cols, Rows   int
	TileW, TileH float64
}

// NewMap builds a map from a row-major grid of shape codes. Ragged rows
// are padded with EMPTY.
func NewMap(types [][]ShapeType, tileW, tileH float64) *Map {
	rows := len(types)
	cols := 0
	for _, row := range types {
		if len(row) > cols {
			cols = len(row)
		}
	}

	m := &Map{
		Tiles: make([][]*Tile, rows),
		Cols:  cols, Rows: rows,
		TileW: tileW, TileH: tileH,
	}

	for row := 0; row < rows; row++ {
		m.Tiles[row] = make([]*Tile, cols)
		for col := 0; col < cols; col++ {
			t := Empty
			if col < len(types[row]) {
				t = types[row][col]
			}
			m.Tiles[row][col] = New(t, float64(col)*tileW, float64(row)*tileH, tileW, tileH)
		}
	}

	m.link()
	m.flagInternalEdges()

	return m
}

// At returns the tile at the given column and row, or nil outside the map.
func (m *Map) At(col, row int) *Tile {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return nil
	}
	return m.Tiles[row][col]
}

// TilesIn returns the non-empty tiles overlapping the given world rect.
func (m *Map) TilesIn(x, y, w, h float64) []*Tile {
	minCol := int(math.Floor(x / m.TileW))
	minRow := int(math.Floor(y / m.TileH))
	maxCol := int(math.Floor((x + w) / m.TileW))
	maxRow := int(math.Floor((y + h) / m.TileH))

	var tiles []*Tile
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if t := m.At(col, row); t.HasShape() {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

var slotOffsets = [slotCount][2]int{
	Above:       {0, -1},
	Below:       {0, 1},
	Left:        {-1, 0},
	Right:       {1, 0},
	TopLeft:     {-1, -1},
	TopRight:    {1, -1},
	BottomLeft:  {-1, 1},
	BottomRight: {1, 1},
}

// link populates every tile's neighbour slots. Slots that fall outside
// the map stay absent.
func (m *Map) link() {
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			t := m.Tiles[row][col]
			t.Neighbours = make(map[Slot]*Tile, slotCount)
			for slot, off := range slotOffsets {
				if n := m.At(col+off[0], row+off[1]); n != nil {
					t.Neighbours[Slot(slot)] = n
				}
			}
		}
	}
}

// flagInternalEdges hides cardinal edges that a flush neighbour continues:
// when both sides of a shared border are fully solid, neither side can
// ever present a real face to a body, so both are flagged empty. The
// full-tile separation heuristic reads these flags to tell real faces
// from seams.
func (m *Map) flagInternalEdges() {
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			t := m.Tiles[row][col]
			if !t.HasShape() {
				continue
			}
			if n := m.At(col+1, row); n.HasShape() &&
				t.Edges.Right == EdgeSolid && n.Edges.Left == EdgeSolid {
				t.Edges.Right = EdgeEmpty
				n.Edges.Left = EdgeEmpty
			}
			if n := m.At(col, row+1); n.HasShape() &&
				t.Edges.Bottom == EdgeSolid && n.Edges.Top == EdgeSolid {
				t.Edges.Bottom = EdgeEmpty
				n.Edges.Top = EdgeEmpty
			}
		}
	}
}
