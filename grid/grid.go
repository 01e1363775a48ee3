// Package grid implements the staggered MAC grid: per-cell classification,
// face velocities, the per-cell density estimate, and the spatial lookup
// table that maps a cell to the particles currently inside it.
//
// Coordinate convention: row index increases downward, column index
// increases rightward. World position (x, y) relates to (row, col) by
// row = floor((R*h - y)/h), col = floor(x/h).
package grid

import (
	"math"

	"github.com/kadealicious/JuiceBox/core"
)

// CellType classifies a single grid cell.
type CellType int

const (
	Air CellType = iota
	Fluid
	Solid
)

// UnknownVelocity marks a face velocity that P2G could not compute because
// no particle was near enough to influence it. Extrapolation scans for
// this exact sentinel.
const UnknownVelocity = -math.MaxFloat64

// Grid owns the MAC velocity fields, cell classification, density
// estimate, and spatial lookup table for one simulation domain.
type Grid struct {
	Rows, Cols int
	CellSize   float64

	CellType []CellType // len Rows*Cols, row-major.

	// U[r][c] sits on the left face of cell (r,c); dimensions Rows x (Cols+1).
	U [][]float64
	// V[r][c] sits on the top face of cell (r,c); dimensions (Rows+1) x Cols.
	V [][]float64

	Density []float64 // len Rows*Cols.

	// SpatialLookup maps a cell index to the particle handles inside it.
	SpatialLookup [][]int

	ParticleRestDensity float64
}

// New constructs an all-Air, all-zero-velocity grid of the given size.
func New(rows, cols int, cellSize float64) *Grid {
	g := &Grid{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
	}
	g.allocate()
	return g
}

func (g *Grid) allocate() {
	n := g.Rows * g.Cols
	g.CellType = make([]CellType, n)
	g.Density = make([]float64, n)
	g.SpatialLookup = make([][]int, n)

	g.U = make([][]float64, g.Rows)
	for r := range g.U {
		g.U[r] = make([]float64, g.Cols+1)
	}
	g.V = make([][]float64, g.Rows+1)
	for r := range g.V {
		g.V[r] = make([]float64, g.Cols)
	}
}

// Index converts (row, col) into the row-major index used by CellType,
// Density, and SpatialLookup.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coords is the inverse of Index.
func (g *Grid) Coords(index int) (row, col int) {
	return index / g.Cols, index % g.Cols
}

// InBounds reports whether (row, col) addresses a real cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Width returns the world width of the domain.
func (g *Grid) Width() float64 { return float64(g.Cols) * g.CellSize }

// Height returns the world height of the domain.
func (g *Grid) Height() float64 { return float64(g.Rows) * g.CellSize }

// IsPositionWithinGrid reports whether p falls within the domain's world
// bounds.
func (g *Grid) IsPositionWithinGrid(p core.Vector) bool {
	return p.X >= 0 && p.X <= g.Width() && p.Y >= 0 && p.Y <= g.Height()
}

// CellOf converts a world position into (row, col), clamped to the
// nearest valid cell.
func (g *Grid) CellOf(p core.Vector) (row, col int) {
	row = int(math.Floor((g.Height() - p.Y) / g.CellSize))
	col = int(math.Floor(p.X / g.CellSize))
	if row < 0 {
		row = 0
	}
	if row > g.Rows-1 {
		row = g.Rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col > g.Cols-1 {
		col = g.Cols - 1
	}
	return row, col
}

// HypotheticalCellOf converts a world position into (row, col) without
// clamping, so the result may fall outside the grid. Used by particle
// integration to detect which solid cell a particle is about to enter.
func (g *Grid) HypotheticalCellOf(p core.Vector) (row, col int) {
	row = int(math.Floor((g.Height() - p.Y) / g.CellSize))
	col = int(math.Floor(p.X / g.CellSize))
	return row, col
}

// CellCenter returns the world position of the center of cell (row, col).
func (g *Grid) CellCenter(row, col int) core.Vector {
	half := g.CellSize / 2
	return core.Vector{
		X: float64(col)*g.CellSize + half,
		Y: g.Height() - float64(row)*g.CellSize - half,
	}
}

// FacePosition returns the world position of a MAC face. horizontal
// selects between U (left face of the cell) and V (top face of the
// cell).
func (g *Grid) FacePosition(row, col int, horizontal bool) core.Vector {
	half := g.CellSize / 2
	if horizontal {
		return core.Vector{
			X: float64(col) * g.CellSize,
			Y: g.Height() - (float64(row)*g.CellSize + half),
		}
	}
	return core.Vector{
		X: float64(col)*g.CellSize + half,
		Y: g.Height() - float64(row)*g.CellSize,
	}
}

// GetCellTypeValue returns 1 for Fluid/Air, 0 for Solid or out-of-bounds.
func (g *Grid) GetCellTypeValue(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}
	if g.CellType[g.Index(row, col)] == Solid {
		return 0
	}
	return 1
}

// CellTypeAt returns the classification of (row, col); out-of-bounds
// cells read as Solid, matching the convention used by collision checks.
func (g *Grid) CellTypeAt(row, col int) CellType {
	if !g.InBounds(row, col) {
		return Solid
	}
	return g.CellType[g.Index(row, col)]
}

// CellVelocity returns the mean of the two U faces and two V faces of
// cell (row, col); this is the face-averaged cell-center velocity used by
// bilinear interpolation in G2P.
func (g *Grid) CellVelocity(row, col int) core.Vector {
	if !g.InBounds(row, col) {
		return core.Vector{}
	}
	u := (g.U[row][col] + g.U[row][col+1]) / 2
	v := (g.V[row][col] + g.V[row+1][col]) / 2
	return core.Vector{X: u, Y: v}
}

// SelectCells returns the coordinates of cells covering a disk of the
// given radius centered at position. Coordinates outside the grid are
// clamped to the nearest valid cell rather than dropped, so edge cells
// are deliberately duplicated in the result; density weighting at the
// boundary therefore is not biased low relative to interior cells. The
// result is always a full (2*cellRadius+1)^2 set of (possibly repeated)
// coordinates, even at the corners.
func (g *Grid) SelectCells(position core.Vector, radius float64) [][2]int {
	cellRadius := int(math.Ceil(radius / g.CellSize))
	if cellRadius < 1 {
		cellRadius = 1
	}

	centerRow, centerCol := g.CellOf(position)

	cells := make([][2]int, 0, (2*cellRadius+1)*(2*cellRadius+1))
	for dr := -cellRadius; dr <= cellRadius; dr++ {
		for dc := -cellRadius; dc <= cellRadius; dc++ {
			row := clampInt(centerRow+dr, 0, g.Rows-1)
			col := clampInt(centerCol+dc, 0, g.Cols-1)
			cells = append(cells, [2]int{row, col})
		}
	}
	return cells
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ForceEdgeSolids sets every cell on the outermost ring of the grid to
// Solid.
func (g *Grid) ForceEdgeSolids() {
	for c := 0; c < g.Cols; c++ {
		g.CellType[g.Index(0, c)] = Solid
		g.CellType[g.Index(g.Rows-1, c)] = Solid
	}
	for r := 0; r < g.Rows; r++ {
		g.CellType[g.Index(r, 0)] = Solid
		g.CellType[g.Index(r, g.Cols-1)] = Solid
	}
}

// LabelCells sets every non-Solid cell to Fluid if its spatial-lookup
// bucket is non-empty, and to Air otherwise. Solid cells are untouched.
func (g *Grid) LabelCells() {
	for i := range g.CellType {
		if g.CellType[i] == Solid {
			continue
		}
		if len(g.SpatialLookup[i]) > 0 {
			g.CellType[i] = Fluid
		} else {
			g.CellType[i] = Air
		}
	}
}
