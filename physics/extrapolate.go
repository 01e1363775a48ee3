package physics

import (
	"math"

	"github.com/kadealicious/JuiceBox/grid"
)

var eightNeighborOffsets = [8][2]int{
	{-1, 1}, {-1, 0}, {-1, -1},
	{0, 1}, {0, -1},
	{1, 1}, {1, 0}, {1, -1},
}

const unknownDistance = math.MaxInt32

type wavePoint struct{ row, col int }

// Extrapolate propagates known face velocities in field into cells
// whose P2G pass left them as grid.UnknownVelocity, one wavefront per
// depth iteration, by averaging each unknown face's already-known
// 8-neighbors. field is modified in place.
func Extrapolate(field [][]float64, depth int) {
	rows := len(field)
	if rows == 0 {
		return
	}
	cols := len(field[0])

	dist := make([][]int, rows)
	for r := range dist {
		dist[r] = make([]int, cols)
		for c := range dist[r] {
			if field[r][c] != grid.UnknownVelocity {
				dist[r][c] = 0
			} else {
				dist[r][c] = unknownDistance
			}
		}
	}

	var wave []wavePoint
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if dist[r][c] == 0 {
				continue
			}
			if hasKnownNeighbor(dist, r, c, rows, cols) {
				dist[r][c] = 1
				wave = append(wave, wavePoint{r, c})
			}
		}
	}

	for iteration := 0; iteration < depth; iteration++ {
		var nextWave []wavePoint

		for _, p := range wave {
			sum := 0.0
			used := 0

			for _, off := range eightNeighborOffsets {
				nr, nc := p.row+off[0], p.col+off[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if dist[nr][nc] < dist[p.row][p.col] {
					sum += field[nr][nc]
					used++
				} else if dist[nr][nc] == unknownDistance {
					dist[nr][nc] = dist[p.row][p.col] + 1
					nextWave = append(nextWave, wavePoint{nr, nc})
				}
			}

			if used > 0 {
				field[p.row][p.col] = sum / float64(used)
			}
		}

		wave = nextWave
	}
}

func hasKnownNeighbor(dist [][]int, row, col, rows, cols int) bool {
	for _, off := range eightNeighborOffsets {
		nr, nc := row+off[0], col+off[1]
		if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
			continue
		}
		if dist[nr][nc] == 0 {
			return true
		}
	}
	return false
}
