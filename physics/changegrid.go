package physics

import "gonum.org/v1/gonum/floats"

// ChangeGrid computes the element-wise new-minus-old difference of two
// MAC velocity fields, used to blend the FLIP component of G2P.
func ChangeGrid(oldField, newField [][]float64) [][]float64 {
	change := make([][]float64, len(oldField))
	for r := range oldField {
		change[r] = make([]float64, len(oldField[r]))
		floats.SubTo(change[r], newField[r], oldField[r])
	}
	return change
}
