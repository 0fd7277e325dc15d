package fixtures

// CubeVertices returns the 8 vertices of the unit cube {0,1}^3, in the
// fixed binary-counting order (0,0,0), (1,0,0), (0,1,0), ..., (1,1,1),
// where bit b of the counter is coordinate b. Fed to
// vr.Build with ε = √3 and max_dim = 3, every pairwise distance among the
// 8 vertices (edge, face-diagonal, and space-diagonal lengths are 1, √2,
// and √3) falls within ε, so the 1-skeleton is the complete graph on 8
// vertices and nerve expansion fills in the full 3-skeleton of the
// 7-simplex on those vertices: cell counts (8, 28, 56, 70) and
// β = [1, 0, 0, 35].
//
// Stage 1 (Emit): walk the 3-bit binary counter in ascending order,
// translating each bit into a 0/1 coordinate.
func CubeVertices() [][]float64 {
	points := make([][]float64, 0, 8)
	for mask := 0; mask < 8; mask++ {
		p := make([]float64, 3)
		for bit := 0; bit < 3; bit++ {
			if mask&(1<<bit) != 0 {
				p[bit] = 1
			}
		}
		points = append(points, p)
	}

	return points
}
