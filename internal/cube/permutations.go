package cube

import "sync"

// This file is the facelet-level move engine: it turns a Move into a flat
// sticker permutation and applies it to a *Cube. FromFaceletCube and
// ToFaceletCube (convert.go) round-trip through exactly this
// representation when bridging to the cubie-level two-phase solver, and
// every CLI command that mutates a *Cube (solve, twist, verify, show)
// goes through ApplyMove -> getPermutation -> applyPermutation below.

// PermKey caches a generated permutation by the move parameters that
// produced it, since the same (size, move, layer, turns) combination
// recurs constantly across a scramble.
type PermKey struct {
	N            int
	MoveType     MoveType
	Layer        int
	QuarterTurns int
}

var (
	permCache   = make(map[PermKey]Permutation)
	permCacheMu sync.RWMutex
)

// getPermutation retrieves or generates a permutation from cache.
func getPermutation(N int, moveType MoveType, layer int, quarterTurns int) Permutation {
	key := PermKey{N, moveType, layer, quarterTurns}

	permCacheMu.RLock()
	if perm, ok := permCache[key]; ok {
		permCacheMu.RUnlock()
		return perm
	}
	permCacheMu.RUnlock()

	perm := generatePermutation(N, moveType, layer, quarterTurns)

	permCacheMu.Lock()
	permCache[key] = perm
	permCacheMu.Unlock()

	return perm
}

// generatePermutation builds the sticker permutation for one move on one
// layer of an NxN cube.
func generatePermutation(N int, moveType MoveType, layer int, quarterTurns int) Permutation {
	perm := identityPermutation(N)

	switch moveType {
	case MoveX, MoveY, MoveZ:
		return generateCubeRotationPermutation(N, moveType, (4-quarterTurns)%4)
	}

	ring := moveRing(moveType, N, layer)
	if ring == nil {
		return perm
	}

	indices := coordsToIndices(ring, N)
	rotated := rotateSlice(indices, quarterTurns)
	for i, srcIdx := range indices {
		perm[srcIdx] = rotated[i]
	}

	if layer == 0 {
		faceRotationPerm := generateFaceRotationPermutation(N, moveType, quarterTurns)
		for i, dst := range faceRotationPerm {
			if dst != i {
				perm[i] = dst
			}
		}
	}

	return perm
}

// moveRing returns the ring of face-turn-affected coordinates for a move
// type and layer, or nil for slice moves on an even-sized cube (undefined)
// or for rotation move types (handled separately).
func moveRing(moveType MoveType, N, layer int) []Coord {
	switch moveType {
	case MoveR:
		return ringAround(N, []edgeSpan{
			{Up, N - 1 - layer, colSpan, false},
			{Back, layer, colSpan, true},
			{Down, N - 1 - layer, colSpan, false},
			{Front, N - 1 - layer, colSpan, false},
		})
	case MoveL:
		return ringAround(N, []edgeSpan{
			{Up, layer, colSpan, false},
			{Front, layer, colSpan, false},
			{Down, layer, colSpan, false},
			{Back, N - 1 - layer, colSpan, true},
		})
	case MoveU:
		return ringAround(N, []edgeSpan{
			{Back, layer, rowSpan, false},
			{Right, layer, rowSpan, false},
			{Front, layer, rowSpan, false},
			{Left, layer, rowSpan, false},
		})
	case MoveD:
		return ringAround(N, []edgeSpan{
			{Front, N - 1 - layer, rowSpan, false},
			{Right, N - 1 - layer, rowSpan, false},
			{Back, N - 1 - layer, rowSpan, false},
			{Left, N - 1 - layer, rowSpan, false},
		})
	case MoveF:
		return ringAround(N, []edgeSpan{
			{Up, N - 1 - layer, rowSpan, false},
			{Right, layer, colSpan, false},
			{Down, layer, rowSpan, true},
			{Left, N - 1 - layer, colSpan, true},
		})
	case MoveB:
		return ringAround(N, []edgeSpan{
			{Up, layer, rowSpan, false},
			{Left, layer, colSpan, true},
			{Down, N - 1 - layer, rowSpan, true},
			{Right, N - 1 - layer, colSpan, false},
		})
	case MoveM:
		if N%2 == 0 {
			return nil
		}
		c := N / 2
		return ringAround(N, []edgeSpan{
			{Up, c, colSpan, false},
			{Front, c, colSpan, false},
			{Down, c, colSpan, false},
			{Back, c, colSpan, true},
		})
	case MoveE:
		if N%2 == 0 {
			return nil
		}
		c := N / 2
		return ringAround(N, []edgeSpan{
			{Front, c, rowSpan, false},
			{Left, c, rowSpan, false},
			{Back, c, rowSpan, false},
			{Right, c, rowSpan, false},
		})
	case MoveS:
		if N%2 == 0 {
			return nil
		}
		c := N / 2
		return ringAround(N, []edgeSpan{
			{Up, c, rowSpan, false},
			{Right, c, colSpan, false},
			{Down, c, rowSpan, true},
			{Left, c, colSpan, true},
		})
	default:
		return nil
	}
}

// spanKind selects whether an edgeSpan walks a row or a column on its face.
type spanKind int

const (
	rowSpan spanKind = iota
	colSpan
)

// edgeSpan names one face's contribution to a move ring: fixed index
// (row or column depending on kind), and whether it's walked in reverse
// to account for the cube's 3D winding.
type edgeSpan struct {
	face     Face
	fixed    int
	kind     spanKind
	reversed bool
}

// ringAround concatenates the four edge spans that make up a move's
// affected ring, in order, each optionally reversed.
func ringAround(N int, spans []edgeSpan) []Coord {
	var ring []Coord
	for _, s := range spans {
		start, end, step := 0, N, 1
		if s.reversed {
			start, end, step = N-1, -1, -1
		}
		for i := start; i != end; i += step {
			if s.kind == rowSpan {
				ring = append(ring, Coord{s.face, s.fixed, i})
			} else {
				ring = append(ring, Coord{s.face, i, s.fixed})
			}
		}
	}
	return ring
}

// generateCubeRotationPermutation creates the permutation for a whole-cube
// rotation (x, y, z): every sticker moves, including face-to-face swaps
// and the spin of the two axis faces themselves.
func generateCubeRotationPermutation(N int, rotationType MoveType, quarterTurns int) Permutation {
	perm := identityPermutation(N)

	var faceMappings [][]Face
	switch rotationType {
	case MoveX:
		faceMappings = rotationFaceCycle(quarterTurns, Front, Down, Back, Up)
	case MoveY:
		faceMappings = rotationFaceCycle(quarterTurns, Front, Left, Back, Right)
	case MoveZ:
		faceMappings = rotationFaceCycle(quarterTurns, Up, Left, Down, Right)
	default:
		return perm
	}

	for _, mapping := range faceMappings {
		srcFace, dstFace := mapping[0], mapping[1]
		for row := 0; row < N; row++ {
			for col := 0; col < N; col++ {
				perm[stickerIndex(srcFace, row, col, N)] = stickerIndex(dstFace, row, col, N)
			}
		}
	}

	// The axis face in the rotation's own sense (R for x, U for y, F for
	// z) spins with the rotation (quarterTurns); the opposite axis face
	// spins the other way (4-quarterTurns).
	var axisCW, axisCCW MoveType
	switch rotationType {
	case MoveX:
		axisCW, axisCCW = MoveR, MoveL
	case MoveY:
		axisCW, axisCCW = MoveU, MoveD
	case MoveZ:
		axisCW, axisCCW = MoveF, MoveB
	}
	composeRotation(perm, generateFaceRotationPermutation(N, axisCW, quarterTurns))
	composeRotation(perm, generateFaceRotationPermutation(N, axisCCW, (4-quarterTurns)%4))

	return perm
}

// rotationFaceCycle builds the four-face cycle mapping for a whole-cube
// rotation given its clockwise cycle order and the requested quarter
// turn count (1, 2, or 3).
func rotationFaceCycle(quarterTurns int, a, b, c, d Face) [][]Face {
	cycle := []Face{a, b, c, d}
	switch quarterTurns {
	case 1:
		return [][]Face{{cycle[0], cycle[1]}, {cycle[1], cycle[2]}, {cycle[2], cycle[3]}, {cycle[3], cycle[0]}}
	case 2:
		return [][]Face{{cycle[0], cycle[2]}, {cycle[2], cycle[0]}, {cycle[1], cycle[3]}, {cycle[3], cycle[1]}}
	default: // 3, counter-clockwise
		return [][]Face{{cycle[0], cycle[3]}, {cycle[3], cycle[2]}, {cycle[2], cycle[1]}, {cycle[1], cycle[0]}}
	}
}

// composeRotation overlays a secondary permutation's non-identity entries
// onto perm in place.
func composeRotation(perm, overlay Permutation) {
	for i, dst := range overlay {
		if dst != i {
			perm[i] = dst
		}
	}
}

// generateFaceRotationPermutation spins the stickers of a single face
// (the outer-layer turn's own face, or an axis face during a cube
// rotation) by quarterTurns.
func generateFaceRotationPermutation(N int, moveType MoveType, quarterTurns int) Permutation {
	perm := identityPermutation(N)

	var face Face
	switch moveType {
	case MoveR:
		face = Right
	case MoveL:
		face = Left
	case MoveU:
		face = Up
	case MoveD:
		face = Down
	case MoveF:
		face = Front
	case MoveB:
		face = Back
	default:
		return perm
	}

	for layer := 0; layer < N/2; layer++ {
		ring := generateFaceRing(face, N, layer)
		indices := coordsToIndices(ring, N)
		rotated := rotateSlice(indices, quarterTurns)
		for i, srcIdx := range indices {
			perm[srcIdx] = rotated[i]
		}
	}

	return perm
}

// generateFaceRing walks one concentric square ring on a single face.
func generateFaceRing(face Face, N, layer int) []Coord {
	var ring []Coord

	for c := layer; c < N-layer; c++ {
		ring = append(ring, Coord{face, layer, c})
	}
	for r := layer + 1; r < N-layer; r++ {
		ring = append(ring, Coord{face, r, N - 1 - layer})
	}
	if N-1-layer > layer {
		for c := N - 2 - layer; c >= layer; c-- {
			ring = append(ring, Coord{face, N - 1 - layer, c})
		}
	}
	if N-1-layer > layer {
		for r := N - 2 - layer; r > layer; r-- {
			ring = append(ring, Coord{face, r, layer})
		}
	}

	return ring
}

// identityPermutation returns the identity permutation for an NxN cube's
// flattened sticker array.
func identityPermutation(N int) Permutation {
	perm := make(Permutation, 6*N*N)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// coordsToIndices flattens a ring of face coordinates to sticker indices.
func coordsToIndices(ring []Coord, N int) []int {
	indices := make([]int, len(ring))
	for i, coord := range ring {
		indices[i] = stickerIndex(coord.Face, coord.Row, coord.Col, N)
	}
	return indices
}

// rotateSlice rotates a slice of indices by quarterTurns.
func rotateSlice(slice []int, quarterTurns int) []int {
	n := len(slice)
	if n == 0 {
		return slice
	}
	quarterTurns = quarterTurns % 4
	shift := (quarterTurns * n / 4) % n
	result := make([]int, n)
	for i := range slice {
		result[i] = slice[(i+shift)%n]
	}
	return result
}

// applyPermutation applies a permutation to the cube's sticker array.
func applyPermutation(cube *Cube, perm Permutation) {
	N := cube.Size
	colors := make([]Color, 6*N*N)

	idx := 0
	for face := 0; face < 6; face++ {
		for row := 0; row < N; row++ {
			for col := 0; col < N; col++ {
				colors[idx] = cube.Faces[face][row][col]
				idx++
			}
		}
	}

	newColors := make([]Color, 6*N*N)
	for src, dst := range perm {
		newColors[dst] = colors[src]
	}

	idx = 0
	for face := 0; face < 6; face++ {
		for row := 0; row < N; row++ {
			for col := 0; col < N; col++ {
				cube.Faces[face][row][col] = newColors[idx]
				idx++
			}
		}
	}
}
