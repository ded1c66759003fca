package kociemba

import (
	"github.com/cube-solver/kociemba/internal/cube"
)

// convert.go bridges the generic facelet-based cube.Cube (which the
// rest of this repo's CLI, web API and CFEN support operate on) to the
// cubie-level CubieCube the two-phase engine searches over. The
// canonical spec-faithful entry point for a bare scramble string is
// CubeFromScramble in cubiecube.go; this file exists only so the
// existing Solver interface (cube.GetSolver("kociemba")) and the web
// /api/solve handler can drive the real engine from an arbitrary
// facelet state, including one seeded by a CFEN starting position.

// specCornerOfTeacher maps Get3x3CornerMappings() index to the spec
// corner-position index (URF,UFL,ULB,UBR,DFR,DLF,DBL,DRB).
var specCornerOfTeacher = [8]int{2, 3, 1, 0, 5, 4, 6, 7}

// specEdgeOfTeacher maps Get3x3EdgeMappings() index to the spec
// edge-position index (UR,UF,UL,UB,DR,DF,DL,DB,FR,FL,BL,BR).
var specEdgeOfTeacher = [12]int{3, 2, 0, 1, 9, 8, 11, 10, 5, 6, 4, 7}

// axisGroup classifies a face by the pair of opposite faces it
// belongs to: 0 = U/D, 1 = F/B, 2 = L/R.
func axisGroup(f cube.Face) int {
	switch f {
	case cube.Up, cube.Down:
		return 0
	case cube.Front, cube.Back:
		return 1
	default:
		return 2
	}
}

// homeFace returns which face's center currently carries color col —
// centers never move under any face turn, so this identifies the
// sticker's original face regardless of scramble.
func homeFace(c *cube.Cube, col cube.Color) cube.Face {
	for f := cube.Face(0); f < 6; f++ {
		mid := c.Size / 2
		if c.Faces[f][mid][mid] == col {
			return f
		}
	}
	return cube.Up
}

// FromFaceletCube converts a solved-or-scrambled 3x3x3 cube.Cube into
// a CubieCube. Orientation follows the standard Kociemba convention:
// a corner's twist is the cyclic distance (0,1,2) from its U/D-facing
// sticker to the position that would hold the U/D color when solved;
// an edge's flip is 0 when its UD- (or, for E-slice edges, FB-)
// reference sticker carries a UD- (resp. FB-) home color, 1 otherwise.
func FromFaceletCube(c *cube.Cube) (*CubieCube, error) {
	if c.Size != 3 {
		return nil, newErr(IllegalCubeState, "kociemba conversion only supports 3x3x3 cubes, got %dx%dx%d", c.Size, c.Size, c.Size)
	}

	out := &CubieCube{}

	cornerMaps := cube.Get3x3CornerMappings()
	for teacherIdx, cm := range cornerMaps {
		pos := specCornerOfTeacher[teacherIdx]
		faces := [3]cube.Face{
			homeFace(c, c.Faces[cm.Face1][cm.Row1][cm.Col1]),
			homeFace(c, c.Faces[cm.Face2][cm.Row2][cm.Col2]),
			homeFace(c, c.Faces[cm.Face3][cm.Row3][cm.Col3]),
		}
		cubie, twist := identifyCorner(faces)
		out.cp[pos] = uint8(cubie)
		out.co[pos] = uint8(twist)
	}

	edgeMaps := cube.Get3x3EdgeMappings()
	for teacherIdx, em := range edgeMaps {
		pos := specEdgeOfTeacher[teacherIdx]
		f1 := homeFace(c, c.Faces[em.Face1][em.Row1][em.Col1])
		f2 := homeFace(c, c.Faces[em.Face2][em.Row2][em.Col2])

		cubie := identifyEdge(f1, f2)
		out.ep[pos] = uint8(cubie)
		// The cubie's reference color is its U/D color, or its F/B
		// color for an E-slice cubie (8..11).
		ref := 0
		if cubie >= 8 {
			ref = 1
		}
		if axisGroup(f1) == ref {
			out.eo[pos] = 0
		} else {
			out.eo[pos] = 1
		}
	}

	return out, out.Validate()
}

// specCornerIndex maps a corner's three home faces, in canonical
// (UD, FB, LR) order, to its spec position index
// (URF,UFL,ULB,UBR,DFR,DLF,DBL,DRB). Every corner mapping's Face1 is
// U/D, Face2 is F/B and Face3 is L/R, so a solved corner's own slot
// order already reads out in this canonical order.
var specCornerIndex = map[[3]cube.Face]int{
	{cube.Up, cube.Front, cube.Right}:   0,
	{cube.Up, cube.Front, cube.Left}:    1,
	{cube.Up, cube.Back, cube.Left}:     2,
	{cube.Up, cube.Back, cube.Right}:    3,
	{cube.Down, cube.Front, cube.Right}: 4,
	{cube.Down, cube.Front, cube.Left}:  5,
	{cube.Down, cube.Back, cube.Left}:   6,
	{cube.Down, cube.Back, cube.Right}:  7,
}

// identifyCorner returns the spec corner index and its twist (the
// number of cyclic steps, 0..2, from the canonical sticker order to
// the order the U/D-home sticker actually occupies).
func identifyCorner(faces [3]cube.Face) (cubie int, twist int) {
	for rot := 0; rot < 3; rot++ {
		key := [3]cube.Face{faces[rot%3], faces[(rot+1)%3], faces[(rot+2)%3]}
		if faces[rot] == cube.Up || faces[rot] == cube.Down {
			if idx, ok := specCornerIndex[key]; ok {
				return idx, rot
			}
		}
	}
	return 0, 0
}

// specEdgeIndex maps an edge's two home faces (in any order) to its
// spec position index (UR,UF,UL,UB,DR,DF,DL,DB,FR,FL,BL,BR).
var specEdgeIndex = map[[2]cube.Face]int{
	{cube.Up, cube.Right}: 0, {cube.Right, cube.Up}: 0,
	{cube.Up, cube.Front}: 1, {cube.Front, cube.Up}: 1,
	{cube.Up, cube.Left}: 2, {cube.Left, cube.Up}: 2,
	{cube.Up, cube.Back}: 3, {cube.Back, cube.Up}: 3,
	{cube.Down, cube.Right}: 4, {cube.Right, cube.Down}: 4,
	{cube.Down, cube.Front}: 5, {cube.Front, cube.Down}: 5,
	{cube.Down, cube.Left}: 6, {cube.Left, cube.Down}: 6,
	{cube.Down, cube.Back}: 7, {cube.Back, cube.Down}: 7,
	{cube.Front, cube.Right}: 8, {cube.Right, cube.Front}: 8,
	{cube.Front, cube.Left}: 9, {cube.Left, cube.Front}: 9,
	{cube.Back, cube.Left}: 10, {cube.Left, cube.Back}: 10,
	{cube.Back, cube.Right}: 11, {cube.Right, cube.Back}: 11,
}

func identifyEdge(f1, f2 cube.Face) int {
	return specEdgeIndex[[2]cube.Face{f1, f2}]
}

// ToFaceletCube renders a CubieCube back onto a solved cube.Cube of
// the teacher's facelet representation, inverse to FromFaceletCube.
func ToFaceletCube(cc *CubieCube) *cube.Cube {
	c := cube.NewCube(3)

	cornerMaps := cube.Get3x3CornerMappings()
	cornerHomeColors := homeCornerColors(c)
	for teacherIdx, cm := range cornerMaps {
		pos := specCornerOfTeacher[teacherIdx]
		srcSpec := int(cc.cp[pos])
		twist := int(cc.co[pos])
		colors := rotateTriple(cornerHomeColors[srcSpec], twist)
		c.Faces[cm.Face1][cm.Row1][cm.Col1] = colors[0]
		c.Faces[cm.Face2][cm.Row2][cm.Col2] = colors[1]
		c.Faces[cm.Face3][cm.Row3][cm.Col3] = colors[2]
	}

	edgeMaps := cube.Get3x3EdgeMappings()
	edgeHomeColors := homeEdgeColors(c)
	for teacherIdx, em := range edgeMaps {
		pos := specEdgeOfTeacher[teacherIdx]
		srcSpec := int(cc.ep[pos])
		flip := int(cc.eo[pos])
		pair := edgeHomeColors[srcSpec]
		if flip == 1 {
			pair[0], pair[1] = pair[1], pair[0]
		}
		c.Faces[em.Face1][em.Row1][em.Col1] = pair[0]
		c.Faces[em.Face2][em.Row2][em.Col2] = pair[1]
	}

	return c
}

func rotateTriple(t [3]cube.Color, n int) [3]cube.Color {
	var out [3]cube.Color
	for i := 0; i < 3; i++ {
		out[(i+n)%3] = t[i]
	}
	return out
}

// homeCornerColors returns, per spec corner index, the solved-cube
// (UD, FB, LR) sticker colors for that corner, read off a freshly
// solved cube (whose centers define the color scheme).
func homeCornerColors(solved *cube.Cube) [8][3]cube.Color {
	var out [8][3]cube.Color
	cornerMaps := cube.Get3x3CornerMappings()
	for teacherIdx, cm := range cornerMaps {
		pos := specCornerOfTeacher[teacherIdx]
		out[pos] = [3]cube.Color{
			solved.Faces[cm.Face1][cm.Row1][cm.Col1],
			solved.Faces[cm.Face2][cm.Row2][cm.Col2],
			solved.Faces[cm.Face3][cm.Row3][cm.Col3],
		}
	}
	return out
}

func homeEdgeColors(solved *cube.Cube) [12][2]cube.Color {
	var out [12][2]cube.Color
	edgeMaps := cube.Get3x3EdgeMappings()
	for teacherIdx, em := range edgeMaps {
		pos := specEdgeOfTeacher[teacherIdx]
		out[pos] = [2]cube.Color{
			solved.Faces[em.Face1][em.Row1][em.Col1],
			solved.Faces[em.Face2][em.Row2][em.Col2],
		}
	}
	return out
}
