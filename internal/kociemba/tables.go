package kociemba

// CoordTables holds the six move tables T_X[coord][move] = coord',
// flattened row-major (coord, move) as required by the persisted-state
// layout in spec.md §4.3/§9. Built once and read-only thereafter.
type CoordTables struct {
	Twist   []uint16 // TwistN * NumMoves
	Flip    []uint16 // FlipN * NumMoves
	Slice   []uint16 // SliceN * NumMoves
	CPerm   []uint16 // CPermN * NumMoves
	EPermUD []uint16 // EPermUDN * NumMoves
	EPermE  []uint8  // EPermEN * NumMoves
}

func (t *CoordTables) twist(coord int, m Move) int   { return int(t.Twist[coord*NumMoves+int(m)]) }
func (t *CoordTables) flip(coord int, m Move) int    { return int(t.Flip[coord*NumMoves+int(m)]) }
func (t *CoordTables) slice(coord int, m Move) int   { return int(t.Slice[coord*NumMoves+int(m)]) }
func (t *CoordTables) cperm(coord int, m Move) int   { return int(t.CPerm[coord*NumMoves+int(m)]) }
func (t *CoordTables) epermUD(coord int, m Move) int { return int(t.EPermUD[coord*NumMoves+int(m)]) }
func (t *CoordTables) epermE(coord int, m Move) int  { return int(t.EPermE[coord*NumMoves+int(m)]) }

// buildUint16Table iterates every coordinate value, decodes it to a
// canonical CubieCube, applies each of the 18 moves, and re-encodes
// (spec.md §4.3 "Coord Move Table Builder").
func buildUint16Table(n int, decode func(int) *CubieCube, encode func(*CubieCube) int) []uint16 {
	t := make([]uint16, n*NumMoves)
	for coord := 0; coord < n; coord++ {
		base := decode(coord)
		for m := 0; m < NumMoves; m++ {
			d := base.Clone()
			d.ApplyMove(Move(m))
			t[coord*NumMoves+m] = uint16(encode(d))
		}
	}
	return t
}

func buildUint8Table(n int, decode func(int) *CubieCube, encode func(*CubieCube) int) []uint8 {
	t := make([]uint8, n*NumMoves)
	for coord := 0; coord < n; coord++ {
		base := decode(coord)
		for m := 0; m < NumMoves; m++ {
			d := base.Clone()
			d.ApplyMove(Move(m))
			t[coord*NumMoves+m] = uint8(encode(d))
		}
	}
	return t
}

// BuildCoordTables constructs all six coordinate move tables.
func BuildCoordTables() *CoordTables {
	return &CoordTables{
		Twist:   buildUint16Table(TwistN, decodeTwist, encodeTwist),
		Flip:    buildUint16Table(FlipN, decodeFlip, encodeFlip),
		Slice:   buildUint16Table(SliceN, decodeSlice, encodeSlice),
		CPerm:   buildUint16Table(CPermN, decodeCPerm, encodeCPerm),
		EPermUD: buildUint16Table(EPermUDN, decodeEPermUD, encodeEPermUD),
		EPermE:  buildUint8Table(EPermEN, decodeEPermE, encodeEPermE),
	}
}
