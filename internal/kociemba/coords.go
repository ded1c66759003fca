package kociemba

// Coordinate range sizes (spec.md §3).
const (
	TwistN   = 2187  // 3^7
	FlipN    = 2048  // 2^11
	SliceN   = 495   // C(12,4)
	CPermN   = 40320 // 8!
	EPermUDN = 40320 // 8!
	EPermEN  = 24    // 4!
)

var factorial = [9]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320}

// ---------------------------------------------------------------------
// TWIST: corner orientation, base-3.
// ---------------------------------------------------------------------

func encodeTwist(c *CubieCube) int {
	idx := 0
	for i := 0; i < 7; i++ {
		idx = 3*idx + int(c.co[i])
	}
	return idx
}

// decodeTwist returns a solved-default CubieCube whose TWIST equals idx.
func decodeTwist(idx int) *CubieCube {
	c := NewSolvedCubieCube()
	sum := 0
	var co [7]int
	for i := 6; i >= 0; i-- {
		co[i] = idx % 3
		idx /= 3
	}
	for i := 0; i < 7; i++ {
		c.co[i] = uint8(co[i])
		sum += co[i]
	}
	c.co[7] = uint8((3 - sum%3) % 3)
	return c
}

// ---------------------------------------------------------------------
// FLIP: edge orientation, base-2.
// ---------------------------------------------------------------------

func encodeFlip(c *CubieCube) int {
	idx := 0
	for i := 0; i < 11; i++ {
		idx = idx<<1 | int(c.eo[i])
	}
	return idx
}

func decodeFlip(idx int) *CubieCube {
	c := NewSolvedCubieCube()
	sum := 0
	var eo [11]int
	for i := 10; i >= 0; i-- {
		eo[i] = idx & 1
		idx >>= 1
	}
	for i := 0; i < 11; i++ {
		c.eo[i] = uint8(eo[i])
		sum += eo[i]
	}
	c.eo[11] = uint8((2 - sum%2) % 2)
	return c
}

// ---------------------------------------------------------------------
// SLICE: which 4 of the 12 edge positions hold E-slice edges, ranked
// via the combinatorial number system (spec.md §3) and counted down
// from SliceN-1, so the solved set {8,9,10,11} encodes as 0.
// ---------------------------------------------------------------------

// binomial returns C(n, k), with the conventional 0 for k<0 or k>n.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}

func rankSubset12_4(sorted [4]int) int {
	r := 0
	last := -1
	for i := 0; i < 4; i++ {
		for v := last + 1; v < sorted[i]; v++ {
			r += binomial(11-v, 3-i)
		}
		last = sorted[i]
	}
	return r
}

func unrankSubset12_4(r int) [4]int {
	var pos [4]int
	x := 0
	for i := 0; i < 4; i++ {
		for v := x; v < 12; v++ {
			cnt := binomial(11-v, 3-i)
			if r < cnt {
				pos[i] = v
				x = v + 1
				break
			}
			r -= cnt
		}
	}
	return pos
}

func encodeSlice(c *CubieCube) int {
	var pos [4]int
	k := 0
	for i := 0; i < 12; i++ {
		if c.ep[i] >= 8 {
			pos[k] = i
			k++
		}
	}
	return SliceN - 1 - rankSubset12_4(pos)
}

// decodeSlice places E-slice values 8,9,10,11 into the chosen
// positions in that order and fills the rest with 0..7 cyclically
// (spec.md §4.2 "SLICE decoder").
func decodeSlice(idx int) *CubieCube {
	c := NewSolvedCubieCube()
	pos := unrankSubset12_4(SliceN - 1 - idx)
	var used [12]bool
	for i, p := range pos {
		c.ep[p] = uint8(8 + i)
		used[p] = true
	}
	e := 0
	for i := 0; i < 12; i++ {
		if !used[i] {
			c.ep[i] = uint8(e)
			e++
			if e == 8 {
				e = 0
			}
		}
	}
	return c
}

// ---------------------------------------------------------------------
// Lehmer rank/unrank over {0..n-1}, used by CPERM, EPERM_UD, EPERM_E.
// ---------------------------------------------------------------------

func lehmerRank(p []uint8) int {
	n := len(p)
	r := 0
	for i := 0; i < n; i++ {
		s := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				s++
			}
		}
		r += s * factorial[n-1-i]
	}
	return r
}

func lehmerUnrank(r, n int) []uint8 {
	elems := make([]uint8, n)
	for i := range elems {
		elems[i] = uint8(i)
	}
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		f := factorial[n-1-i]
		q := r / f
		r %= f
		out[i] = elems[q]
		elems = append(elems[:q], elems[q+1:]...)
	}
	return out
}

// ---------------------------------------------------------------------
// CPERM: Lehmer rank of the full corner permutation.
// ---------------------------------------------------------------------

func encodeCPerm(c *CubieCube) int {
	return lehmerRank(c.cp[:])
}

func decodeCPerm(idx int) *CubieCube {
	c := NewSolvedCubieCube()
	copy(c.cp[:], lehmerUnrank(idx, 8))
	return c
}

// ---------------------------------------------------------------------
// EPERM_UD: Lehmer rank of ep[0..7], meaningful only in G1.
// ---------------------------------------------------------------------

func encodeEPermUD(c *CubieCube) int {
	return lehmerRank(c.ep[0:8])
}

// decodeEPermUD unranks into positions 0..7 and sets ep[8..11]=8..11
// (the G1 convention, spec.md §4.2).
func decodeEPermUD(idx int) *CubieCube {
	c := NewSolvedCubieCube()
	copy(c.ep[0:8], lehmerUnrank(idx, 8))
	for i := 0; i < 4; i++ {
		c.ep[8+i] = uint8(8 + i)
	}
	return c
}

// ---------------------------------------------------------------------
// EPERM_E: Lehmer rank of ep[8..11]-8, meaningful only in G1.
// ---------------------------------------------------------------------

func encodeEPermE(c *CubieCube) int {
	p := make([]uint8, 4)
	for i := 0; i < 4; i++ {
		p[i] = c.ep[8+i] - 8
	}
	return lehmerRank(p)
}

func decodeEPermE(idx int) *CubieCube {
	c := NewSolvedCubieCube()
	p := lehmerUnrank(idx, 4)
	for i := 0; i < 4; i++ {
		c.ep[8+i] = 8 + p[i]
	}
	return c
}
