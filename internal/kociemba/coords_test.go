package kociemba

import "testing"

func TestTwistRoundTrip(t *testing.T) {
	for i := 0; i < TwistN; i++ {
		c := decodeTwist(i)
		if got := encodeTwist(c); got != i {
			t.Fatalf("twist round trip: decode(%d) then encode = %d", i, got)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for i := 0; i < FlipN; i++ {
		c := decodeFlip(i)
		if got := encodeFlip(c); got != i {
			t.Fatalf("flip round trip: decode(%d) then encode = %d", i, got)
		}
	}
}

func TestSliceRoundTrip(t *testing.T) {
	for i := 0; i < SliceN; i++ {
		c := decodeSlice(i)
		if got := encodeSlice(c); got != i {
			t.Fatalf("slice round trip: decode(%d) then encode = %d", i, got)
		}
	}
}

func TestCPermRoundTripSample(t *testing.T) {
	// 8! is large enough that a full sweep is still cheap, but sample
	// the boundaries plus a stride to keep the test fast and exhaustive
	// at the edges where off-by-one errors tend to live.
	indices := []int{0, 1, CPermN - 1}
	for i := 0; i < CPermN; i += 97 {
		indices = append(indices, i)
	}
	for _, i := range indices {
		c := decodeCPerm(i)
		if got := encodeCPerm(c); got != i {
			t.Fatalf("cperm round trip: decode(%d) then encode = %d", i, got)
		}
	}
}

func TestEPermUDRoundTripSample(t *testing.T) {
	indices := []int{0, 1, EPermUDN - 1}
	for i := 0; i < EPermUDN; i += 97 {
		indices = append(indices, i)
	}
	for _, i := range indices {
		c := decodeEPermUD(i)
		if got := encodeEPermUD(c); got != i {
			t.Fatalf("eperm_ud round trip: decode(%d) then encode = %d", i, got)
		}
	}
}

func TestEPermERoundTrip(t *testing.T) {
	for i := 0; i < EPermEN; i++ {
		c := decodeEPermE(i)
		if got := encodeEPermE(c); got != i {
			t.Fatalf("eperm_e round trip: decode(%d) then encode = %d", i, got)
		}
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{12, 4, 495},
		{11, 3, 165},
		{5, 0, 1},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
	}
	for _, c := range cases {
		if got := binomial(c.n, c.k); got != c.want {
			t.Errorf("binomial(%d,%d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	c := NewSolvedCubieCube()
	if encodeTwist(c) != 0 {
		t.Error("solved TWIST should be 0")
	}
	if encodeFlip(c) != 0 {
		t.Error("solved FLIP should be 0")
	}
	if encodeSlice(c) != 0 {
		t.Error("solved SLICE should be 0")
	}
	if encodeCPerm(c) != 0 {
		t.Error("solved CPERM should be 0")
	}
	if encodeEPermUD(c) != 0 {
		t.Error("solved EPERM_UD should be 0")
	}
	if encodeEPermE(c) != 0 {
		t.Error("solved EPERM_E should be 0")
	}
}
