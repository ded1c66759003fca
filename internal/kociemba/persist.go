package kociemba

import (
	"encoding/binary"
	"io"
	"os"
)

// Artifact magic and version (spec.md §6 "persisted binary format").
// A version bump invalidates every existing cache file rather than
// risk a silent misread of a stale layout.
const (
	artifactMagic   uint32 = 0x4b4f4332 // "KOC2"
	artifactVersion uint32 = 1
)

// SaveArtifact writes every coord and pruning table to path in the
// fixed little-endian layout: a header (magic, version) followed by
// the six coord tables and four pruning tables in the order given in
// spec.md §3, each as raw little-endian elements with no length
// prefix (LoadArtifact takes the lengths from the table dimensions).
func SaveArtifact(path string, t *CoordTables, p *PruningTables) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr(TableIOError, err, "creating cache artifact %s", path)
	}
	defer f.Close()

	w := &binWriter{w: f}
	w.u32(artifactMagic)
	w.u32(artifactVersion)
	w.u16s(t.Twist)
	w.u16s(t.Flip)
	w.u16s(t.Slice)
	w.u16s(t.CPerm)
	w.u16s(t.EPermUD)
	w.u8s(t.EPermE)
	w.u8s(p.P1SliceTwist)
	w.u8s(p.P1SliceFlip)
	w.u8s(p.P2EECPerm)
	w.u8s(p.P2EEEPermUD)
	if w.err != nil {
		return wrapErr(TableIOError, w.err, "writing cache artifact %s", path)
	}
	return nil
}

// LoadArtifact reads back what SaveArtifact wrote. A missing file,
// magic mismatch or version mismatch is surfaced as TableIOError so
// the caller can fall back to rebuilding (spec.md §7).
func LoadArtifact(path string) (*CoordTables, *PruningTables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, wrapErr(TableIOError, err, "opening cache artifact %s", path)
	}
	defer f.Close()

	r := &binReader{r: f}
	magic := r.u32()
	version := r.u32()
	if r.err == nil && magic != artifactMagic {
		return nil, nil, newErr(TableIOError, "cache artifact %s has wrong magic", path)
	}
	if r.err == nil && version != artifactVersion {
		return nil, nil, newErr(TableIOError, "cache artifact %s has unsupported version %d", path, version)
	}

	t := &CoordTables{
		Twist:   r.u16s(TwistN * NumMoves),
		Flip:    r.u16s(FlipN * NumMoves),
		Slice:   r.u16s(SliceN * NumMoves),
		CPerm:   r.u16s(CPermN * NumMoves),
		EPermUD: r.u16s(EPermUDN * NumMoves),
		EPermE:  r.u8s(EPermEN * NumMoves),
	}
	p := &PruningTables{
		P1SliceTwist: r.u8s(SliceN * TwistN),
		P1SliceFlip:  r.u8s(SliceN * FlipN),
		P2EECPerm:    r.u8s(EPermEN * CPermN),
		P2EEEPermUD:  r.u8s(EPermEN * EPermUDN),
	}
	if r.err != nil {
		return nil, nil, wrapErr(TableIOError, r.err, "reading cache artifact %s", path)
	}
	if err := p.Validate(); err != nil {
		return nil, nil, wrapErr(TableIOError, err, "cache artifact %s failed validation", path)
	}
	return t, p, nil
}

// LoadOrBuildSolver loads a Solver from path if present and valid,
// otherwise builds fresh tables and writes them back to path.
func LoadOrBuildSolver(path string) (*Solver, error) {
	if t, p, err := LoadArtifact(path); err == nil {
		return &Solver{
			Tables:   t,
			Pruning:  p,
			P1Bound:  DefaultP1MaxBound,
			P2Bound:  DefaultP2MaxBound,
			Deadline: DefaultDeadline,
		}, nil
	}
	s := NewSolver()
	_ = SaveArtifact(path, s.Tables, s.Pruning)
	return s, nil
}

type binWriter struct {
	w   io.Writer
	err error
}

func (w *binWriter) u32(v uint32) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, v)
}

func (w *binWriter) u16s(v []uint16) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, v)
}

func (w *binWriter) u8s(v []uint8) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(v)
}

type binReader struct {
	r   io.Reader
	err error
}

func (r *binReader) u32() uint32 {
	var v uint32
	if r.err != nil {
		return 0
	}
	r.err = binary.Read(r.r, binary.LittleEndian, &v)
	return v
}

func (r *binReader) u16s(n int) []uint16 {
	v := make([]uint16, n)
	if r.err != nil {
		return v
	}
	r.err = binary.Read(r.r, binary.LittleEndian, v)
	return v
}

func (r *binReader) u8s(n int) []uint8 {
	v := make([]uint8, n)
	if r.err != nil {
		return v
	}
	_, r.err = io.ReadFull(r.r, v)
	return v
}
