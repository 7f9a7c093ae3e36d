package ligerito

import "github.com/rotkonetworks/zeratul-sub002/pkg/transcript"

// Codec bundles the per-field-size glue the generic recursion driver
// cannot infer on its own: how to map a small integer onto a Reed-
// Solomon evaluation point, how to squeeze one fresh challenge of this
// stage's field size from a transcript, and how to pack an element into
// its canonical bytes for Merkle leaves and transcript absorption. A
// caller working in F_32 passes a wrapper around binfield.FromUint32, a
// wrapper around transcript.SqueezeChallenge32, and a little-endian byte
// packer; F_128
// callers do the same with the 128-bit counterparts.
type Codec[T FieldElem[T]] struct {
	FromInt func(int) T
	Squeeze func(transcript.Transcript) T
	ToBytes func(T) []byte
}

func rowsToBytes[T FieldElem[T]](rows [][]T, toBytes func(T) []byte) [][]byte {
	out := make([][]byte, len(rows))
	for i, row := range rows {
		var buf []byte
		for _, v := range row {
			buf = append(buf, toBytes(v)...)
		}
		out[i] = buf
	}
	return out
}

func tripleBytes[T FieldElem[T]](s0, s1, s2 T, toBytes func(T) []byte) [][]byte {
	return [][]byte{toBytes(s0), toBytes(s1), toBytes(s2)}
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
