// Package transcript implements the Fiat-Shamir transcript: a stateful
// object that absorbs commitments and field elements and squeezes
// challenges and query indices, with domain-separated labels so prover
// and verifier walk through an identical sequence of operations.
//
// The running-state idiom (state = sha256(state || tag || data), advance
// state on every absorb and every squeeze) is grounded on the IPA
// transcript pattern used elsewhere in the pack; the absorb/squeeze
// method set itself — absorb_root / absorb_element(s) / squeeze_challenge
// / squeeze_query — mirrors the Transcript trait in the original Rust
// ligerito crate this scheme was distilled from, minus that crate's
// Merlin binding and julia-compatibility toggle, which have no bearing on
// a fresh Go implementation with no external reference transcript to
// match bit-for-bit.
package transcript

import (
	"encoding/binary"
	"sort"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/rotkonetworks/zeratul-sub002/pkg/binfield"
	"github.com/rotkonetworks/zeratul-sub002/pkg/merkle"
)

// Transcript is the capability both the prover and verifier take as a
// parameter; it is never process-global, so two concurrent proofs can use
// two independent instances.
type Transcript interface {
	AbsorbRoot(r merkle.Root)
	AbsorbElement(bytes []byte)
	AbsorbElements(bytesList [][]byte)

	SqueezeChallenge8() binfield.Elem8
	SqueezeChallenge16() binfield.Elem16
	SqueezeChallenge32() binfield.Elem32
	SqueezeChallenge64() binfield.Elem64
	SqueezeChallenge128() binfield.Elem128

	SqueezeQuery(bound int) int
	SqueezeDistinctQueries(bound, count int) []int
}

// Sha256Transcript is the one Transcript implementation this repository
// ships (the original's Merlin alternative is out of scope, see
// SPEC_FULL.md).
type Sha256Transcript struct {
	state   [32]byte
	counter uint64
}

// NewSha256Transcript seeds a fresh transcript with a label, so two
// different protocols (or two stages within a protocol that intentionally
// want independent randomness) never collide.
func NewSha256Transcript(label string) *Sha256Transcript {
	return &Sha256Transcript{state: sha256simd.Sum256([]byte(label))}
}

func (t *Sha256Transcript) absorb(tag string, data []byte) {
	h := sha256simd.New()
	h.Write(t.state[:])
	h.Write([]byte(tag))
	h.Write(data)
	copy(t.state[:], h.Sum(nil))
}

func (t *Sha256Transcript) squeeze(tag string, nBytes int) []byte {
	out := make([]byte, 0, nBytes+32)
	for len(out) < nBytes {
		h := sha256simd.New()
		h.Write(t.state[:])
		h.Write([]byte(tag))
		var ctrBuf [8]byte
		binary.LittleEndian.PutUint64(ctrBuf[:], t.counter)
		h.Write(ctrBuf[:])
		t.counter++
		digest := h.Sum(nil)
		copy(t.state[:], digest)
		out = append(out, digest...)
	}
	return out[:nBytes]
}

// AbsorbRoot binds a stage's Merkle root into the transcript.
func (t *Sha256Transcript) AbsorbRoot(r merkle.Root) {
	t.absorb("root", r[:])
}

// AbsorbElement binds one field element's packed bytes.
func (t *Sha256Transcript) AbsorbElement(bytes []byte) {
	t.absorb("field_element", bytes)
}

// AbsorbElements binds a slice of field elements as one message (used
// when an entire sumcheck triple or a batch of final-round outputs must
// enter the transcript atomically).
func (t *Sha256Transcript) AbsorbElements(bytesList [][]byte) {
	total := 0
	for _, b := range bytesList {
		total += len(b)
	}
	buf := make([]byte, 0, total)
	for _, b := range bytesList {
		buf = append(buf, b...)
	}
	t.absorb("field_elements", buf)
}

// SqueezeChallenge8 extracts a challenge in F_8. Any deterministic
// surjection from {0,1}^k onto F_k satisfies the spec; this
// implementation takes the simplest one and treats the extracted bytes
// directly as the field element's packed representation.
func (t *Sha256Transcript) SqueezeChallenge8() binfield.Elem8 {
	b := t.squeeze("challenge", 1)
	return binfield.FromUint8(b[0])
}

func (t *Sha256Transcript) SqueezeChallenge16() binfield.Elem16 {
	b := t.squeeze("challenge", 2)
	return binfield.FromUint16(binary.LittleEndian.Uint16(b))
}

func (t *Sha256Transcript) SqueezeChallenge32() binfield.Elem32 {
	b := t.squeeze("challenge", 4)
	return binfield.FromUint32(binary.LittleEndian.Uint32(b))
}

func (t *Sha256Transcript) SqueezeChallenge64() binfield.Elem64 {
	b := t.squeeze("challenge", 8)
	return binfield.FromUint64(binary.LittleEndian.Uint64(b))
}

func (t *Sha256Transcript) SqueezeChallenge128() binfield.Elem128 {
	b := t.squeeze("challenge", 16)
	lo := binary.LittleEndian.Uint64(b[:8])
	hi := binary.LittleEndian.Uint64(b[8:])
	return binfield.FromHiLo(hi, lo)
}

// SqueezeQuery squeezes 8 bytes, interprets them little-endian, and
// reduces modulo bound.
func (t *Sha256Transcript) SqueezeQuery(bound int) int {
	if bound <= 0 {
		return 0
	}
	b := t.squeeze("query", 8)
	v := binary.LittleEndian.Uint64(b)
	return int(v % uint64(bound))
}

// SqueezeDistinctQueries squeezes repeatedly, discarding duplicates,
// until it has min(count, bound) distinct sorted indices in [0, bound).
func (t *Sha256Transcript) SqueezeDistinctQueries(bound, count int) []int {
	target := count
	if bound < target {
		target = bound
	}
	if target <= 0 {
		return nil
	}
	seen := make(map[int]bool, target)
	var out []int
	maxAttempts := target*64 + 256
	for attempts := 0; len(out) < target && attempts < maxAttempts; attempts++ {
		q := t.SqueezeQuery(bound)
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	// Deterministic fallback if the bound is small relative to count and
	// random sampling has not yet covered every remaining slot.
	for i := 0; len(out) < target && i < bound; i++ {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
