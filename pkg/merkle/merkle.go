// Package merkle implements a domain-separated binary Merkle tree with
// compressed batched multi-open proofs, grounded on the generalized-index
// sibling-compression walk used for state proofs elsewhere in the pack,
// adapted here to Ligero row commitments: rows need not be a power of two
// in count, and leaves are opened in large batches (tens to hundreds) per
// proof rather than one at a time.
package merkle

import (
	"errors"

	sha256simd "github.com/minio/sha256-simd"
)

// ErrInvalidProof is returned when a batch proof's shape cannot possibly
// authenticate the claimed set of leaves (wrong sibling count, index out
// of range, and so on).
var ErrInvalidProof = errors.New("merkle: invalid batch proof")

// ErrRootMismatch is returned when a batch proof is well-formed but the
// root it reconstructs differs from the expected root.
var ErrRootMismatch = errors.New("merkle: root mismatch")

// Root is a 32-byte tree digest.
type Root [32]byte

// IsEmpty reports whether r is the zero root of an empty tree.
func (r Root) IsEmpty() bool { return r == Root{} }

// Tree is a built, read-only Merkle tree over a list of leaves.
type Tree struct {
	levels [][]Root // levels[0] = leaf hashes, levels[len-1] = {root}
}

func hashLeaf(data []byte) Root {
	buf := make([]byte, 0, len(data)+4)
	buf = append(buf, "leaf"...)
	buf = append(buf, data...)
	return Root(sha256simd.Sum256(buf))
}

func hashNode(left, right Root) Root {
	buf := make([]byte, 0, 4+64)
	buf = append(buf, "node"...)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return Root(sha256simd.Sum256(buf))
}

// Build constructs a tree over leaves, each hashed with the "leaf" domain
// tag. N need not be a power of two: at every level, an odd node out is
// paired with a duplicate of itself, exactly as spec'd.
func Build(leaves [][]byte) *Tree {
	if len(leaves) == 0 {
		return &Tree{levels: [][]Root{{}}}
	}
	level := make([]Root, len(leaves))
	for i, l := range leaves {
		level[i] = hashLeaf(l)
	}
	levels := [][]Root{level}
	for len(level) > 1 {
		next := make([]Root, (len(level)+1)/2)
		for i := range next {
			left := level[2*i]
			right := left
			if 2*i+1 < len(level) {
				right = level[2*i+1]
			}
			next[i] = hashNode(left, right)
		}
		levels = append(levels, next)
		level = next
	}
	return &Tree{levels: levels}
}

// Root returns the tree's root, or the zero Root iff the tree has zero
// leaves.
func (t *Tree) Root() Root {
	top := t.levels[len(t.levels)-1]
	if len(top) == 0 {
		return Root{}
	}
	return top[0]
}

// NumLeaves returns how many leaves the tree was built over.
func (t *Tree) NumLeaves() int { return len(t.levels[0]) }

// Depth returns the number of levels above the leaves (0 for a single-leaf
// or empty tree).
func (t *Tree) Depth() int { return len(t.levels) - 1 }

func levelSizes(numLeaves int) []int {
	if numLeaves == 0 {
		return []int{0}
	}
	sizes := []int{numLeaves}
	for sizes[len(sizes)-1] > 1 {
		sizes = append(sizes, (sizes[len(sizes)-1]+1)/2)
	}
	return sizes
}
