package merkle

import "sort"

// ProofNode is one sibling hash needed to reconstruct a parent that the
// verifier cannot otherwise derive from the opened leaves.
type ProofNode struct {
	Level int
	Index int
	Hash  Root
}

// BatchProof is the minimal sibling set needed to authenticate a sorted,
// deduplicated set of leaf indices against a tree's root. Naive per-leaf
// proofs would cost O(|Q| log N) hashes; this walk shares siblings that
// cover more than one opened leaf, which is mandatory for the proof-size
// targets named in the spec.
type BatchProof struct {
	NumLeaves int
	Indices   []int
	Nodes     []ProofNode
}

// BatchOpen returns the leaves at the given indices are authenticated by
// the minimal compressed sibling set. indices need not be sorted or
// deduplicated on entry.
func (t *Tree) BatchOpen(indices []int) BatchProof {
	idx := dedupSorted(indices)

	proof := BatchProof{NumLeaves: t.NumLeaves(), Indices: idx}
	known := make(map[int]bool, len(idx))
	for _, i := range idx {
		known[i] = true
	}

	for level := 0; level < t.Depth(); level++ {
		levelLen := len(t.levels[level])
		nextKnown := make(map[int]bool)
		seenParent := make(map[int]bool)
		for i := range known {
			parent := i / 2
			if seenParent[parent] {
				continue
			}
			seenParent[parent] = true
			sib := i ^ 1
			if sib >= levelLen {
				sib = i // duplicated node case: sibling is itself
			}
			if !known[sib] {
				proof.Nodes = append(proof.Nodes, ProofNode{
					Level: level,
					Index: sib,
					Hash:  t.levels[level][sib],
				})
			}
			nextKnown[parent] = true
		}
		known = nextKnown
	}
	return proof
}

func dedupSorted(indices []int) []int {
	cp := append([]int(nil), indices...)
	sort.Ints(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != cp[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// VerifyBatch recomputes the root from claimed leaf bytes (hashed here
// with the same "leaf" domain tag Build uses) plus the proof's sibling
// set, and compares it against expectedRoot. Verification is linear in
// |indices| + |proof.Nodes|.
func VerifyBatch(expectedRoot Root, proof BatchProof, leafBytes [][]byte) error {
	if len(leafBytes) != len(proof.Indices) {
		return ErrInvalidProof
	}
	idx := dedupSorted(proof.Indices)
	for i := range idx {
		if idx[i] != proof.Indices[i] {
			return ErrInvalidProof
		}
	}

	sizes := levelSizes(proof.NumLeaves)
	depth := len(sizes) - 1
	if depth == 0 {
		if len(proof.Indices) != 1 || proof.Indices[0] != 0 {
			return ErrInvalidProof
		}
		if hashLeaf(leafBytes[0]) != expectedRoot {
			return ErrRootMismatch
		}
		return nil
	}

	nodesByLevel := make(map[int]map[int]Root)
	for _, n := range proof.Nodes {
		if nodesByLevel[n.Level] == nil {
			nodesByLevel[n.Level] = make(map[int]Root)
		}
		nodesByLevel[n.Level][n.Index] = n.Hash
	}

	known := make(map[int]Root, len(proof.Indices))
	for i, idx := range proof.Indices {
		known[idx] = hashLeaf(leafBytes[i])
	}

	for level := 0; level < depth; level++ {
		levelLen := sizes[level]
		nextKnown := make(map[int]Root)
		seenParent := make(map[int]bool)
		sortedIdx := sortedKeys(known)
		for _, i := range sortedIdx {
			parent := i / 2
			if seenParent[parent] {
				continue
			}
			seenParent[parent] = true
			sib := i ^ 1
			var sibHash Root
			if sib >= levelLen {
				sibHash = known[i]
			} else if h, ok := known[sib]; ok {
				sibHash = h
			} else if h, ok := nodesByLevel[level][sib]; ok {
				sibHash = h
			} else {
				return ErrInvalidProof
			}
			var left, right Root
			if i%2 == 0 {
				left, right = known[i], sibHash
			} else {
				left, right = sibHash, known[i]
			}
			nextKnown[parent] = hashNode(left, right)
		}
		known = nextKnown
	}

	root, ok := known[0]
	if !ok {
		return ErrInvalidProof
	}
	if root != expectedRoot {
		return ErrRootMismatch
	}
	return nil
}

func sortedKeys(m map[int]Root) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
