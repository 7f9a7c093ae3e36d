package merkle

import (
	"bytes"
	"testing"
)

func makeLeaves(n int) [][]byte {
	leaves := make([][]byte, n)
	for i := range leaves {
		leaves[i] = []byte{byte(i), byte(i >> 8), byte(i * 7)}
	}
	return leaves
}

func TestBuildRootDeterministic(t *testing.T) {
	leaves := makeLeaves(13)
	t1 := Build(leaves)
	t2 := Build(leaves)
	if t1.Root() != t2.Root() {
		t.Fatalf("root not deterministic: %x != %x", t1.Root(), t2.Root())
	}
}

func TestEmptyTreeRoot(t *testing.T) {
	tr := Build(nil)
	if !tr.Root().IsEmpty() {
		t.Errorf("expected empty root for zero leaves, got %x", tr.Root())
	}
}

func TestSingleLeafTree(t *testing.T) {
	leaves := makeLeaves(1)
	tr := Build(leaves)
	proof := tr.BatchOpen([]int{0})
	if err := VerifyBatch(tr.Root(), proof, leaves); err != nil {
		t.Fatalf("single-leaf verify failed: %v", err)
	}
}

func TestBatchOpenVerifyRoundTrip(t *testing.T) {
	sizes := []int{1, 2, 3, 5, 7, 16, 17, 100, 257}
	for _, n := range sizes {
		leaves := makeLeaves(n)
		tr := Build(leaves)
		queries := pickSome(n)
		proof := tr.BatchOpen(queries)

		opened := make([][]byte, len(proof.Indices))
		for i, idx := range proof.Indices {
			opened[i] = leaves[idx]
		}
		if err := VerifyBatch(tr.Root(), proof, opened); err != nil {
			t.Fatalf("n=%d: verify failed: %v", n, err)
		}
	}
}

func pickSome(n int) []int {
	var out []int
	for i := 0; i < n; i += 3 {
		out = append(out, i)
	}
	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}

func TestBatchOpenCompressesSiblings(t *testing.T) {
	n := 1024
	leaves := makeLeaves(n)
	tr := Build(leaves)
	var all []int
	for i := 0; i < n; i++ {
		all = append(all, i)
	}
	proof := tr.BatchOpen(all)
	// Opening every leaf should require zero additional sibling hashes:
	// every sibling the walk needs is already among the opened leaves.
	if len(proof.Nodes) != 0 {
		t.Errorf("opening all leaves should need 0 proof nodes, got %d", len(proof.Nodes))
	}

	few := []int{3, 500}
	proofFew := tr.BatchOpen(few)
	maxNaive := len(few) * tr.Depth()
	if len(proofFew.Nodes) >= maxNaive {
		t.Errorf("batch proof (%d nodes) not smaller than naive per-leaf bound (%d)", len(proofFew.Nodes), maxNaive)
	}
}

func TestVerifyFailsOnFlippedLeafByte(t *testing.T) {
	leaves := makeLeaves(50)
	tr := Build(leaves)
	queries := []int{1, 2, 40}
	proof := tr.BatchOpen(queries)

	opened := make([][]byte, len(proof.Indices))
	for i, idx := range proof.Indices {
		opened[i] = append([]byte(nil), leaves[idx]...)
	}
	opened[0][0] ^= 0x01

	err := VerifyBatch(tr.Root(), proof, opened)
	if err == nil {
		t.Fatal("expected verify to fail after flipping an opened leaf byte")
	}
}

func TestVerifyFailsOnRootMismatch(t *testing.T) {
	leaves := makeLeaves(20)
	tr := Build(leaves)
	queries := []int{0, 5, 19}
	proof := tr.BatchOpen(queries)
	opened := make([][]byte, len(proof.Indices))
	for i, idx := range proof.Indices {
		opened[i] = leaves[idx]
	}
	var wrongRoot Root
	copy(wrongRoot[:], bytes.Repeat([]byte{0xFF}, 32))
	if err := VerifyBatch(wrongRoot, proof, opened); err != ErrRootMismatch {
		t.Errorf("expected ErrRootMismatch, got %v", err)
	}
}

func TestVerifyFailsOnPermutedLeaves(t *testing.T) {
	leaves := makeLeaves(40)
	tr := Build(leaves)
	proof := tr.BatchOpen([]int{1, 2, 3, 4})
	opened := make([][]byte, len(proof.Indices))
	for i, idx := range proof.Indices {
		opened[i] = leaves[idx]
	}
	// Swap two opened leaves without reordering proof.Indices: each leaf
	// now hashes into the wrong slot of the tree.
	opened[0], opened[1] = opened[1], opened[0]
	if err := VerifyBatch(tr.Root(), proof, opened); err == nil {
		t.Fatalf("expected verification to fail when opened leaves are permuted")
	}
}

func TestVerifyFailsOnTruncatedProofNodes(t *testing.T) {
	leaves := makeLeaves(64)
	tr := Build(leaves)
	proof := tr.BatchOpen([]int{0, 63})
	opened := make([][]byte, len(proof.Indices))
	for i, idx := range proof.Indices {
		opened[i] = leaves[idx]
	}
	if len(proof.Nodes) == 0 {
		t.Fatal("fixture should require at least one sibling node")
	}
	truncated := proof
	truncated.Nodes = proof.Nodes[:len(proof.Nodes)-1]
	if err := VerifyBatch(tr.Root(), truncated, opened); err == nil {
		t.Fatalf("expected verification to fail with a truncated proof")
	}
}
