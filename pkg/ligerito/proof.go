package ligerito

import (
	"github.com/rotkonetworks/zeratul-sub002/pkg/merkle"
	"github.com/rotkonetworks/zeratul-sub002/pkg/sumcheck"
)

// FieldElem is the arithmetic capability the recursion driver needs: it
// is exactly what pkg/sumcheck already requires (Add, Mul), plus Inverse,
// which pkg/ligero and the Reed-Solomon encoders each stage builds
// internally also require, plus comparable so the verifier can check a recomputed
// element against a proof-supplied one directly with ==.
type FieldElem[T any] interface {
	comparable
	Add(T) T
	Mul(T) T
	Inverse() T
}

// StageOpening is one stage's sampled row opening: the rows of that
// stage's RS-encoded matrix at the queried indices, plus the Merkle
// batch proof authenticating them against the stage's committed root.
type StageOpening[T FieldElem[T]] struct {
	OpenedRows [][]T
	Proof      merkle.BatchProof
}

// FinalOpening is the terminal stage's opening together with the fully
// folded residual polynomial yr that the verifier recomputes and
// compares against.
type FinalOpening[T FieldElem[T]] struct {
	Yr         []T
	OpenedRows [][]T
	Proof      merkle.BatchProof
}

// Proof is the recursion driver's FinalizedProof: one root and opening
// per stage, the terminal opening, and every sumcheck round's triple in
// stage order.
type Proof[T FieldElem[T]] struct {
	Commitments  []merkle.Root
	Openings     []StageOpening[T] // len == len(Commitments)-1; the last stage's opening lives in Final
	Final        FinalOpening[T]
	SumcheckLog  []sumcheck.Triple[T]
}

// NumSumcheckTriples returns how many round triples this proof carries.
func (p *Proof[T]) NumSumcheckTriples() int { return len(p.SumcheckLog) }
