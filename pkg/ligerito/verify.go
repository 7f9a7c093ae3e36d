package ligerito

import (
	"github.com/rotkonetworks/zeratul-sub002/pkg/merkle"
	"github.com/rotkonetworks/zeratul-sub002/pkg/reedsolomon"
	"github.com/rotkonetworks/zeratul-sub002/pkg/sumcheck"
	"github.com/rotkonetworks/zeratul-sub002/pkg/transcript"
)

// Verify mirrors Prove without ever touching the witness polynomial:
// every challenge is re-derived by replaying the same absorbs in the
// same order, every opened row is checked against its stage's
// previously absorbed root, every sumcheck round is checked for
// consistency, and the terminal stage's claimed yr is compared against
// an independent refolding of the same public data.
func Verify[T FieldElem[T]](cfg Config, proof *Proof[T], codec Codec[T]) (bool, error) {
	return verifyWithLabel(cfg, proof, codec, transcriptLabel)
}

func verifyWithLabel[T FieldElem[T]](cfg Config, proof *Proof[T], codec Codec[T], label string) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	if len(proof.Commitments) != cfg.RecursiveSteps() {
		return false, ErrConfigMismatch
	}
	if proof.NumSumcheckTriples() != cfg.TotalSumcheckRounds() {
		return false, ErrConfigMismatch
	}
	if len(proof.Openings) != len(cfg.Stages)-1 {
		return false, ErrConfigMismatch
	}

	tr := transcript.NewSha256Transcript(label)
	one := codec.FromInt(1)

	// Replay the initial partial evaluation's squeezes in the exact
	// order Prove performed them. Verify holds no witness polynomial to
	// fold, but it must still consume the same transcript state and
	// recover the same partialEvalChallenges vector, since that vector
	// feeds every stage's induce call below.
	partialEvalChallenges := make([]T, cfg.InitialK)
	for i := 0; i < cfg.InitialK; i++ {
		partialEvalChallenges[i] = codec.Squeeze(tr)
	}

	triplesSeen := 0
	var carry T
	haveCarry := false

	for i, stage := range cfg.Stages {
		root := proof.Commitments[i]
		tr.AbsorbRoot(root)

		var openedRows [][]T
		var batchProof merkle.BatchProof
		last := i == len(cfg.Stages)-1
		if last {
			openedRows = proof.Final.OpenedRows
			batchProof = proof.Final.Proof
		} else {
			openedRows = proof.Openings[i].OpenedRows
			batchProof = proof.Openings[i].Proof
		}

		queries := tr.SqueezeDistinctQueries(stage.Rows, cfg.QueryCount)
		if !intSlicesEqual(queries, batchProof.Indices) {
			return false, ErrMerkleInvalid
		}

		leafBytes := rowsToBytes(openedRows, codec.ToBytes)
		if err := merkle.VerifyBatch(root, batchProof, leafBytes); err != nil {
			if err == merkle.ErrRootMismatch {
				return false, ErrMerkleRootMismatch
			}
			return false, ErrMerkleInvalid
		}
		tr.AbsorbElements(leafBytes)

		// Reed-Solomon consistency: Merkle authentication only proves
		// the prover committed to these exact rows, not that they are
		// codewords of the stage's RS encoder. Re-encode each row's
		// systematic prefix and compare against the full opened row;
		// a prover who committed an arbitrary non-codeword matrix is
		// rejected here rather than passing on self-consistency alone.
		enc, err := reedsolomon.NewEncoder[T](stage.Cols, stage.Rho, codec.FromInt)
		if err != nil {
			return false, err
		}
		for _, row := range openedRows {
			if len(row) != enc.CodewordLen() {
				return false, ErrRSInconsistent
			}
			recomputed, err := enc.Encode(row[:stage.Cols])
			if err != nil {
				return false, ErrRSInconsistent
			}
			for c := range recomputed {
				if recomputed[c] != row[c] {
					return false, ErrRSInconsistent
				}
			}
		}

		alpha := codec.Squeeze(tr)
		runningPoly, stageSum := induce(openedRows, queries, partialEvalChallenges, one, alpha)

		// Mirror of Prove's glue step: a non-initial stage's claim must
		// be bound to the running claim carried down from the previous
		// stage's terminal sumcheck sum, via the same beta both sides
		// derive from the transcript at this exact point.
		var runningSum T
		if haveCarry {
			beta := codec.Squeeze(tr)
			runningSum = sumcheck.GlueSums(carry, stageSum, beta)
		} else {
			runningSum = stageSum
		}
		tr.AbsorbElement(codec.ToBytes(runningSum))

		for r := 0; r < stage.K; r++ {
			triple := proof.SumcheckLog[triplesSeen]
			triplesSeen++
			if triple.S1 != runningSum {
				return false, ErrSumcheckInconsistent
			}
			tr.AbsorbElements(tripleBytes(triple.S0, triple.S1, triple.S2, codec.ToBytes))
			challenge := codec.Squeeze(tr)
			runningSum = sumcheck.EvaluateLinear(triple, challenge)
			runningPoly = sumcheck.Fold(runningPoly, challenge)
		}

		if last {
			tr.AbsorbElements(rowsToBytes([][]T{runningPoly}, codec.ToBytes))
			if len(runningPoly) != len(proof.Final.Yr) {
				return false, ErrFinalOpeningMismatch
			}
			for idx := range runningPoly {
				if runningPoly[idx] != proof.Final.Yr[idx] {
					return false, ErrFinalOpeningMismatch
				}
			}
		} else {
			carry = runningSum
			haveCarry = true
		}
	}

	return true, nil
}
