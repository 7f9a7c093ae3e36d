package ligerito

import (
	"github.com/rotkonetworks/zeratul-sub002/pkg/ligero"
	"github.com/rotkonetworks/zeratul-sub002/pkg/reedsolomon"
	"github.com/rotkonetworks/zeratul-sub002/pkg/sumcheck"
	"github.com/rotkonetworks/zeratul-sub002/pkg/transcript"
)

// transcriptLabel seeds both Prove's and Verify's transcript. It is not
// exported and neither Config nor Codec carries a label, so Prove and
// Verify always use this tag. Mixing transcript domains between a prover
// and verifier is a configuration error that verification rejects
// (exercised in tests via proveWithLabel/verifyWithLabel below).
const transcriptLabel = "ligerito/v1"

// Prove runs the full recursion driver: commit, sample and open a query
// set, induce one combined consistency polynomial from the opened
// rows, fold it down by that stage's sumcheck rounds, and either hand
// the folded result to the next stage's commit or, on the last stage,
// report it as the terminal opening's yr.
func Prove[T FieldElem[T]](cfg Config, poly []T, codec Codec[T]) (*Proof[T], error) {
	return proveWithLabel(cfg, poly, codec, transcriptLabel)
}

func proveWithLabel[T FieldElem[T]](cfg Config, poly []T, codec Codec[T], label string) (*Proof[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(poly) != 1<<uint(cfg.LogSize) {
		return nil, ErrShapeMismatch
	}

	tr := transcript.NewSha256Transcript(label)
	proof := &Proof[T]{}
	one := codec.FromInt(1)

	// Initial partial evaluation (spec §4.7 step 2): squeeze k_init
	// base-field challenges and fold them into the raw witness before
	// Stage 0 ever commits to anything, binding every later opening to
	// this specific evaluation point instead of to an unreduced,
	// unbound polynomial. The resulting challenge vector is threaded
	// into induce below as partialEvalChallenges.
	current := poly
	partialEvalChallenges := make([]T, cfg.InitialK)
	for i := 0; i < cfg.InitialK; i++ {
		r := codec.Squeeze(tr)
		partialEvalChallenges[i] = r
		current = sumcheck.Fold(current, r)
	}

	var carry T
	haveCarry := false
	for i, stage := range cfg.Stages {
		enc, err := reedsolomon.NewEncoder[T](stage.Cols, stage.Rho, codec.FromInt)
		if err != nil {
			return nil, err
		}
		w, err := ligero.Commit(current, stage.Rows, stage.Cols, enc, codec.ToBytes)
		if err != nil {
			return nil, ErrShapeMismatch
		}
		proof.Commitments = append(proof.Commitments, w.Root)
		tr.AbsorbRoot(w.Root)

		queries := tr.SqueezeDistinctQueries(stage.Rows, cfg.QueryCount)
		opening := w.Open(queries)
		tr.AbsorbElements(rowsToBytes(opening.OpenedRows, codec.ToBytes))

		alpha := codec.Squeeze(tr)
		runningPoly, stageSum := induce(opening.OpenedRows, queries, partialEvalChallenges, one, alpha)

		// Glue this stage's freshly induced claim onto the running claim
		// carried down from the previous stage's terminal sumcheck sum,
		// so a stage's opening is bound to the stage before it rather than
		// re-certifying itself in isolation. The first stage has nothing
		// to glue onto and starts from its own induced sum directly.
		var runningSum T
		if haveCarry {
			beta := codec.Squeeze(tr)
			runningSum = sumcheck.GlueSums(carry, stageSum, beta)
		} else {
			runningSum = stageSum
		}
		tr.AbsorbElement(codec.ToBytes(runningSum))

		for r := 0; r < stage.K; r++ {
			triple := sumcheck.RoundCoefficients(runningPoly)
			proof.SumcheckLog = append(proof.SumcheckLog, triple)
			tr.AbsorbElements(tripleBytes(triple.S0, triple.S1, triple.S2, codec.ToBytes))
			challenge := codec.Squeeze(tr)
			runningSum = sumcheck.EvaluateLinear(triple, challenge)
			runningPoly = sumcheck.Fold(runningPoly, challenge)
		}

		if i == len(cfg.Stages)-1 {
			tr.AbsorbElements(rowsToBytes([][]T{runningPoly}, codec.ToBytes))
			proof.Final = FinalOpening[T]{
				Yr:         runningPoly,
				OpenedRows: opening.OpenedRows,
				Proof:      opening.Proof,
			}
		} else {
			proof.Openings = append(proof.Openings, StageOpening[T]{
				OpenedRows: opening.OpenedRows,
				Proof:      opening.Proof,
			})
			current = runningPoly
			carry = runningSum
			haveCarry = true
		}
	}

	return proof, nil
}
