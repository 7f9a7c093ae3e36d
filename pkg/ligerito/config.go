package ligerito

// DefaultQueryCount is the security parameter S: the number of Merkle-
// opened rows sampled per stage. 148 rows at an RS relative distance
// typical of a rate-1/2 code pushes Ligero's per-stage soundness error
// below 2^-128; it is fixed across stages and the autosizer does not
// tune it.
const DefaultQueryCount = 148

// StageConfig is one recursive stage's Ligero shape: a rows x cols
// matrix, RS-expanded by rho, followed by k sumcheck-fold rounds before
// the result is handed to the next stage (or, on the last stage,
// finishes as the terminal opening).
type StageConfig struct {
	Rows, Cols, Rho, K int
}

// EncodedLen is the width of one committed row after RS expansion.
func (s StageConfig) EncodedLen() int { return s.Cols * s.Rho }

// FoldedLen is the length of the polynomial handed to the next stage:
// the encoded row width, folded down by K sumcheck rounds.
func (s StageConfig) FoldedLen() int { return s.EncodedLen() >> s.K }

// Config is the full set of parameters prover and verifier must agree
// on. Stages[0] plays the role the spec calls the "initial" stage;
// Stages[1:] are the recursive stages. recursive_steps (S) is
// len(Stages).
//
// InitialK is k_init: the number of base-field challenges squeezed and
// folded into the witness polynomial before Stages[0] ever commits to
// anything (spec §4.7 step 2, the initial partial evaluation). Stage
// 0's matrix covers the already-reduced length 2^(LogSize-InitialK),
// not the raw 2^LogSize; see Validate.
type Config struct {
	LogSize    int
	InitialK   int
	Stages     []StageConfig
	QueryCount int
}

// RecursiveSteps returns S, the total stage count.
func (c Config) RecursiveSteps() int { return len(c.Stages) }

// TotalSumcheckRounds returns Sigma k_i across every stage: the number
// of sumcheck triples a valid proof for this config must carry.
func (c Config) TotalSumcheckRounds() int {
	total := 0
	for _, s := range c.Stages {
		total += s.K
	}
	return total
}

// Validate checks the cross-stage shape invariants: stage 0's matrix
// covers the input after the InitialK partial-evaluation folds
// (2^(LogSize-InitialK) entries), and each subsequent stage's matrix exactly
// matches the prior stage's folded length.
func (c Config) Validate() error {
	if len(c.Stages) == 0 {
		return ErrConfigMismatch
	}
	if c.InitialK < 0 || c.InitialK > c.LogSize {
		return ErrConfigMismatch
	}
	if c.Stages[0].Rows*c.Stages[0].Cols != 1<<uint(c.LogSize-c.InitialK) {
		return ErrConfigMismatch
	}
	for i := 1; i < len(c.Stages); i++ {
		want := c.Stages[i-1].FoldedLen()
		if c.Stages[i].Rows*c.Stages[i].Cols != want {
			return ErrConfigMismatch
		}
	}
	return nil
}

// Autosize is a pure function from log_size to a Config: it picks,
// stage by stage, a near-square matrix shape for the current folded
// length, expands it by rho=2 (rho=4 on the terminal stage, trading a
// higher rate for a smaller matrix there), and folds by just enough
// sumcheck rounds to make solid geometric progress toward a terminal
// width of 2^6-2^8, exactly as the outer spec's autosizer narrative
// describes, without holding any state across calls.
func Autosize(logSize int) (Config, error) {
	if logSize < 20 || logSize > 30 {
		return Config{}, ErrUnsupportedLogSize
	}

	// initialK folds a handful of base-field challenges into the raw
	// witness before any stage commits, per spec §4.7 step 2. 4 rounds
	// is a conservative fixed choice: it is small next to any supported
	// LogSize, so it barely perturbs the geometric stage-shrink below
	// while still exercising the partial-evaluation reduction on every
	// config this function produces.
	const initialK = 4

	var stages []StageConfig
	remainingLog := logSize - initialK

	for len(stages) < 32 {
		colsLog := (remainingLog + 1) / 2
		rowsLog := remainingLog - colsLog

		// Rho=2 probe to decide whether this stage can reach the
		// terminal width band; the terminal stage itself re-probes at
		// rho=4 for a smaller matrix at a higher rate.
		probeEncodedLog := colsLog + 1
		if probeEncodedLog <= 8 {
			encodedLog := colsLog + 2 // rho=4
			k := encodedLog - 6
			if k < 0 {
				k = 0
			}
			stages = append(stages, StageConfig{
				Rows: 1 << uint(rowsLog),
				Cols: 1 << uint(colsLog),
				Rho:  4,
				K:    k,
			})
			return Config{LogSize: logSize, InitialK: initialK, Stages: stages, QueryCount: DefaultQueryCount}, nil
		}

		k := probeEncodedLog - (remainingLog+1)/2
		if k < 1 {
			k = 1
		}
		if k > probeEncodedLog {
			k = probeEncodedLog
		}
		stages = append(stages, StageConfig{
			Rows: 1 << uint(rowsLog),
			Cols: 1 << uint(colsLog),
			Rho:  2,
			K:    k,
		})
		remainingLog = probeEncodedLog - k
		if remainingLog <= 0 {
			return Config{}, ErrUnsupportedLogSize
		}
	}
	return Config{}, ErrUnsupportedLogSize
}
