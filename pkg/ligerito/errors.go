package ligerito

import "errors"

// These mirror the error kinds named in the recursion driver's contract:
// ShapeMismatch surfaces from Prove, ConfigMismatch from both Prove and
// Verify, UnsupportedLogSize from Autosize, the rest from Verify.
var (
	ErrShapeMismatch        = errors.New("ligerito: poly length does not match config")
	ErrConfigMismatch       = errors.New("ligerito: proof shape inconsistent with config")
	ErrUnsupportedLogSize   = errors.New("ligerito: log_size out of supported range [20,30]")
	ErrMerkleInvalid        = errors.New("ligerito: merkle batch proof malformed")
	ErrMerkleRootMismatch   = errors.New("ligerito: reconstructed merkle root does not match absorbed root")
	ErrSumcheckInconsistent = errors.New("ligerito: sumcheck round check s1 != running sum")
	ErrFinalOpeningMismatch = errors.New("ligerito: final folded polynomial does not match recomputed value")
	ErrRSInconsistent       = errors.New("ligerito: opened row is not a valid Reed-Solomon codeword")
)
