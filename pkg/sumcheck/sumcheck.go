// Package sumcheck implements one round of the multilinear sumcheck
// protocol over a binary extension field, plus the polynomial-folding
// and two-polynomial-gluing operations the recursion driver composes
// rounds with. Every formula here is grounded directly on the original
// ligerito prover's round-coefficient, fold, and glue routines. A round
// polynomial is linear in the round variable (s0 + s1*x, see
// EvaluateLinear); each round still carries three field elements.
package sumcheck

// FieldElem is the arithmetic capability a round needs.
type FieldElem[T any] interface {
	Add(T) T
	Mul(T) T
}

// Triple is the three values (s0, s1, s2) of one round's message: s0 = sum of even-indexed evaluations, s1 = sum of (even+odd)
// pairs, s2 = sum of odd-indexed evaluations. The verifier only ever
// needs s0 and s1 to check consistency and to interpolate the linear
// term it actually evaluates at its challenge, but s2 accompanies s0/s1
// into the transcript because it is cheap to derive alongside them and
// a verifier computing its own induced claims may want it.
type Triple[T FieldElem[T]] struct {
	S0, S1, S2 T
}

// RoundCoefficients walks poly in pairs (poly[2i], poly[2i+1]) and
// accumulates the round triple. len(poly) must be even; the recursion
// driver is responsible for only ever calling this on an even-length
// polynomial (it halves on every fold).
func RoundCoefficients[T FieldElem[T]](poly []T) Triple[T] {
	var s0, s1, s2 T
	for i := 0; i+1 < len(poly); i += 2 {
		p0, p1 := poly[i], poly[i+1]
		s0 = s0.Add(p0)
		s1 = s1.Add(p0).Add(p1)
		s2 = s2.Add(p1)
	}
	return Triple[T]{S0: s0, S1: s1, S2: s2}
}

// Fold collapses poly (length 2n) to length n using challenge r: each
// output entry is p0 + r*(p1+p0), i.e. the linear interpolation between
// an even/odd pair evaluated at r.
func Fold[T FieldElem[T]](poly []T, r T) []T {
	out := make([]T, len(poly)/2)
	for i := range out {
		p0, p1 := poly[2*i], poly[2*i+1]
		out[i] = p0.Add(r.Mul(p1.Add(p0)))
	}
	return out
}

// EvaluateLinear evaluates the round message's linear part (s0 + s1*x)
// at x. The verifier's consistency check is T == EvaluateLinear(triple,
// 0).Add(EvaluateLinear(triple, 1)) == s0 + (s0+s1) == s1, since s0+s1 at
// x=1 reduces to s1 by construction; the two-point check is kept
// explicit here rather than collapsed, so a caller can also use this to
// recompute the round message at the actual folding challenge.
func EvaluateLinear[T FieldElem[T]](t Triple[T], x T) T {
	return t.S0.Add(t.S1.Mul(x))
}

// Glue combines two equal-length polynomials into one via f[i] +
// beta*g[i], the batching step that lets the driver fold two stages'
// sumcheck claims into a single running polynomial.
func Glue[T FieldElem[T]](f, g []T, beta T) []T {
	out := make([]T, len(f))
	for i := range f {
		out[i] = f[i].Add(beta.Mul(g[i]))
	}
	return out
}

// GlueSums combines two claimed sums the same way Glue combines the
// underlying polynomials: sumF + beta*sumG.
func GlueSums[T FieldElem[T]](sumF, sumG, beta T) T {
	return sumF.Add(beta.Mul(sumG))
}
