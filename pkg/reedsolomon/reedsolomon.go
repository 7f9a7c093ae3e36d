// Package reedsolomon implements the Reed-Solomon encoder used by the
// Ligero commitment: given n message values interpreted as the
// evaluations of a degree-<n polynomial over an evaluation domain, it
// extends them to n*rho evaluations over a larger domain of the same
// dimension-doubling family. Domains are literal consecutive field
// values {0,...,N-1}, which form a genuine F2-linear subspace of any
// tower field wide enough to hold N-1 (the standard basis 2^0,...
// spans exactly that set).
//
// Encoding is systematic: codeword[i] == message[i] for i < n. The
// extension evaluations are computed from precomputed barycentric
// weights over the message domain, shared across every row of a
// Ligero matrix that uses the same (n, rho) shape — this is the
// "twiddle table, computed once per (n, rho, field)" every caller
// should build exactly once and reuse, matching the precompute-then-
// reuse discipline a butterfly-network NTT would also follow.
package reedsolomon

import "errors"

// ErrInvalidConfig is returned when n or rho is not a positive value, or
// rho is not at least 1 (an expansion factor below 1 would not be an
// extension at all).
var ErrInvalidConfig = errors.New("reedsolomon: invalid n/rho configuration")

// ErrShapeMismatch is returned when Encode is called with a message of
// the wrong length.
var ErrShapeMismatch = errors.New("reedsolomon: message length does not match encoder n")

// FieldElem is the capability a type needs to be Reed-Solomon encoded:
// addition (doubling as subtraction in characteristic 2), multiplication,
// and multiplicative inversion for nonzero elements. binfield.ElemN and
// binfield.Elem128 all satisfy this.
type FieldElem[T any] interface {
	Add(T) T
	Mul(T) T
	Inverse() T
}

// Encoder holds the precomputed domain and barycentric weights for one
// (n, rho) shape over a field type T. Build once, Encode many rows.
type Encoder[T FieldElem[T]] struct {
	n       int
	rho     int
	domain  []T // length n*rho; domain[i] is the i-th evaluation point
	weights []T // length n; barycentric weight of domain[i], i<n
}

// NewEncoder precomputes the evaluation domain and barycentric weights.
// fromInt must map a small non-negative integer to the corresponding
// field element (a wrapper around binfield.FromUintN, or one that also
// applies ToElem128, for example).
func NewEncoder[T FieldElem[T]](n, rho int, fromInt func(int) T) (*Encoder[T], error) {
	if n <= 0 || rho <= 0 {
		return nil, ErrInvalidConfig
	}
	domain := make([]T, n*rho)
	for i := range domain {
		domain[i] = fromInt(i)
	}
	one := fromInt(1)
	weights := make([]T, n)
	for i := 0; i < n; i++ {
		w := one
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			diff := domain[i].Add(domain[k]) // x-y == x+y in characteristic 2
			w = w.Mul(diff)
		}
		weights[i] = w.Inverse()
	}
	return &Encoder[T]{n: n, rho: rho, domain: domain, weights: weights}, nil
}

// N returns the message length this encoder was built for.
func (e *Encoder[T]) N() int { return e.n }

// Rho returns the expansion factor.
func (e *Encoder[T]) Rho() int { return e.rho }

// CodewordLen returns n*rho.
func (e *Encoder[T]) CodewordLen() int { return e.n * e.rho }

// Domain returns the full n*rho evaluation domain (read-only; callers
// must not mutate the returned slice).
func (e *Encoder[T]) Domain() []T { return e.domain }

// Encode extends m (length n) to a codeword of length n*rho via
// barycentric Lagrange evaluation at the extension points; the first n
// codeword entries equal m exactly (systematic encoding).
func (e *Encoder[T]) Encode(m []T) ([]T, error) {
	if len(m) != e.n {
		return nil, ErrShapeMismatch
	}
	out := make([]T, e.n*e.rho)
	copy(out, m)

	var zero T
	for j := e.n; j < e.n*e.rho; j++ {
		x := e.domain[j]
		numer, denom := zero, zero
		for i := 0; i < e.n; i++ {
			diff := x.Add(e.domain[i])
			invDiff := diff.Inverse()
			term := e.weights[i].Mul(invDiff)
			numer = numer.Add(term.Mul(m[i]))
			denom = denom.Add(term)
		}
		out[j] = numer.Mul(denom.Inverse())
	}
	return out, nil
}
