// Package binfield implements binary extension field arithmetic for the
// tower GF(2), GF(2^8), GF(2^16), GF(2^32), GF(2^64), GF(2^128), built by
// the standard Wiedemann/Fan-Paar quadratic tower construction: each level
// is a degree-2 extension of the previous one, X_i^2 = X_i*X_{i-1} + 1.
//
// Addition is XOR of the packed representation at every level. Embedding a
// smaller field into a larger one is the identity on the underlying
// integer (zero-extension): the tower's recursive pair representation
// guarantees this is a ring homomorphism, not just a group homomorphism,
// because multiplying two zero-extended elements never touches the upper
// half of either operand.
//
// Arithmetic here is total. There is no error return anywhere in this
// package; Inverse of zero is unspecified and never called by the rest of
// this module.
package binfield

import "github.com/klauspost/cpuid/v2"

var hardwareAccelerated bool

func init() {
	hardwareAccelerated = cpuid.CPU.Supports(cpuid.PCLMULQDQ) || cpuid.CPU.Supports(cpuid.SHA2)
}

// HardwareAccelerated reports whether the host CPU exposes a carryless-
// multiply-friendly instruction set. It is informational only: the
// portable tower-multiplication algorithm below is always the arithmetic
// actually executed, so this flag never changes a result, only whether a
// caller might expect the >10^8 muls/sec performance contract to hold.
func HardwareAccelerated() bool {
	return hardwareAccelerated
}
