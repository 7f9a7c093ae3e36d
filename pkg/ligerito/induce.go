package ligerito

// eq is the multilinear equality polynomial evaluated at the bits of q
// against a challenge vector: the standard tensor weight binding a row
// index to a point, char-2 style (bit 1 selects the challenge itself,
// bit 0 selects its complement one+challenge). Only the low len(r) bits
// of q are bound; a challenge vector shorter than log2(rows) leaves the
// remaining high-order bits of q unweighted, which is how one shared
// partialEvalChallenges vector can be reused across stages whose row
// counts differ (see DESIGN.md).
func eq[T FieldElem[T]](q int, r []T, one T) T {
	w := one
	for i, ri := range r {
		if (q>>uint(i))&1 == 1 {
			w = w.Mul(ri)
		} else {
			w = w.Mul(one.Add(ri))
		}
	}
	return w
}

// induce builds the one polynomial both prover and verifier agree a
// stage's opened rows must be consistent with: each opened row is
// weighted by w_q = eq(q, partialEvalChallenges), the tensor binding
// that row to the polynomial's actual (partially evaluated) evaluation
// point, batched across the |Q| opened rows via ascending powers of a
// freshly squeezed batching challenge alpha (spec §4.7 step 5).
// Summing the weighted combination gives the enforced running sum T0.
func induce[T FieldElem[T]](openedRows [][]T, queries []int, partialEvalChallenges []T, one, alpha T) ([]T, T) {
	width := len(openedRows[0])
	g := make([]T, width)

	power := one
	var zero T
	for i, row := range openedRows {
		w := eq(queries[i], partialEvalChallenges, one).Mul(power)
		for c := 0; c < width; c++ {
			g[c] = g[c].Add(w.Mul(row[c]))
		}
		power = power.Mul(alpha)
	}

	total := zero
	for _, v := range g {
		total = total.Add(v)
	}
	return g, total
}
