package binfield

// Elem128 is an element of GF(2^128), represented as the top/bottom 64-bit
// halves of the tower's recursive pair decomposition (Hi is the
// coefficient of the level's generator, Lo the constant term). This is
// the other hot-path size named in the performance contract.
type Elem128 struct {
	Hi uint64
	Lo uint64
}

func Zero128() Elem128 { return Elem128{} }
func One128() Elem128  { return Elem128{Hi: 0, Lo: 1} }

// FromHiLo builds an element directly from its pair representation.
func FromHiLo(hi, lo uint64) Elem128 { return Elem128{Hi: hi, Lo: lo} }

func (e Elem128) Add(o Elem128) Elem128 {
	return Elem128{Hi: e.Hi ^ o.Hi, Lo: e.Lo ^ o.Lo}
}

// Mul applies the same quadratic-extension formula as mulBits, with the
// width-64 sub-field multiplication supplied by Elem64.
func (e Elem128) Mul(o Elem128) Elem128 {
	a0, a1 := e.Lo, e.Hi
	b0, b1 := o.Lo, o.Hi

	z0 := mulBits(a0, b0, 64)
	z2 := mulBits(a1, b1, 64)
	z1 := mulBits(a0^a1, b0^b1, 64) ^ z0 ^ z2

	beta := towerBeta(64)
	hi := z1 ^ mulBits(z2, beta, 64)
	lo := z0 ^ z2
	return Elem128{Hi: hi, Lo: lo}
}

func (e Elem128) Square() Elem128 { return e.Mul(e) }

func (e Elem128) IsZero() bool { return e.Hi == 0 && e.Lo == 0 }

// Inverse returns e^(2^128-2) via left-to-right square-and-multiply. The
// result is unspecified when e is zero.
func (e Elem128) Inverse() Elem128 {
	result := One128()
	for i := 127; i >= 0; i-- {
		result = result.Square()
		if i != 0 {
			result = result.Mul(e)
		}
	}
	return result
}

// Pow raises e to the n-th power.
func (e Elem128) Pow(n uint64) Elem128 {
	result := One128()
	base := e
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		n >>= 1
	}
	return result
}

// Equal reports whether e and o have identical pair representations.
func (e Elem128) Equal(o Elem128) bool { return e.Hi == o.Hi && e.Lo == o.Lo }
