package binfield

// Elem32 is an element of GF(2^32). This is one of the two hot-path sizes
// named in the performance contract (the other is Elem128).
type Elem32 uint32

func Zero32() Elem32 { return 0 }
func One32() Elem32  { return 1 }

func FromUint32(v uint32) Elem32 { return Elem32(v) }
func (e Elem32) Uint32() uint32  { return uint32(e) }

func (e Elem32) Add(o Elem32) Elem32 { return e ^ o }

func (e Elem32) Mul(o Elem32) Elem32 {
	return Elem32(mulBits(uint64(e), uint64(o), 32))
}

func (e Elem32) Square() Elem32 { return e.Mul(e) }

func (e Elem32) Inverse() Elem32 {
	return Elem32(invBits(uint64(e), 32))
}

func (e Elem32) IsZero() bool { return e == 0 }

func (e Elem32) Pow(n uint64) Elem32 {
	result := One32()
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
