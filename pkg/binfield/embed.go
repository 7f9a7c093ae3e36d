package binfield

// Subfield embeddings. Because the tower construction represents a
// width-2w element as a (hi, lo) pair of width-w elements with hi=0
// denoting "no contribution from the upper level", embedding a smaller
// field into a larger one is exactly zero-extension of the packed
// integer — and, as verified against the recursive multiplication
// formula, this zero-extension is a ring homomorphism, not merely an
// additive one.

func (e Elem8) ToElem16() Elem16   { return Elem16(e) }
func (e Elem8) ToElem32() Elem32   { return Elem32(e) }
func (e Elem8) ToElem64() Elem64   { return Elem64(e) }
func (e Elem8) ToElem128() Elem128 { return Elem128{Lo: uint64(e)} }

func (e Elem16) ToElem32() Elem32   { return Elem32(e) }
func (e Elem16) ToElem64() Elem64   { return Elem64(e) }
func (e Elem16) ToElem128() Elem128 { return Elem128{Lo: uint64(e)} }

func (e Elem32) ToElem64() Elem64   { return Elem64(e) }
func (e Elem32) ToElem128() Elem128 { return Elem128{Lo: uint64(e)} }

func (e Elem64) ToElem128() Elem128 { return Elem128{Lo: uint64(e)} }
