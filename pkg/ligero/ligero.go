// Package ligero implements the tensor-code commitment step: reshape a
// polynomial's evaluation vector into a matrix, Reed-Solomon-encode each
// row into a wider codeword, and Merkle-commit the encoded rows. Later,
// a sampled subset of rows is opened together with a compressed Merkle
// batch proof; checking that an opened row is consistent with whatever
// claim the sumcheck stage makes about it is the recursion driver's job,
// not this package's (a cross-component check by design).
package ligero

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/rotkonetworks/zeratul-sub002/pkg/merkle"
	"github.com/rotkonetworks/zeratul-sub002/pkg/reedsolomon"
)

// ErrShapeMismatch is returned when the polynomial length does not equal
// rows*cols.
var ErrShapeMismatch = errors.New("ligero: poly length does not equal rows*cols")

// FieldElem is the arithmetic capability a commitment needs.
type FieldElem[T any] interface {
	reedsolomon.FieldElem[T]
}

// Witness is the prover-side state produced by Commit: the polynomial's
// matrix view, its row-encoded form, and the Merkle tree over the
// encoded rows. The matrix is meant to live only as long as this stage's
// queries are being answered; discard it once opening is done and keep
// only the Root.
type Witness[T FieldElem[T]] struct {
	Rows, Cols int
	Encoded    [][]T // rows x (cols*rho), row-major
	Tree       *merkle.Tree
	Root       merkle.Root
}

// Opening is the result of sampling a query set against a Witness.
type Opening[T FieldElem[T]] struct {
	Indices    []int
	OpenedRows [][]T
	Proof      merkle.BatchProof
}

// Commit reshapes poly into a rows x cols matrix, Reed-Solomon-encodes
// every row in parallel to width cols*rho via enc (built for n=cols), and
// Merkle-commits the encoded rows.
func Commit[T FieldElem[T]](poly []T, rows, cols int, enc *reedsolomon.Encoder[T], toBytes func(T) []byte) (*Witness[T], error) {
	if len(poly) != rows*cols {
		return nil, ErrShapeMismatch
	}
	if enc.N() != cols {
		return nil, ErrShapeMismatch
	}

	encoded := make([][]T, rows)
	g := new(errgroup.Group)
	for r := 0; r < rows; r++ {
		r := r
		g.Go(func() error {
			row := poly[r*cols : (r+1)*cols]
			cw, err := enc.Encode(row)
			if err != nil {
				return err
			}
			encoded[r] = cw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	leaves := make([][]byte, rows)
	for r := range encoded {
		leaves[r] = rowBytes(encoded[r], toBytes)
	}
	tree := merkle.Build(leaves)

	return &Witness[T]{
		Rows:    rows,
		Cols:    cols,
		Encoded: encoded,
		Tree:    tree,
		Root:    tree.Root(),
	}, nil
}

// Open returns the encoded rows at the given indices together with the
// compressed Merkle batch proof authenticating them against w.Root.
func (w *Witness[T]) Open(indices []int) Opening[T] {
	proof := w.Tree.BatchOpen(indices)
	opened := make([][]T, len(proof.Indices))
	for i, idx := range proof.Indices {
		opened[i] = w.Encoded[idx]
	}
	return Opening[T]{Indices: proof.Indices, OpenedRows: opened, Proof: proof}
}

func rowBytes[T FieldElem[T]](row []T, toBytes func(T) []byte) []byte {
	var buf []byte
	for _, v := range row {
		buf = append(buf, toBytes(v)...)
	}
	return buf
}

// VerifyOpening checks that opening authenticates against root using
// the same row-byte encoding Commit used; it does not check any
// downstream sumcheck consistency (that is the recursion driver's job).
func VerifyOpening[T FieldElem[T]](root merkle.Root, opening Opening[T], toBytes func(T) []byte) error {
	leafBytes := make([][]byte, len(opening.OpenedRows))
	for i, row := range opening.OpenedRows {
		leafBytes[i] = rowBytes(row, toBytes)
	}
	return merkle.VerifyBatch(root, opening.Proof, leafBytes)
}
