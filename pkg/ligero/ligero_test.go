package ligero

import (
	"encoding/binary"
	"testing"

	"github.com/rotkonetworks/zeratul-sub002/pkg/binfield"
	"github.com/rotkonetworks/zeratul-sub002/pkg/reedsolomon"
)

func fromInt32(i int) binfield.Elem32 { return binfield.FromUint32(uint32(i)) }

func toBytes32(e binfield.Elem32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], e.Uint32())
	return b[:]
}

func samplePoly(rows, cols int) []binfield.Elem32 {
	poly := make([]binfield.Elem32, rows*cols)
	for i := range poly {
		poly[i] = binfield.FromUint32(uint32(i*i + 7*i + 1))
	}
	return poly
}

func TestCommitShapeAndSystematicRows(t *testing.T) {
	rows, cols, rho := 4, 8, 2
	enc, err := reedsolomon.NewEncoder[binfield.Elem32](cols, rho, fromInt32)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	poly := samplePoly(rows, cols)

	w, err := Commit(poly, rows, cols, enc, toBytes32)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(w.Encoded) != rows {
		t.Fatalf("expected %d encoded rows, got %d", rows, len(w.Encoded))
	}
	for r, row := range w.Encoded {
		if len(row) != cols*rho {
			t.Fatalf("row %d: expected width %d, got %d", r, cols*rho, len(row))
		}
		for c := 0; c < cols; c++ {
			if row[c] != poly[r*cols+c] {
				t.Fatalf("row %d systematic mismatch at col %d", r, c)
			}
		}
	}
	if w.Root.IsEmpty() {
		t.Fatal("expected non-empty commitment root")
	}
}

func TestCommitRejectsShapeMismatch(t *testing.T) {
	enc, _ := reedsolomon.NewEncoder[binfield.Elem32](8, 2, fromInt32)
	poly := samplePoly(4, 8)
	if _, err := Commit(poly[:len(poly)-1], 4, 8, enc, toBytes32); err != ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch for bad poly length, got %v", err)
	}
	if _, err := Commit(poly[:4*7], 4, 7, enc, toBytes32); err != ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch for encoder/cols mismatch, got %v", err)
	}
}

func TestOpenVerifyRoundTrip(t *testing.T) {
	rows, cols, rho := 16, 8, 2
	enc, _ := reedsolomon.NewEncoder[binfield.Elem32](cols, rho, fromInt32)
	poly := samplePoly(rows, cols)

	w, err := Commit(poly, rows, cols, enc, toBytes32)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	opening := w.Open([]int{1, 1, 5, 3, 15, 0})
	if err := VerifyOpening(w.Root, opening, toBytes32); err != nil {
		t.Fatalf("VerifyOpening: %v", err)
	}
	if len(opening.Indices) != 5 {
		t.Fatalf("expected dedup to 5 distinct indices, got %d", len(opening.Indices))
	}
}

func TestOpenVerifyRejectsTamperedRow(t *testing.T) {
	rows, cols, rho := 16, 8, 2
	enc, _ := reedsolomon.NewEncoder[binfield.Elem32](cols, rho, fromInt32)
	poly := samplePoly(rows, cols)

	w, err := Commit(poly, rows, cols, enc, toBytes32)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	opening := w.Open([]int{2, 9})
	opening.OpenedRows[0][0] = opening.OpenedRows[0][0].Add(binfield.FromUint32(1))
	if err := VerifyOpening(w.Root, opening, toBytes32); err == nil {
		t.Fatal("expected VerifyOpening to reject a tampered opened row")
	}
}

func TestOpenVerifyRejectsWrongRoot(t *testing.T) {
	rows, cols, rho := 8, 4, 2
	enc, _ := reedsolomon.NewEncoder[binfield.Elem32](cols, rho, fromInt32)

	w1, _ := Commit(samplePoly(rows, cols), rows, cols, enc, toBytes32)
	poly2 := samplePoly(rows, cols)
	poly2[0] = poly2[0].Add(binfield.FromUint32(42))
	w2, _ := Commit(poly2, rows, cols, enc, toBytes32)

	opening := w1.Open([]int{0, 1, 2})
	if err := VerifyOpening(w2.Root, opening, toBytes32); err == nil {
		t.Fatal("expected VerifyOpening to reject mismatched root")
	}
}
