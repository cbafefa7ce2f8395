package source

import (
	"bytes"
	"io"
	"testing"
)

func TestReaderFillsBuffer(t *testing.T) {
	// Odd lengths matter: ULID entropy reads 10 bytes at a time.
	for _, n := range []int{0, 1, 7, 10, 16, 33} {
		p := make([]byte, n)
		got, err := NewReader(NewPCG(5)).Read(p)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Errorf("Expected %d bytes read, got %d", n, got)
		}
	}
}

func TestReaderDeterminism(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	if _, err := io.ReadFull(NewReader(NewPCG(42)), a); err != nil {
		t.Fatal(err)
	}
	if _, err := io.ReadFull(NewReader(NewPCG(42)), b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Expected identical bytes for same-seed readers")
	}
}

func TestReaderAdvancesSource(t *testing.T) {
	src := NewPCG(11)
	r := NewReader(src)
	a := make([]byte, 8)
	b := make([]byte, 8)
	if _, err := r.Read(a); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(b); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("Expected consecutive reads to differ")
	}
}
