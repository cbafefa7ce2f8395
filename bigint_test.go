package faker_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/Evavic44/faker"
)

func TestBigIntDefaults(t *testing.T) {
	g := faker.NewSeeded(20)
	max := big.NewInt(999999999999999)

	for i := 0; i < 200; i++ {
		got, err := g.BigInt()
		if err != nil {
			t.Fatal(err)
		}
		if got.Sign() < 0 || got.Cmp(max) > 0 {
			t.Fatalf("Expected value in [0, 10^15), got %v", got)
		}
	}
}

func TestBigIntRange(t *testing.T) {
	min := big.NewInt(100)
	max := big.NewInt(110)

	g := faker.NewSeeded(21)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		got, err := g.BigInt(faker.WithBigIntMin(min), faker.WithBigIntMax(max))
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(min) < 0 || got.Cmp(max) > 0 {
			t.Fatalf("Expected value in [100, 110], got %v", got)
		}
		seen[got.String()] = true
	}
	// Both endpoints are reachable over an 11-value range in 500 draws.
	if !seen["100"] || !seen["110"] {
		t.Errorf("Expected inclusive endpoints, saw %v", seen)
	}
}

func TestBigIntBeyondInt64(t *testing.T) {
	min, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	max := new(big.Int).Add(min, big.NewInt(1000))

	g := faker.NewSeeded(22)
	for i := 0; i < 50; i++ {
		got, err := g.BigInt(faker.WithBigIntMin(min), faker.WithBigIntMax(max))
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(min) < 0 || got.Cmp(max) > 0 {
			t.Fatalf("Expected value in window, got %v", got)
		}
	}
}

func TestBigIntEqualBoundsSkipsDraw(t *testing.T) {
	bound := big.NewInt(77)

	src := scripted()
	g := faker.New(faker.WithSource(src))

	got, err := g.BigInt(faker.WithBigIntMin(bound), faker.WithBigIntMax(bound))
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(bound) != 0 {
		t.Errorf("Expected 77, got %v", got)
	}
	if len(src.calls) != 0 {
		t.Errorf("Expected no draws for equal bounds, got %d", len(src.calls))
	}

	// The result is a copy, never the caller's value.
	got.Add(got, big.NewInt(1))
	if bound.Int64() != 77 {
		t.Errorf("Expected caller bound untouched, got %v", bound)
	}
}

func TestBigIntRangeError(t *testing.T) {
	g := faker.NewSeeded(23)

	_, err := g.BigInt(
		faker.WithBigIntMin(big.NewInt(10)),
		faker.WithBigIntMax(big.NewInt(5)),
	)
	var rangeErr *faker.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Expected *RangeError, got %v", err)
	}
	min, ok := rangeErr.Min.(*big.Int)
	if !ok || min.Int64() != 10 {
		t.Errorf("Expected min 10 in error, got %v", rangeErr.Min)
	}
}

func TestBigIntOneDrawPerDigit(t *testing.T) {
	// Distance 9999 spans four decimal digits, so exactly four draws.
	src := scripted(1, 2, 3, 4)
	g := faker.New(faker.WithSource(src))

	got, err := g.BigInt(faker.WithBigIntMax(big.NewInt(9999)))
	if err != nil {
		t.Fatal(err)
	}
	if len(src.calls) != 4 {
		t.Fatalf("Expected 4 draws, got %d", len(src.calls))
	}
	for _, call := range src.calls {
		if call != [2]float64{10, 0} {
			t.Fatalf("Expected digit draws over [10 0], got %v", call)
		}
	}
	// Digits 1234 modulo 10000, offset by min 0.
	if got.Int64() != 1234 {
		t.Errorf("Expected 1234, got %v", got)
	}
}

func TestBigIntDoesNotMutateBounds(t *testing.T) {
	min := big.NewInt(-50)
	max := big.NewInt(50)

	g := faker.NewSeeded(24)
	for i := 0; i < 100; i++ {
		got, err := g.BigInt(faker.WithBigIntMin(min), faker.WithBigIntMax(max))
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(min) < 0 || got.Cmp(max) > 0 {
			t.Fatalf("Expected value in [-50, 50], got %v", got)
		}
	}
	if min.Int64() != -50 || max.Int64() != 50 {
		t.Errorf("Expected bounds untouched, got %v and %v", min, max)
	}
}

func TestBigIntMax(t *testing.T) {
	g := faker.NewSeeded(25)

	got, err := g.BigIntMax(9)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sign() < 0 || got.Int64() > 9 {
		t.Errorf("Expected value in [0, 9], got %v", got)
	}
}
