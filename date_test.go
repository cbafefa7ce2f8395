package faker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Evavic44/faker"
)

var (
	dateWindowMin = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	dateWindowMax = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestDateDefaults(t *testing.T) {
	g := faker.NewSeeded(3)
	for i := 0; i < 100; i++ {
		got, err := g.Date()
		if err != nil {
			t.Fatal(err)
		}
		if got.Before(dateWindowMin) || got.After(dateWindowMax) {
			t.Fatalf("Expected date in default window, got %v", got)
		}
		if got.Location() != time.UTC {
			t.Fatalf("Expected UTC, got %v", got.Location())
		}
		if ns := got.Nanosecond() % int(time.Millisecond); ns != 0 {
			t.Fatalf("Expected millisecond resolution, got %dns remainder", ns)
		}
	}
}

func TestDateWindow(t *testing.T) {
	from := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2020, 6, 2, 0, 0, 0, 0, time.UTC)

	g := faker.NewSeeded(4)
	for i := 0; i < 100; i++ {
		got, err := g.Date(faker.WithFrom(from), faker.WithUntil(until))
		if err != nil {
			t.Fatal(err)
		}
		if got.Before(from) || got.After(until) {
			t.Fatalf("Expected date in [%v, %v], got %v", from, until, got)
		}
	}
}

func TestDateDelegatesMillis(t *testing.T) {
	from := time.UnixMilli(1000).UTC()
	until := time.UnixMilli(2000).UTC()

	src := scripted(1500)
	g := faker.New(faker.WithSource(src))

	got, err := g.Date(faker.WithFrom(from), faker.WithUntil(until))
	if err != nil {
		t.Fatal(err)
	}
	if want := time.UnixMilli(1500).UTC(); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	want := [2]float64{2001, 1000}
	if len(src.calls) != 1 || src.calls[0] != want {
		t.Errorf("Expected one draw over %v, got %v", want, src.calls)
	}
}

func TestDateEqualBoundsSkipsDraw(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	src := scripted()
	g := faker.New(faker.WithSource(src))

	got, err := g.Date(faker.WithFrom(at), faker.WithUntil(at))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(at) {
		t.Errorf("Expected %v, got %v", at, got)
	}
	if len(src.calls) != 0 {
		t.Errorf("Expected no draws for equal bounds, got %d", len(src.calls))
	}
}

func TestDateInvertedWindow(t *testing.T) {
	g := faker.NewSeeded(5)

	_, err := g.Date(
		faker.WithFrom(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)),
		faker.WithUntil(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)),
	)
	var rangeErr *faker.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Expected *RangeError, got %v", err)
	}
}

func TestDateUnrepresentableBoundsFallBack(t *testing.T) {
	// Bounds beyond the representable offset are replaced by the defaults
	// instead of failing.
	farPast := time.Date(-300000, 1, 1, 0, 0, 0, 0, time.UTC)
	farFuture := time.Date(300000, 1, 1, 0, 0, 0, 0, time.UTC)

	g := faker.NewSeeded(6)
	for i := 0; i < 100; i++ {
		got, err := g.Date(faker.WithFrom(farPast), faker.WithUntil(farFuture))
		if err != nil {
			t.Fatal(err)
		}
		if got.Before(dateWindowMin) || got.After(dateWindowMax) {
			t.Fatalf("Expected fallback to default window, got %v", got)
		}
	}
}
