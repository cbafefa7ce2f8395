package faker_test

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Evavic44/faker"
	"github.com/Evavic44/faker/clock"
)

func TestULIDDeterminism(t *testing.T) {
	at := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)

	a, err := faker.NewSeeded(30).ULID(at)
	if err != nil {
		t.Fatal(err)
	}
	b, err := faker.NewSeeded(30).ULID(at)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Expected identical ULID for same seed and instant, got %q and %q", a, b)
	}
}

func TestULIDTimestamp(t *testing.T) {
	at := time.Date(2023, 11, 5, 17, 45, 30, 0, time.UTC)

	got, err := faker.NewSeeded(31).ULID(at)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ulid.Parse(got)
	if err != nil {
		t.Fatalf("Expected parseable ULID, got %q: %v", got, err)
	}
	if parsed.Time() != ulid.Timestamp(at) {
		t.Errorf("Expected timestamp %d, got %d", ulid.Timestamp(at), parsed.Time())
	}
}

func TestULIDZeroTimeUsesClock(t *testing.T) {
	at := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	g := faker.New(
		faker.WithSource(scripted()),
		faker.WithClock(clock.NewFixed(at)),
	)

	got, err := g.ULID(time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ulid.Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Time() != ulid.Timestamp(at) {
		t.Errorf("Expected clock timestamp %d, got %d", ulid.Timestamp(at), parsed.Time())
	}
}

func TestULIDEntropyAdvancesStream(t *testing.T) {
	at := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	g := faker.NewSeeded(32)

	a, err := g.ULID(at)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.ULID(at)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("Expected distinct entropy on consecutive calls, both were %q", a)
	}
}

func TestULIDFarFuture(t *testing.T) {
	// Beyond the 48-bit millisecond budget the timestamp cannot encode.
	g := faker.NewSeeded(33)
	if _, err := g.ULID(time.Date(12000, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("Expected an error for an unencodable timestamp")
	}
}
