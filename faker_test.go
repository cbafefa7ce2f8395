package faker_test

import (
	"testing"

	"github.com/Evavic44/faker"
	"github.com/Evavic44/faker/source"
)

// recordSource replays scripted draws and records the bounds of every call,
// so tests can pin draw counts and requested ranges.
type recordSource struct {
	draws []int64
	calls [][2]float64
	next  int
}

func (s *recordSource) Draw(upper, lower float64) int64 {
	s.calls = append(s.calls, [2]float64{upper, lower})
	if s.next >= len(s.draws) {
		return int64(lower)
	}
	v := s.draws[s.next]
	s.next++
	return v
}

func scripted(draws ...int64) *recordSource {
	return &recordSource{draws: draws}
}

func TestNewSeededDeterminism(t *testing.T) {
	run := func(seed uint64) []any {
		g := faker.NewSeeded(seed)
		n, err := g.Number()
		if err != nil {
			t.Fatal(err)
		}
		f, err := g.Float()
		if err != nil {
			t.Fatal(err)
		}
		d, err := g.Date()
		if err != nil {
			t.Fatal(err)
		}
		return []any{n, f, d, g.String(), g.UUID(), g.Boolean(), g.JSON()}
	}

	a := run(1337)
	b := run(1337)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Expected identical value at step %d, got %v and %v", i, a[i], b[i])
		}
	}
}

func TestSeedsProduceDistinctStreams(t *testing.T) {
	a := faker.NewSeeded(1).String()
	b := faker.NewSeeded(2).String()
	if a == b {
		t.Errorf("Expected different strings for different seeds, both were %q", a)
	}
}

func TestWithSourceBackends(t *testing.T) {
	algorithms := []string{source.AlgorithmPCG, source.AlgorithmXorshift}

	for _, algorithm := range algorithms {
		t.Run(algorithm, func(t *testing.T) {
			newGen := func() *faker.Generator {
				src, err := source.New(algorithm, 99)
				if err != nil {
					t.Fatal(err)
				}
				return faker.New(faker.WithSource(src))
			}

			if a, b := newGen().UUID(), newGen().UUID(); a != b {
				t.Errorf("Expected reproducible UUID, got %q and %q", a, b)
			}
		})
	}
}

func TestOperationsShareOneStream(t *testing.T) {
	// Consuming a draw between calls must shift later output, proving all
	// operations pull from the same sequential stream.
	g1 := faker.NewSeeded(7)
	g2 := faker.NewSeeded(7)

	g1.Boolean()
	shifted := g1.String()
	straight := g2.String()

	if shifted == straight {
		t.Error("Expected an interleaved draw to shift subsequent output")
	}
}
