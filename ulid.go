package faker

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Evavic44/faker/source"
)

// ULID generates a ULID string with draw-derived entropy, so the random
// component is reproducible per seed. A zero at uses the generator's clock
// for the timestamp component.
// Args:
//   - at: Timestamp instant, zero for the current clock time
//
// Returns:
//   - string: Canonical 26-character ULID
//   - error: If at is outside the encodable ULID time range
func (g *Generator) ULID(at time.Time) (string, error) {
	if at.IsZero() {
		at = g.clk.Now()
	}

	id, err := ulid.New(ulid.Timestamp(at), source.NewReader(g.src))
	if err != nil {
		return "", fmt.Errorf("faker: ulid: %w", err)
	}
	return id.String(), nil
}
