package faker

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultArrayLength is the length of Array output.
const DefaultArrayLength = 10

// Boolean generates a boolean, consuming one draw.
func (g *Generator) Boolean() bool {
	return g.draw(1, 0) != 0
}

// Array generates a mixed slice of the default length.
func (g *Generator) Array() []any {
	return g.ArrayN(DefaultArrayLength)
}

// ArrayN generates a mixed slice of length n. Each element costs one
// boolean draw deciding its kind, then the draws of a default String or a
// default Number.
// Args:
//   - n: Requested length
//
// Returns:
//   - []any: string and float64 elements, empty for non-positive n
func (g *Generator) ArrayN(n int) []any {
	if n <= 0 {
		return []any{}
	}

	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.element())
	}
	return out
}

// element draws one mixed value, a default string when the kind draw is
// true and a default number otherwise.
func (g *Generator) element() any {
	if g.Boolean() {
		return g.String()
	}
	// Default bounds cannot fail.
	v, _ := g.Number()
	return v
}

// jsonPayload marshals its keys in declaration order, pinning the fixed
// property sequence of the synthesized object.
type jsonPayload struct {
	Foo  any `json:"foo"`
	Bar  any `json:"bar"`
	Bike any `json:"bike"`
	A    any `json:"a"`
	B    any `json:"b"`
	Name any `json:"name"`
	Prop any `json:"prop"`
}

// JSON generates a compact JSON object with the fixed property set foo,
// bar, bike, a, b, name and prop, in that order. Each property costs the
// same draws as one Array element.
func (g *Generator) JSON() string {
	p := jsonPayload{
		Foo:  g.element(),
		Bar:  g.element(),
		Bike: g.element(),
		A:    g.element(),
		B:    g.element(),
		Name: g.element(),
		Prop: g.element(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Keep <, > and & literal; string draws cover that ASCII window.
	enc.SetEscapeHTML(false)
	// Fixed payload shape cannot fail to encode.
	_ = enc.Encode(p)
	return strings.TrimSuffix(buf.String(), "\n")
}
