package faker

import (
	"fmt"
	"strings"
)

const (
	// DefaultStringLength is the length of String output.
	DefaultStringLength = 10

	// MaxStringLength caps StringN; longer requests are clamped, not
	// rejected.
	MaxStringLength = 1 << 20
)

const (
	// Printable ASCII window for String, '!' through '}'.
	minStringChar = 33
	maxStringChar = 125

	uuidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

	// hexAlphabet lists both cases so mixed output costs the same single
	// draw per position as the normalized casings.
	hexAlphabet = "0123456789abcdefABCDEF"

	defaultHexLength = 1
	defaultHexPrefix = "0x"
)

// Casing selects letter casing for hexadecimal output.
type Casing string

const (
	CasingLower Casing = "lower"
	CasingUpper Casing = "upper"
	CasingMixed Casing = "mixed"
)

// CasingError reports an unrecognized casing name.
type CasingError struct {
	Casing Casing
}

func (e *CasingError) Error() string {
	return fmt.Sprintf("faker: unknown casing %q", string(e.Casing))
}

// String generates a printable string of the default length, one draw per
// character.
func (g *Generator) String() string {
	return g.StringN(DefaultStringLength)
}

// StringN generates a printable string of length n, one draw per character.
// Args:
//   - n: Requested length
//
// Returns:
//   - string: Characters drawn from the '!'..'}' ASCII window
//
// Notes:
//   - Lengths above 2^20 are clamped to 2^20
//   - Non-positive lengths yield the empty string
func (g *Generator) StringN(n int) string {
	if n > MaxStringLength {
		n = MaxStringLength
	}
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = byte(g.draw(maxStringChar, minStringChar))
	}
	return string(b)
}

// Numeric generates a string of n decimal digits, one draw per digit.
// Args:
//   - n: Requested length
//   - allowLeadingZeros: Whether the first digit may be zero
//
// Returns:
//   - string: Digits 0-9, first digit 1-9 when leading zeros are disallowed
//
// Notes:
//   - Non-positive lengths yield the empty string
func (g *Generator) Numeric(n int, allowLeadingZeros bool) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		low := int64(0)
		if i == 0 && !allowLeadingZeros {
			low = 1
		}
		b[i] = byte('0' + g.draw(9, low))
	}
	return string(b)
}

// UUID generates a version 4 UUID string. Each placeholder position costs
// one draw; the version digit and separators come from the template.
func (g *Generator) UUID() string {
	b := []byte(uuidTemplate)
	for i, c := range b {
		switch c {
		case 'x':
			b[i] = lowerHexDigit(g.draw(15, 0))
		case 'y':
			// Variant position, one of 8, 9, a or b.
			b[i] = lowerHexDigit(g.draw(15, 0)&0x3 | 0x8)
		}
	}
	return string(b)
}

func lowerHexDigit(n int64) byte {
	return hexAlphabet[n]
}

// hexConfig is the resolved shape of one hexadecimal draw.
type hexConfig struct {
	length int
	prefix string
	casing Casing
}

// HexOption configures a hexadecimal draw.
type HexOption func(*hexConfig)

// WithLength sets the number of hex digits (default: 1).
func WithLength(length int) HexOption {
	return func(c *hexConfig) {
		c.length = length
	}
}

// WithPrefix sets the literal prefix (default: "0x"). An empty string
// removes it.
func WithPrefix(prefix string) HexOption {
	return func(c *hexConfig) {
		c.prefix = prefix
	}
}

// WithCasing sets the output casing (default: CasingMixed).
func WithCasing(casing Casing) HexOption {
	return func(c *hexConfig) {
		c.casing = casing
	}
}

// Hexadecimal generates a prefixed hex string, one draw per digit.
// Args:
//   - opts: Length, prefix and casing options
//
// Returns:
//   - string: Prefix followed by the drawn digits
//   - error: *CasingError for an unrecognized casing, before any draw
//
// Notes:
//   - Digits draw from the mixed-case alphabet in every casing; lower and
//     upper normalize the assembled body, keeping draw counts identical
//   - Non-positive lengths yield just the prefix
func (g *Generator) Hexadecimal(opts ...HexOption) (string, error) {
	cfg := hexConfig{
		length: defaultHexLength,
		prefix: defaultHexPrefix,
		casing: CasingMixed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.casing {
	case CasingLower, CasingUpper, CasingMixed:
	default:
		return "", &CasingError{Casing: cfg.casing}
	}

	b := make([]byte, 0, max(cfg.length, 0))
	for i := 0; i < cfg.length; i++ {
		b = append(b, hexAlphabet[g.draw(int64(len(hexAlphabet))-1, 0)])
	}

	body := string(b)
	switch cfg.casing {
	case CasingLower:
		body = strings.ToLower(body)
	case CasingUpper:
		body = strings.ToUpper(body)
	}
	return cfg.prefix + body, nil
}
