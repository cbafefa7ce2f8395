package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/Evavic44/faker"
	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/source"
)

var genFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "type, t",
		Usage: "value type: number, float, date, string, numeric, uuid, ulid, hex, boolean, array, json, bigint",
		Value: "number",
	},
	cli.IntFlag{
		Name:  "count, n",
		Usage: "how many values to generate",
		Value: 1,
	},
	cli.Uint64Flag{
		Name:  "seed, s",
		Usage: "draw seed, derived from the clock when omitted",
	},
	cli.Float64Flag{
		Name:  "min",
		Usage: "inclusive lower bound; epoch milliseconds for dates",
	},
	cli.Float64Flag{
		Name:  "max",
		Usage: "inclusive upper bound; epoch milliseconds for dates",
	},
	cli.Float64Flag{
		Name:  "precision, p",
		Usage: "step between representable numbers",
	},
	cli.IntFlag{
		Name:  "length, l",
		Usage: "output length for string, numeric, hex and array",
	},
	cli.StringFlag{
		Name:  "casing",
		Usage: "hex casing: lower, upper or mixed",
		Value: string(faker.CasingMixed),
	},
	cli.StringFlag{
		Name:  "prefix",
		Usage: "hex prefix",
		Value: "0x",
	},
	cli.BoolFlag{
		Name:  "leading-zeros",
		Usage: "allow a leading zero in numeric output",
	},
}

func generate(c *cli.Context) error {
	seed := c.Uint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		fmt.Fprintln(os.Stderr, "seed:", seed)
	}

	src, err := source.New(cfg.Server.Algorithm, seed)
	if err != nil {
		return err
	}
	gen := faker.New(faker.WithSource(src))

	count := c.Int("count")
	if count < 1 {
		count = 1
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for i := 0; i < count; i++ {
		value, err := buildValue(gen, c)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatValue(value))
	}
	return nil
}

// buildValue draws one value of the requested type with the set flags
// applied; unset flags leave the library defaults in place.
func buildValue(gen *faker.Generator, c *cli.Context) (any, error) {
	switch valueType := c.String("type"); valueType {
	case "number":
		return gen.Number(numberOptions(c)...)
	case "float":
		return gen.Float(numberOptions(c)...)
	case "date":
		var opts []faker.DateOption
		if c.IsSet("min") {
			opts = append(opts, faker.WithFrom(time.UnixMilli(int64(c.Float64("min"))).UTC()))
		}
		if c.IsSet("max") {
			opts = append(opts, faker.WithUntil(time.UnixMilli(int64(c.Float64("max"))).UTC()))
		}
		return gen.Date(opts...)
	case "string":
		return gen.StringN(lengthOr(c, faker.DefaultStringLength)), nil
	case "numeric":
		return gen.Numeric(lengthOr(c, faker.DefaultStringLength), c.Bool("leading-zeros")), nil
	case "uuid":
		return gen.UUID(), nil
	case "ulid":
		return gen.ULID(time.Time{})
	case "hex":
		opts := []faker.HexOption{
			faker.WithCasing(faker.Casing(c.String("casing"))),
			faker.WithPrefix(c.String("prefix")),
		}
		if c.IsSet("length") {
			opts = append(opts, faker.WithLength(c.Int("length")))
		}
		return gen.Hexadecimal(opts...)
	case "boolean":
		return gen.Boolean(), nil
	case "array":
		return gen.ArrayN(lengthOr(c, faker.DefaultArrayLength)), nil
	case "json":
		return gen.JSON(), nil
	case "bigint":
		var opts []faker.BigIntOption
		if c.IsSet("min") {
			opts = append(opts, faker.WithBigIntMin(big.NewInt(int64(c.Float64("min")))))
		}
		if c.IsSet("max") {
			opts = append(opts, faker.WithBigIntMax(big.NewInt(int64(c.Float64("max")))))
		}
		return gen.BigInt(opts...)
	default:
		return nil, errors.Errorf("gen: unknown value type %q", valueType)
	}
}

func numberOptions(c *cli.Context) []faker.NumberOption {
	var opts []faker.NumberOption
	if c.IsSet("min") {
		opts = append(opts, faker.WithMin(c.Float64("min")))
	}
	if c.IsSet("max") {
		opts = append(opts, faker.WithMax(c.Float64("max")))
	}
	if c.IsSet("precision") {
		opts = append(opts, faker.WithPrecision(c.Float64("precision")))
	}
	return opts
}

func lengthOr(c *cli.Context, fallback int) int {
	if c.IsSet("length") {
		return c.Int("length")
	}
	return fallback
}

// formatValue renders one value for stdout: strings stay raw, dates use
// RFC 3339, everything else goes through JSON.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02T15:04:05.000Z07:00")
	case *big.Int:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
