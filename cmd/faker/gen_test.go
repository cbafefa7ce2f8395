package main

import (
	"math/big"
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "String", value: "raw$chars", want: "raw$chars"},
		{name: "Number", value: float64(42), want: "42"},
		{name: "Fraction", value: 2.5, want: "2.5"},
		{name: "Boolean", value: true, want: "true"},
		{name: "BigInt", value: big.NewInt(123456789), want: "123456789"},
		{
			name:  "Date",
			value: time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC),
			want:  "2024-05-20T08:00:00.000Z",
		},
		{name: "Array", value: []any{float64(1), "a"}, want: `[1,"a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
