package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "zero", in: 0, want: "R$ 0,00"},
		{name: "centavos", in: 0.5, want: "R$ 0,50"},
		{name: "hundreds", in: 470.6666666, want: "R$ 470,67"},
		{name: "thousands", in: 1882.6666666, want: "R$ 1.882,67"},
		{name: "millions", in: 1234567.891, want: "R$ 1.234.567,89"},
		{name: "exact thousand", in: 100000, want: "R$ 100.000,00"},
		{name: "half rounds up", in: 0.125, want: "R$ 0,13"},
		{name: "negative", in: -1500.2, want: "-R$ 1.500,20"},
		{name: "negative rounds to zero", in: -0.001, want: "R$ 0,00"},
		{name: "nan", in: math.NaN(), want: "R$ 0,00"},
		{name: "infinity", in: math.Inf(1), want: "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.in))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, "47.07", Round(1412.0/30).StringFixed(2))
}
