package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already exact", 10.00, 10.00},
		{"truncates down", 3.14159, 3.14},
		{"half rounds up", 0.125, 0.13},
		{"near integer", 99.999, 100.00},
		{"small half", 0.005, 0.01},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	tests := []float64{0, 0.01, 12.34, 570.00, 99999.99}

	for _, amount := range tests {
		cents := ToCents(amount)
		assert.Equal(t, amount, FromCents(cents))
	}
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1234), ToCents(12.34))
	assert.Equal(t, int64(57000), ToCents(570.00))
	assert.Equal(t, int64(1), ToCents(0.01))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(0))
	assert.True(t, IsValidAmount(12.34))
	assert.False(t, IsValidAmount(-0.01))
	assert.False(t, IsValidAmount(math.NaN()))
	assert.False(t, IsValidAmount(math.Inf(1)))
	assert.False(t, IsValidAmount(math.Inf(-1)))
}
