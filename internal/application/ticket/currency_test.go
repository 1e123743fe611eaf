package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1.000"},
		{25000, "25.000"},
		{60000, "60.000"},
		{1234567, "1.234.567"},
		{-15000, "-15.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupThousands(tt.amount), "amount %d", tt.amount)
	}
}

func TestFormatGs(t *testing.T) {
	assert.Equal(t, "Gs. 60.000", FormatGs(60000))
	assert.Equal(t, "Gs. 0", FormatGs(0))
}
