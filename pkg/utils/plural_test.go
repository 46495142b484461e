package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoursUnit(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "часов"},
		{1, "час"},
		{2, "часа"},
		{3, "часа"},
		{4, "часа"},
		{5, "часов"},
		{6, "часов"},
		{11, "часов"},
		{12, "часов"},
		{14, "часов"},
		{21, "час"},
		{22, "часа"},
		{111, "часов"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HoursUnit(tt.n), "n=%d", tt.n)
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3))
	assert.Equal(t, 50.0, RoundWithTwoDecimalPlace(50))
}
