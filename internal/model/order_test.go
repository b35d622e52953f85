package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusToPay, StatusToShip, true},
		{StatusToPay, StatusCancelled, true},
		{StatusToShip, StatusShipping, true},
		{StatusToShip, StatusCancelled, true},
		{StatusShipping, StatusCompleted, true},
		{StatusShipping, StatusCancelled, true},

		{StatusToPay, StatusShipping, false},
		{StatusToShip, StatusCompleted, false},
		{StatusCompleted, StatusShipping, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusToShip, false},
		{StatusShipping, StatusToShip, false},
		{"unknown", StatusToShip, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusToPay, StatusToShip, StatusShipping, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("delivered"))
}
