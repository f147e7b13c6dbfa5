package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
	"github.com/stretchr/testify/assert"
)

func TestIsReserved(t *testing.T) {
	tests := []struct {
		id       string
		reserved bool
	}{
		{"alice", false},
		{"Draw", false},
		{"", true},
		{WinnerDraw, true},
		{BotID(tictactoe.Hard), true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.reserved, IsReserved(tt.id))
		})
	}
}
