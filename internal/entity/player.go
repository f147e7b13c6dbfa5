package entity

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

// BotPrefix - player ids starting with it belong to the AI opponent.
const BotPrefix = "bot:"

func BotID(difficulty tictactoe.Difficulty) string {
	return BotPrefix + string(difficulty)
}

func IsBot(id string) bool {
	return strings.HasPrefix(id, BotPrefix)
}

// IsReserved - ids no human player can hold.
func IsReserved(id string) bool {
	return id == "" || id == WinnerDraw || IsBot(id)
}

// BotDifficulty - strength encoded in a bot id.
func BotDifficulty(id string) (tictactoe.Difficulty, bool) {
	if !IsBot(id) {
		return "", false
	}

	difficulty := tictactoe.Difficulty(strings.TrimPrefix(id, BotPrefix))

	return difficulty, difficulty.IsValid()
}
