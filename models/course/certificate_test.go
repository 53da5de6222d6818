package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		percent int
		level   string
	}{
		{60, LevelBronze},
		{69, LevelBronze},
		{70, LevelSilver},
		{84, LevelSilver},
		{85, LevelGold},
		{94, LevelGold},
		{95, LevelPlatinum},
		{100, LevelPlatinum},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelForScore(tt.percent), "percent %d", tt.percent)
	}
}
