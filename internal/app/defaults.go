package app

import (
	"github.com/hireloop/swipematch/internal/command"
)

// DefaultRefreshEmbeddingsConfig returns the default config for the
// background embedding refresh.
func DefaultRefreshEmbeddingsConfig() command.RefreshEmbeddingsConfig {
	return command.RefreshEmbeddingsConfig{
		BatchLimit: 200,
	}
}
