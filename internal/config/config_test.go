package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrite-ml/dendrite/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "xor", cfg.Dataset)
	assert.Equal(t, []int{8}, cfg.Hidden)
	assert.Equal(t, 10, cfg.Iterations)
	assert.InDelta(t, 0.1, cfg.LearningRate, 1e-12)
	assert.InDelta(t, 0.0, cfg.Momentum, 1e-12)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 50, cfg.LogEvery)
	assert.Empty(t, cfg.Checkpoint)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DENDRITE_DATASET", "and")
	t.Setenv("DENDRITE_HIDDEN", "4,3")
	t.Setenv("DENDRITE_ITERATIONS", "500")
	t.Setenv("DENDRITE_LR", "0.25")
	t.Setenv("DENDRITE_MOMENTUM", "0.9")
	t.Setenv("DENDRITE_SEED", "42")
	t.Setenv("DENDRITE_CHECKPOINT", "/tmp/net.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "and", cfg.Dataset)
	assert.Equal(t, []int{4, 3}, cfg.Hidden)
	assert.Equal(t, 500, cfg.Iterations)
	assert.InDelta(t, 0.25, cfg.LearningRate, 1e-12)
	assert.InDelta(t, 0.9, cfg.Momentum, 1e-12)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "/tmp/net.json", cfg.Checkpoint)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("DENDRITE_ITERATIONS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Dataset:      "xor",
			Hidden:       []int{8},
			Iterations:   10,
			LearningRate: 0.1,
			LogEvery:     50,
			Seed:         1,
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty dataset", func(c *config.Config) { c.Dataset = "" }},
		{"zero hidden units", func(c *config.Config) { c.Hidden = []int{8, 0} }},
		{"zero iterations", func(c *config.Config) { c.Iterations = 0 }},
		{"negative learning rate", func(c *config.Config) { c.LearningRate = -0.1 }},
		{"momentum out of range", func(c *config.Config) { c.Momentum = 1.0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, valid().Validate())
}

func TestValidate_DefaultsLogEvery(t *testing.T) {
	cfg := &config.Config{
		Dataset:      "xor",
		Iterations:   10,
		LearningRate: 0.1,
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.LogEvery)
}
