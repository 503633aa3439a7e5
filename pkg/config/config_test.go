package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/pkg/config"
)

type testConfig struct {
	Name  string `env:"CONFIG_TEST_NAME" envDefault:"default"`
	Limit int    `env:"CONFIG_TEST_LIMIT" envDefault:"10"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_NAME", "slugd")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, testConfig{Name: "slugd", Limit: 10}, cfg)

	t.Setenv("CONFIG_TEST_NAME", "changed")

	var again testConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "slugd", again.Name, "cached per type")

	config.Reset()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "changed", again.Name)
}

func TestLoad_Required(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParse)

	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("CONFIG_TEST_REQUIRED", "ok")
	config.MustLoad(&cfg)
	assert.Equal(t, "ok", cfg.Value)
}
