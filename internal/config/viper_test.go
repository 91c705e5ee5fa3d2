package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 600, config.Planner.HorizonMonths)
	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		v := viper.New()
		setDefaults(v)
		var c Config
		require.NoError(t, v.Unmarshal(&c))
		return &c
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "Defaults", mutate: func(c *Config) {}},
		{name: "BadLogLevel", mutate: func(c *Config) { c.Log.Level = "verbose" }, expectError: true},
		{name: "BadLogFormat", mutate: func(c *Config) { c.Log.Format = "xml" }, expectError: true},
		{name: "ZeroHorizon", mutate: func(c *Config) { c.Planner.HorizonMonths = 0 }, expectError: true},
		{name: "BadOutputFormat", mutate: func(c *Config) { c.Output.Format = "pdf" }, expectError: true},
		{name: "MultiCharDelimiter", mutate: func(c *Config) { c.CSV.Delimiter = ";;" }, expectError: true},
		{name: "JSONOutput", mutate: func(c *Config) { c.Output.Format = "json" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base()
			tt.mutate(config)
			err := validateConfig(config)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PAYDOWN_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("PAYDOWN_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PAYDOWN_TEST_MISSING", "fallback"))
}
