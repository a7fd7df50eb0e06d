package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleYAML = `
stations:
  - name: reactor-1
    provider: nuclear
    fuel: uranium
  - name: engine-1
    provider: combustion
    fuel: diesel
    efficiency: 95
    decay_interval: 3
  - name: mixer-1
    provider: british
    fuel: diesel_lithium_blend
sim:
  rounds: 5
  amount: 10
metrics:
  prometheus_enabled: true
`

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	require.Len(t, cfg.Stations, 3)
	assert.Equal(t, "reactor-1", cfg.Stations[0].Name)
	assert.Equal(t, uint8(95), cfg.Stations[1].Efficiency)
	assert.Equal(t, uint32(3), cfg.Stations[1].DecayInterval)
	// defaults
	assert.Equal(t, uint8(100), cfg.Stations[0].Efficiency)
	assert.Equal(t, uint8(50), cfg.Stations[2].BlendWeight)
	assert.Equal(t, 5, cfg.Sim.Rounds)
	assert.True(t, cfg.Metrics.PrometheusEnabled)
	assert.Equal(t, ":9090", cfg.Metrics.PrometheusAddr)
	assert.Equal(t, "fuelcore/production", cfg.MQTT.Topic)
}

func TestLoadJSON(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.json",
		`{"stations":[{"name":"omni-1","provider":"omni","fuel":"lithium_battery"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "omni-1", cfg.Stations[0].Name)
	assert.Equal(t, 10, cfg.Sim.Rounds)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", ""))
	require.Error(t, err)
}

func TestLoadRejectsEmptyStations(t *testing.T) {
	_, err := Load(writeConfig(t, "config.yaml", "sim:\n  rounds: 1\n"))
	require.Error(t, err)
}

func TestLoadLoggingSection(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML+"logging:\n  level: debug\n  format: console\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	// default level applies when the section is absent
	cfg, err = Load(writeConfig(t, "default.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)

	_, err = Load(writeConfig(t, "bad.yaml", sampleYAML+"logging:\n  level: loud\n"))
	require.Error(t, err)
}

func TestLoggingConfigValidate(t *testing.T) {
	var c LoggingConfig
	c.SetDefaults()
	assert.Equal(t, "info", c.Level)
	assert.NoError(t, c.Validate())
	assert.Error(t, LoggingConfig{Level: "info", Format: "xml"}.Validate())
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	_, err := Load(writeConfig(t, "config.yaml",
		"stations:\n  - name: x\n    provider: fusion\n    fuel: diesel\n"))
	require.Error(t, err)
}

func TestBuildStations(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	stations, err := BuildStations(cfg.Stations)
	require.NoError(t, err)
	require.Len(t, stations, 3)
	assert.EqualValues(t, 9900, stations[0].Produce(10))
	assert.EqualValues(t, 950, stations[1].Produce(10))
	assert.EqualValues(t, 1500, stations[2].Produce(10))
}

func TestBuildRejectsInadmissiblePairings(t *testing.T) {
	cases := []StationConfig{
		{Name: "g", Provider: "green", Fuel: "diesel"},
		{Name: "g", Provider: "green", Fuel: "diesel_lithium_blend"},
		{Name: "b", Provider: "british", Fuel: "diesel"},
		{Name: "b", Provider: "british", Fuel: "lithium_battery"},
	}
	for _, c := range cases {
		c.SetDefaults()
		_, err := c.Build()
		assert.Errorf(t, err, "%s on %s must be rejected", c.Provider, c.Fuel)
	}
}

func TestBuildGreenOnRenewable(t *testing.T) {
	c := StationConfig{Name: "green-1", Provider: "green", Fuel: "lithium_battery"}
	c.SetDefaults()
	st, err := c.Build()
	require.NoError(t, err)
	assert.EqualValues(t, 2000, st.Produce(10))
}

func TestBuildWeightedBlendStation(t *testing.T) {
	c := StationConfig{Name: "mix", Provider: "omni", Fuel: "diesel_lithium_weighted", BlendWeight: 80, Efficiency: 100}
	st, err := c.Build()
	require.NoError(t, err)
	// density 120, amount 10
	assert.EqualValues(t, 1200, st.Produce(10))
}
