package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0/60.0, cfg.FixedDt(), 1e-12)

	// The catalog ships at least one crush-capable archetype.
	hasCrusher := false
	for _, a := range cfg.Archetypes {
		if a.Crush {
			hasCrusher = true
		}
	}
	assert.True(t, hasCrusher)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"zero render distance", func(c *Config) { c.RenderDist = 0 }},
		{"unknown player archetype", func(c *Config) { c.PlayerArch = "tank" }},
		{"broken archetype", func(c *Config) {
			c.Archetypes["bad"] = Archetype{Name: "bad"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().TickRate, cfg.TickRate)
	assert.Equal(t, DefaultConfig().RenderDist, cfg.RenderDist)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"tickRate": 120,
		"renderDistance": 5,
		"playerArchetype": "monster",
		"world": {"lakeChance": 0.5},
		"archetypes": {
			"tank": {
				"width": 18, "height": 30,
				"maxSpeed": 120, "accel": 70, "brakeAccel": 120,
				"turnRate": 1.4, "grip": 4.0, "crush": true
			}
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drift.cfg.json"), []byte(body), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.TickRate)
	assert.Equal(t, 5, cfg.RenderDist)
	assert.Equal(t, "monster", cfg.PlayerArch)
	assert.Equal(t, 0.5, cfg.LakeChance)

	tank, ok := cfg.Archetypes["tank"]
	require.True(t, ok, "file archetypes merge into the catalog")
	assert.True(t, tank.Crush)
	assert.Equal(t, "tank", tank.Name)

	// Stock entries survive the merge.
	_, ok = cfg.Archetypes["roadster"]
	assert.True(t, ok)
}

func TestLoadConfigRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drift.cfg.json"), []byte("{nope"), 0o644))
	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestArchetypeRadius(t *testing.T) {
	a := Archetype{Width: 10, Height: 20}
	assert.Equal(t, 7.5, a.Radius())
}
