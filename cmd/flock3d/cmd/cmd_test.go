package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	golog "github.com/tochemey/goakt/v3/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want golog.Level
	}{
		{"debug", golog.DebugLevel},
		{"INFO", golog.InfoLevel},
		{"", golog.InfoLevel},
		{"warn", golog.WarningLevel},
		{"error", golog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	file := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(file, []byte("numAgents: 12\nneighborhood: linear\n"), 0o600))

	viper.Set("config", file)
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.NumAgents)
	assert.Equal(t, simulation.NeighborhoodLinear, cfg.Neighborhood)

	viper.Set("agents", 30)
	viper.Set("neighborhood", simulation.NeighborhoodRTree)
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.NumAgents)
	assert.Equal(t, simulation.NeighborhoodRTree, cfg.Neighborhood)

	viper.Set("neighborhood", "octree")
	_, err = loadConfig()
	assert.ErrorIs(t, err, simulation.ErrInvalidConfig)
}

func TestRunCommand(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("agents", 25)
	viper.Set("log-level", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--ticks", "20"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "frame")
	assert.Contains(t, out.String(), "20")
	assert.Contains(t, out.String(), "25")
}
