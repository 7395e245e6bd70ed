package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/maxgmr/mfs16go/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, uint64(1<<25), cfg.Execution.ClockHz)
	assert.Equal(t, 64*1024, cfg.Execution.RomSize)
	assert.Equal(t, uint32(0), cfg.Execution.DefaultEntry)

	assert.Equal(t, 1000, cfg.Debugger.HistorySize)
	assert.True(t, cfg.Debugger.ShowSource)

	assert.Equal(t, 16, cfg.Display.BytesPerLine)
	assert.Equal(t, "hex", cfg.Display.NumberFormat)

	assert.Equal(t, 100000, cfg.Trace.MaxEntries)
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	require.NotEmpty(t, path)
	assert.Equal(t, "config.toml", filepath.Base(path))

	switch runtime.GOOS {
	case "windows":
		assert.True(t, filepath.IsAbs(path) || path == "config.toml")
	case "darwin", "linux":
		dir := filepath.Dir(path)
		assert.True(t, filepath.Base(dir) == "mfs16go" || path == "config.toml")
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()

	require.NotEmpty(t, path)

	switch runtime.GOOS {
	case "windows":
		assert.True(t, filepath.IsAbs(path) || path == "logs")
	case "darwin", "linux":
		assert.Equal(t, "logs", filepath.Base(path))
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Execution.MaxCycles = 5000000
	cfg.Execution.EnableTrace = true
	cfg.Debugger.HistorySize = 500
	cfg.Display.ColorOutput = false
	cfg.Execution.DefaultEntry = 0x1000

	require.NoError(t, cfg.SaveTo(configPath))
	_, err := os.Stat(configPath)
	require.NoError(t, err, "config file was not created")

	loaded, err := LoadFrom(configPath)
	require.NoError(t, err)

	assert.Equal(t, uint64(5000000), loaded.Execution.MaxCycles)
	assert.True(t, loaded.Execution.EnableTrace)
	assert.Equal(t, 500, loaded.Debugger.HistorySize)
	assert.False(t, loaded.Display.ColorOutput)
	assert.Equal(t, uint32(0x1000), loaded.Execution.DefaultEntry)
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err, "LoadFrom should not error on non-existent file")
	assert.Equal(t, uint64(1<<25), cfg.Execution.ClockHz, "expected default config when file doesn't exist")
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[execution]
max_cycles = "not a number"  # Invalid: should be uint64
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidTOML), 0644))

	_, err := LoadFrom(configPath)
	assert.Error(t, err)
}

func TestValidateAcceptsDefaultConfig(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsZeroClockHz(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.ClockHz = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsLayoutOverlappingKeyboardRegisters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.RamSize = int(vm.KeyboardRegStart)
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDefaultEntryOutsideRom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.DefaultEntry = uint32(cfg.Execution.RomSize)
	assert.Error(t, cfg.Validate())
}

func TestLoadFromRejectsInvalidLayout(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "overlapping.toml")

	invalidTOML := `
[execution]
ram_size = 4294967230
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidTOML), 0644))

	_, err := LoadFrom(configPath)
	assert.Error(t, err)
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.SaveTo(configPath))

	_, err := os.Stat(configPath)
	assert.NoError(t, err, "config file was not created")

	dir := filepath.Dir(configPath)
	_, err = os.Stat(dir)
	assert.NoError(t, err, "parent directories were not created")
}
