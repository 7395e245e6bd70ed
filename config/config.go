package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/maxgmr/mfs16go/vm"
)

// Config is the emulator's machine and debugger configuration, TOML-backed
// the way the teacher's arm-emu config is, but carrying MFS-16's own
// execution parameters (clock rate, memory sizing, entry point) in place
// of ARM's.
type Config struct {
	// Execution settings
	Execution struct {
		ClockHz      uint64 `toml:"clock_hz"`
		RomSize      int    `toml:"rom_size"`
		RamSize      int    `toml:"ram_size"`
		VramSize     int    `toml:"vram_size"`
		DefaultEntry uint32 `toml:"default_entry"`
		MaxCycles    uint64 `toml:"max_cycles"`
		EnableTrace  bool   `toml:"enable_trace"`
		EnableStats  bool   `toml:"enable_stats"`
	} `toml:"execution"`

	// Debugger settings
	Debugger struct {
		HistorySize    int  `toml:"history_size"`
		AutoSaveBreaks bool `toml:"auto_save_breakpoints"`
		ShowSource     bool `toml:"show_source"`
		ShowRegisters  bool `toml:"show_registers"`
	} `toml:"debugger"`

	// Display settings
	Display struct {
		ColorOutput  bool   `toml:"color_output"`
		BytesPerLine int    `toml:"bytes_per_line"`
		NumberFormat string `toml:"number_format"` // hex, dec, both
	} `toml:"display"`

	// Trace settings
	Trace struct {
		OutputFile    string `toml:"output_file"`
		IncludeFlags  bool   `toml:"include_flags"`
		IncludeTiming bool   `toml:"include_timing"`
		MaxEntries    int    `toml:"max_entries"`
	} `toml:"trace"`
}

// DefaultConfig returns a configuration with MFS-16's default values:
// a 2^25 Hz clock (SPEC_FULL.md §2), 64KiB ROM, 16MiB RAM, and a VRAM
// region sized for the GPU's default framebuffer.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.ClockHz = 1 << 25
	cfg.Execution.RomSize = 64 * 1024
	cfg.Execution.RamSize = 16 * 1024 * 1024
	cfg.Execution.VramSize = 76_800
	cfg.Execution.DefaultEntry = 0
	cfg.Execution.MaxCycles = 0 // 0 means unbounded
	cfg.Execution.EnableTrace = false
	cfg.Execution.EnableStats = false

	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.AutoSaveBreaks = true
	cfg.Debugger.ShowSource = true
	cfg.Debugger.ShowRegisters = true

	cfg.Display.ColorOutput = true
	cfg.Display.BytesPerLine = 16
	cfg.Display.NumberFormat = "hex"

	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.IncludeFlags = true
	cfg.Trace.IncludeTiming = true
	cfg.Trace.MaxEntries = 100000

	return cfg
}

// Validate checks the Execution memory layout against vm.Mmu's fixed
// register placement: ROM+RAM+VRAM are laid out contiguously from
// address 0 (vm.NewMmu), and vm.KeyboardRegStart fixes the
// keyboard/IE/IF registers near the top of the 32-bit address space, so
// a layout large enough to overlap that reserved region would silently
// shadow those registers instead of the RAM/VRAM a caller configured.
func (c *Config) Validate() error {
	if c.Execution.ClockHz == 0 {
		return fmt.Errorf("execution.clock_hz must be nonzero")
	}
	if c.Execution.RomSize <= 0 {
		return fmt.Errorf("execution.rom_size must be positive, got %d", c.Execution.RomSize)
	}
	if c.Execution.RamSize <= 0 {
		return fmt.Errorf("execution.ram_size must be positive, got %d", c.Execution.RamSize)
	}
	if c.Execution.VramSize <= 0 {
		return fmt.Errorf("execution.vram_size must be positive, got %d", c.Execution.VramSize)
	}

	extent := uint64(c.Execution.RomSize) + uint64(c.Execution.RamSize) + uint64(c.Execution.VramSize)
	if extent > uint64(vm.KeyboardRegStart) {
		return fmt.Errorf(
			"execution.rom_size+ram_size+vram_size (%d) overlaps the reserved keyboard/IE/IF register region starting at %#08X",
			extent, vm.KeyboardRegStart,
		)
	}

	if c.Execution.DefaultEntry >= uint32(c.Execution.RomSize) {
		return fmt.Errorf(
			"execution.default_entry %#08X lies outside the %d-byte ROM",
			c.Execution.DefaultEntry, c.Execution.RomSize,
		)
	}

	return nil
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mfs16go")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mfs16go")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "mfs16go", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "mfs16go", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, falling back to
// defaults for any field the file doesn't set (and for the whole config
// if the file doesn't exist).
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
