package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the emulator configuration
type Config struct {
	// Execution settings
	Execution struct {
		MaxInstructions uint64 `toml:"max_instructions"`
		EntryPoint      string `toml:"entry_point"`
		MemorySize      uint   `toml:"memory_size"`
		IOSize          uint   `toml:"io_size"`
		EnableTrace     bool   `toml:"enable_trace"`
	} `toml:"execution"`

	// Debugger settings
	Debugger struct {
		HistorySize   int  `toml:"history_size"`
		ShowFlags     bool `toml:"show_flags"`
		ShowRegisters bool `toml:"show_registers"`
	} `toml:"debugger"`

	// Display settings
	Display struct {
		ColorOutput  bool   `toml:"color_output"`
		BytesPerLine int    `toml:"bytes_per_line"`
		NumberFormat string `toml:"number_format"` // hex, dec
	} `toml:"display"`

	// Trace settings
	Trace struct {
		OutputFile   string `toml:"output_file"`
		FilterRegs   string `toml:"filter_registers"` // comma-separated: "AX,BX,flags"
		IncludeFlags bool   `toml:"include_flags"`
		MaxEntries   int    `toml:"max_entries"`
	} `toml:"trace"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Execution defaults
	cfg.Execution.MaxInstructions = 1000000
	cfg.Execution.EntryPoint = "0x0100"
	cfg.Execution.MemorySize = 1 << 20 // full 20-bit address space
	cfg.Execution.IOSize = 1 << 16     // full 16-bit port space
	cfg.Execution.EnableTrace = false

	// Debugger defaults
	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.ShowFlags = true
	cfg.Debugger.ShowRegisters = true

	// Display defaults
	cfg.Display.ColorOutput = true
	cfg.Display.BytesPerLine = 16
	cfg.Display.NumberFormat = "hex"

	// Trace defaults
	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.FilterRegs = ""
	cfg.Trace.IncludeFlags = true
	cfg.Trace.MaxEntries = 100000

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\x86emu\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "x86emu")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/x86emu/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "x86emu")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "x86emu", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "x86emu", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
