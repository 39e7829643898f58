// Package app provides configuration management for the emulator.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	Window    WindowConfig    `json:"window"`
	Video     VideoConfig     `json:"video"`
	Input     InputConfig     `json:"input"`
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`
	Paths     PathsConfig     `json:"paths"`

	// Internal state
	configPath string
	loaded     bool
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
	Resizable  bool `json:"resizable"`
	Scale      int  `json:"scale"` // LCD resolution multiplier
}

// VideoConfig contains video rendering configuration
type VideoConfig struct {
	VSync             bool    `json:"vsync"`
	AspectRatio       string  `json:"aspect_ratio"` // "10:9", "stretch"
	Filter            string  `json:"filter"`       // "nearest", "linear"
	Backend           string  `json:"backend"`      // "ebitengine", "headless", "terminal"
	Palette           string  `json:"palette"`      // "color", "green"
	Brightness        float64 `json:"brightness"`
	Contrast          float64 `json:"contrast"`
	Saturation        float64 `json:"saturation"`
	FrameDumpInterval int     `json:"frame_dump_interval"` // headless PPM dumps every n frames, 0 = off
}

// InputConfig contains input configuration
type InputConfig struct {
	Keys KeyMapping `json:"keys"`
}

// KeyMapping documents the keyboard layout for the joypad
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// EmulationConfig contains emulation-specific settings
type EmulationConfig struct {
	FrameRate   float64 `json:"frame_rate"`   // Target frame rate
	DividerSeed int64   `json:"divider_seed"` // Seed for the DIV register source, 0 = time-based
}

// DebugConfig contains debugging and development options
type DebugConfig struct {
	ShowFPS       bool   `json:"show_fps"`
	EnableLogging bool   `json:"enable_logging"`
	LogLevel      string `json:"log_level"` // "DEBUG", "INFO", "WARN", "ERROR"
	CPUTracing    bool   `json:"cpu_tracing"`
}

// PathsConfig contains file and directory paths
type PathsConfig struct {
	ROMs        string `json:"roms"`
	Screenshots string `json:"screenshots"`
	Config      string `json:"config"`
	Logs        string `json:"logs"`
}

// dmgFrameRate is the hardware refresh rate: 4194304 Hz / 70224 cycles.
const dmgFrameRate = 59.7275

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	config := &Config{
		Window: WindowConfig{
			Width:      640,
			Height:     576,
			Fullscreen: false,
			Resizable:  true,
			Scale:      4, // 640x576 (160x144 * 4)
		},
		Video: VideoConfig{
			VSync:             true,
			AspectRatio:       "10:9",
			Filter:            "nearest",
			Backend:           "ebitengine",
			Palette:           "color",
			Brightness:        1.0,
			Contrast:          1.0,
			Saturation:        1.0,
			FrameDumpInterval: 0,
		},
		Input: InputConfig{
			Keys: KeyMapping{
				Up:     "Up",
				Down:   "Down",
				Left:   "Left",
				Right:  "Right",
				A:      "Z",
				B:      "X",
				Start:  "Return",
				Select: "Space",
			},
		},
		Emulation: EmulationConfig{
			FrameRate:   dmgFrameRate,
			DividerSeed: 0,
		},
		Debug: DebugConfig{
			ShowFPS:       false,
			EnableLogging: false,
			LogLevel:      "INFO",
			CPUTracing:    false,
		},
		Paths: PathsConfig{
			ROMs:        "./roms",
			Screenshots: "./screenshots",
			Config:      "./config",
			Logs:        "./logs",
		},
		loaded: false,
	}

	return config
}

// LoadFromFile loads configuration from a JSON file
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	// Missing file: persist the defaults and carry on
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c.SaveToFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	if err := c.createDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %v", err)
	}

	c.loaded = true
	return nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	c.configPath = path
	return nil
}

// Save saves the configuration to the current config file
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("no config file path set")
	}

	return c.SaveToFile(c.configPath)
}

// validate clamps out-of-range values back to their defaults.
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window dimensions: %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}

	if c.Video.Brightness < 0.1 || c.Video.Brightness > 3.0 {
		c.Video.Brightness = 1.0
	}

	if c.Video.Contrast < 0.1 || c.Video.Contrast > 3.0 {
		c.Video.Contrast = 1.0
	}

	if c.Video.Saturation < 0.0 || c.Video.Saturation > 3.0 {
		c.Video.Saturation = 1.0
	}

	if c.Video.Palette != "color" && c.Video.Palette != "green" {
		c.Video.Palette = "color"
	}

	if c.Video.FrameDumpInterval < 0 {
		c.Video.FrameDumpInterval = 0
	}

	if c.Emulation.FrameRate <= 0 {
		c.Emulation.FrameRate = dmgFrameRate
	}

	return nil
}

// createDirectories creates required directories
func (c *Config) createDirectories() error {
	dirs := []string{
		c.Paths.ROMs,
		c.Paths.Screenshots,
		c.Paths.Config,
		c.Paths.Logs,
	}

	for _, dir := range dirs {
		if dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %v", dir, err)
			}
		}
	}

	return nil
}

// GetLCDResolution returns the native LCD resolution
func (c *Config) GetLCDResolution() (int, int) {
	return 160, 144
}

// GetWindowResolution returns the window resolution based on scale
func (c *Config) GetWindowResolution() (int, int) {
	lcdWidth, lcdHeight := c.GetLCDResolution()
	return lcdWidth * c.Window.Scale, lcdHeight * c.Window.Scale
}

// IsLoaded returns whether the configuration was loaded from file
func (c *Config) IsLoaded() bool {
	return c.loaded
}

// GetConfigPath returns the path to the config file
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	data, err := json.Marshal(c)
	if err != nil {
		return NewConfig()
	}

	clone := &Config{}
	if err := json.Unmarshal(data, clone); err != nil {
		return NewConfig()
	}

	clone.configPath = c.configPath
	clone.loaded = c.loaded

	return clone
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	return "./config/godmg.json"
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field '%s' with value '%v': %v", e.Field, e.Value, e.Err)
}
