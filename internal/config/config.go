// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Loader  LoaderConfig  `yaml:"loader"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds presentation settings.
type ViewerConfig struct {
	Theme      string `yaml:"theme"`      // dark, light or solarized
	Projection string `yaml:"projection"` // orthographic or perspective
}

// LoaderConfig holds STL decoding settings.
type LoaderConfig struct {
	MaxWorkers int  `yaml:"max_workers"` // 0 = one per CPU
	Unindexed  bool `yaml:"unindexed"`   // Skip vertex deduplication
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			Theme:      "dark",
			Projection: "orthographic",
		},
		Loader: LoaderConfig{
			MaxWorkers: 0,
			Unindexed:  false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
