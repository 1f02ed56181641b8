// Package config handles surface generation configuration loading and
// management.
package config

// Config holds all generation settings.
type Config struct {
	Surface     SurfaceConfig     `yaml:"surface"`
	Layers      []LayerConfig     `yaml:"layers"`
	Mare        MareConfig        `yaml:"mare"`
	Degradation DegradationConfig `yaml:"degradation"`
	Export      ExportConfig      `yaml:"export"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SurfaceConfig holds the elevation grid shape and the body it wraps.
type SurfaceConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Radius float64 `yaml:"radius"` // meters
}

// LayerConfig describes one coherent-noise pass. Zero-valued knobs fall back
// to the model's conventional defaults at build time.
type LayerConfig struct {
	Model       string  `yaml:"model"`
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	NoiseWidth  float64 `yaml:"noise_width"`  // meters
	NoiseHeight float64 `yaml:"noise_height"` // meters
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Slope       float64 `yaml:"slope"`
	Gain        float64 `yaml:"gain"`
	Gain0       float64 `yaml:"gain0"`
	Warp        float64 `yaml:"warp"`
	Warp0       float64 `yaml:"warp0"`
	Damp        float64 `yaml:"damp"`
	Damp0       float64 `yaml:"damp0"`
	DampScale   float64 `yaml:"damp_scale"`
}

// MareConfig holds the basin-floor pass settings.
type MareConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Seed      int64   `yaml:"seed"`
	Floor     float64 `yaml:"floor"` // meters
	Frequency float64 `yaml:"frequency"`
	Threshold float64 `yaml:"threshold"`
}

// DegradationConfig holds the regolith texture pass settings.
type DegradationConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Seed        int64   `yaml:"seed"`
	Amplitude   float64 `yaml:"amplitude"` // meters
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
}

// ExportConfig holds output paths. Empty paths disable that output.
type ExportConfig struct {
	PNG string `yaml:"png"`
	Raw string `yaml:"raw"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a Moon-sized body
// with a single turbulence pass.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Width:  512,
			Height: 256,
			Radius: 1.7374e6,
		},
		Layers: []LayerConfig{
			{
				Model:       "turbulence",
				Seed:        42,
				Octaves:     12,
				NoiseWidth:  1000e3,
				NoiseHeight: 20e3,
			},
		},
		Mare: MareConfig{
			Enabled:   false,
			Seed:      43,
			Floor:     -2000,
			Frequency: 2,
			Threshold: -0.2,
		},
		Degradation: DegradationConfig{
			Enabled:     false,
			Seed:        44,
			Amplitude:   150,
			Frequency:   50,
			Octaves:     4,
			Persistence: 0.5,
		},
		Export: ExportConfig{
			PNG: "surface.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
