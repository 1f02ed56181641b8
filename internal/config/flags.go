package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Int64("seed", 0, "Override the seed of every noise pass")
	flagOut    = flag.String("out", "", "Override the PNG output path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		for i := range cfg.Layers {
			cfg.Layers[i].Seed = *flagSeed
		}
		// Auxiliary passes derive their own streams from the same seed.
		cfg.Mare.Seed = *flagSeed + 1
		cfg.Degradation.Seed = *flagSeed + 2
	}
	if *flagOut != "" {
		cfg.Export.PNG = *flagOut
	}
}
