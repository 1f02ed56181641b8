// surfgen generates a perturbed planetary surface from a YAML config and
// exports it as a heightmap.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/orbitforge/regolith/internal/config"
	"github.com/orbitforge/regolith/internal/logger"
	"github.com/orbitforge/regolith/internal/surface"
	"github.com/orbitforge/regolith/pkg/noise"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	grid, err := surface.New(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Radius)
	if err != nil {
		logger.Fatal("creating surface grid", zap.Error(err))
	}
	logger.Info("surface grid created",
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Float64("radius_m", grid.Radius))

	for i, lc := range cfg.Layers {
		layer, err := buildLayer(lc)
		if err != nil {
			logger.Fatal("invalid noise layer", zap.Int("layer", i), zap.Error(err))
		}
		start := time.Now()
		grid.ApplyNoise(layer)
		logger.Info("applied noise layer",
			zap.Int("layer", i),
			zap.String("model", lc.Model),
			zap.Int64("seed", layer.Seed),
			zap.Int("octaves", layer.Octaves),
			zap.Duration("took", time.Since(start)))
	}

	if cfg.Mare.Enabled {
		grid.ApplyMare(surface.MareLayer{
			Seed:      cfg.Mare.Seed,
			Floor:     cfg.Mare.Floor,
			Frequency: cfg.Mare.Frequency,
			Threshold: cfg.Mare.Threshold,
		})
		logger.Info("applied mare pass", zap.Float64("floor_m", cfg.Mare.Floor))
	}

	if cfg.Degradation.Enabled {
		grid.ApplyDegradation(surface.DegradationLayer{
			Seed:        cfg.Degradation.Seed,
			Amplitude:   cfg.Degradation.Amplitude,
			Frequency:   cfg.Degradation.Frequency,
			Octaves:     cfg.Degradation.Octaves,
			Persistence: cfg.Degradation.Persistence,
		})
		logger.Info("applied degradation texture", zap.Float64("amplitude_m", cfg.Degradation.Amplitude))
	}

	min, max, mean := grid.Stats()
	logger.Info("surface generated",
		zap.Float64("min_m", min),
		zap.Float64("max_m", max),
		zap.Float64("mean_m", mean))

	if cfg.Export.PNG != "" {
		if err := exportFile(cfg.Export.PNG, grid.EncodePNG); err != nil {
			logger.Fatal("exporting PNG", zap.Error(err))
		}
		logger.Info("wrote heightmap", zap.String("path", cfg.Export.PNG))
	}
	if cfg.Export.Raw != "" {
		if err := exportFile(cfg.Export.Raw, grid.WriteRaw); err != nil {
			logger.Fatal("exporting raw elevations", zap.Error(err))
		}
		logger.Info("wrote raw elevations", zap.String("path", cfg.Export.Raw))
	}
}

func exportFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// buildLayer resolves a layer config against the model's defaults: any
// zero-valued knob keeps the conventional value.
func buildLayer(lc config.LayerConfig) (surface.NoiseLayer, error) {
	m, err := noise.ParseModel(lc.Model)
	if err != nil {
		return surface.NoiseLayer{}, err
	}

	p := noise.Defaults(m)
	if lc.Frequency != 0 {
		p.Frequency = lc.Frequency
	}
	if lc.Persistence != 0 {
		p.Persistence = lc.Persistence
	}
	if lc.Lacunarity != 0 {
		p.Lacunarity = lc.Lacunarity
	}
	if lc.Slope != 0 {
		p.Slope = lc.Slope
	}
	if lc.NoiseHeight != 0 {
		p.NoiseHeight = lc.NoiseHeight
	}
	if lc.Gain != 0 {
		p.Gain = lc.Gain
	}
	if lc.Gain0 != 0 {
		p.Gain0 = lc.Gain0
	}
	if lc.Warp != 0 {
		p.Warp = lc.Warp
	}
	if lc.Warp0 != 0 {
		p.Warp0 = lc.Warp0
	}
	if lc.Damp != 0 {
		p.Damp = lc.Damp
	}
	if lc.Damp0 != 0 {
		p.Damp0 = lc.Damp0
	}
	if lc.DampScale != 0 {
		p.DampScale = lc.DampScale
	}

	octaves := lc.Octaves
	if octaves == 0 {
		octaves = 12
	}

	return surface.NoiseLayer{
		Model:      m,
		Seed:       lc.Seed,
		Octaves:    octaves,
		NoiseWidth: lc.NoiseWidth,
		Params:     p,
	}, nil
}
