// noisetool is a CLI utility for inspecting the coherent-noise engine.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/orbitforge/regolith/pkg/noise"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "models":
		cmdModels()
	case "eval":
		cmdEval(args)
	case "table":
		cmdTable(args)
	case "preview":
		cmdPreview(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`noisetool - coherent-noise engine utility

Usage:
  noisetool <command> [options]

Commands:
  models                             List noise models and their defaults
  eval [options]                     Evaluate a model at a single point
  table [options]                    Print a gradient table
  preview [options]                  Render a flat noise patch to a PNG

Examples:
  noisetool models
  noisetool eval -model ridged -seed 42 -octaves 4 -x 1 -y 2 -z 3
  noisetool table -seed 42 -octaves 4
  noisetool preview -model swiss -seed 7 -size 512x512 -out swiss.png`)
}

func cmdModels() {
	for _, m := range noise.Models() {
		p := noise.Defaults(m)
		fmt.Printf("%-12s freq=%g pers=%g lac=%g", m, p.Frequency, p.Persistence, p.Lacunarity)
		switch m {
		case noise.PowerLaw:
			fmt.Printf(" slope=%g", p.Slope)
		case noise.Swiss:
			fmt.Printf(" gain=%g warp=%g", p.Gain, p.Warp)
		case noise.Jordan:
			fmt.Printf(" gain=%g gain0=%g warp=%g warp0=%g damp=%g damp0=%g damp_scale=%g",
				p.Gain, p.Gain0, p.Warp, p.Warp0, p.Damp, p.Damp0, p.DampScale)
		}
		fmt.Println()
	}
}

// modelFlags registers the shared model/table flags on a flag set.
type modelFlags struct {
	model   *string
	seed    *int64
	octaves *int
}

func addModelFlags(fs *flag.FlagSet) modelFlags {
	return modelFlags{
		model:   fs.String("model", "turbulence", "Noise model"),
		seed:    fs.Int64("seed", 42, "Gradient table seed"),
		octaves: fs.Int("octaves", 8, "Number of octaves"),
	}
}

func (mf modelFlags) resolve() (noise.Model, *noise.Table, error) {
	m, err := noise.ParseModel(*mf.model)
	if err != nil {
		return 0, nil, err
	}
	return m, noise.NewTable(*mf.seed, *mf.octaves), nil
}

func cmdEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	mf := addModelFlags(fs)
	x := fs.Float64("x", 0, "Point X")
	y := fs.Float64("y", 0, "Point Y")
	z := fs.Float64("z", 0, "Point Z")
	fs.Parse(args)

	m, tbl, err := mf.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	v := noise.Evaluate(m, *x, *y, *z, tbl, noise.Defaults(m))
	fmt.Printf("%s(%g, %g, %g) = %.17g\n", m, *x, *y, *z, v)
}

func cmdTable(args []string) {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	seed := fs.Int64("seed", 42, "Gradient table seed")
	octaves := fs.Int("octaves", 8, "Number of octaves")
	fs.Parse(args)

	tbl := noise.NewTable(*seed, *octaves)
	for i := 0; i < tbl.Octaves(); i++ {
		g := tbl.At(i)
		fmt.Printf("%3d  % .12f  % .12f  % .12f\n", i, g.X, g.Y, g.Z)
	}
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	mf := addModelFlags(fs)
	size := fs.String("size", "512x512", "Image size as WxH")
	extent := fs.Float64("extent", 4, "Sampled domain is [0, extent) in x and y")
	out := fs.String("out", "noise.png", "Output PNG path")
	fs.Parse(args)

	var w, h int
	if _, err := fmt.Sscanf(*size, "%dx%d", &w, &h); err != nil || w < 1 || h < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid size %q\n", *size)
		os.Exit(1)
	}

	m, tbl, err := mf.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := noise.Defaults(m)

	// Sample a flat z=0 patch, then normalize to 8-bit gray.
	ext := *extent
	values := make([]float64, w*h)
	min, max := math.Inf(1), math.Inf(-1)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			v := noise.Evaluate(m,
				float64(i)/float64(w)*ext,
				float64(j)/float64(h)*ext,
				0, tbl, p)
			values[j*w+i] = v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			img.SetGray(i, j, color.Gray{Y: uint8((values[j*w+i] - min) / span * 255)})
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %s, range [%.4g, %.4g])\n", *out, w, h, m, min, max)
}
