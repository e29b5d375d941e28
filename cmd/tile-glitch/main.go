package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	disimaging "github.com/disintegration/imaging"

	"github.com/danielvan/tile-glitch/internal/imaging"
	"github.com/danielvan/tile-glitch/internal/raster"
	"github.com/danielvan/tile-glitch/internal/synth"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("tile-glitch %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		chaos     = flag.Int("chaos", 20, "glitch probability/intensity, 0-100")
		coherence = flag.Int("coherence", 50, "neighbor-following strength, 0-100")
		normalize = flag.Int("normalize", 50, "repetition vs. variation bias, 0-100")
		scale     = flag.Int("scale", 2, "tile blow-up factor, 1-4")
		cycle     = flag.Bool("cycle", false, "draw every tile exactly once per cycle")
		cols      = flag.Int("cols", 64, "grid width in cells")
		rows      = flag.Int("rows", 64, "grid height in cells")
		seed      = flag.Int64("seed", 1, "random seed; same seed reproduces the same pattern")
		exclude   = flag.String("exclude", "", "exclusion color as #RRGGBB, or empty for none")
		weightArg = flag.String("weights", "", "per-source weights as name=0..100, comma separated")
		out       = flag.String("out", "pattern.png", "output PNG path")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tile-glitch [options] tileset.png [tileset2.png ...]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes a tiled pattern from one or more tileset images.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n")
		fmt.Fprintf(os.Stderr, "  TILE_GLITCH_LOG_LEVEL=debug    Enable debug logging\n")
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("TILE_GLITCH_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("tile-glitch v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	session := synth.NewSession(*seed)
	store := imaging.NewSourceStore()
	for _, path := range paths {
		img, err := store.Load(path)
		if err != nil {
			log.Fatalf("failed to load tileset %s: %v", path, err)
		}
		session.AddSource(sourceID(path), img)
	}

	if *exclude != "" {
		c, err := imaging.ParseHexColor(*exclude)
		if err != nil {
			log.Fatalf("invalid exclusion color: %v", err)
		}
		session.SetExcludeColor(&c)
	}

	weights, err := parseWeights(*weightArg)
	if err != nil {
		log.Fatalf("invalid weights: %v", err)
	}
	for id, w := range weights {
		session.SetWeight(id, w)
	}

	if len(session.Catalog()) == 0 {
		log.Fatalf("no usable tiles: every candidate was filtered out or the sources are smaller than %dpx", synth.TileSize)
	}
	if debug {
		log.Printf("catalog: %d tiles from %d sources", len(session.Catalog()), len(paths))
	}

	params := synth.Params{
		Chaos:     *chaos,
		Coherence: *coherence,
		Normalize: *normalize,
		Scale:     *scale,
		CycleMode: *cycle,
	}
	canvas := raster.NewCanvas(*cols, *rows, params.CellSize(), session.Sources())
	session.Generate(params, *rows, *cols, canvas)

	if err := disimaging.Save(canvas.Image(), *out); err != nil {
		log.Fatalf("failed to save %s: %v", *out, err)
	}
	if debug {
		log.Printf("wrote %dx%d raster to %s", canvas.Image().Bounds().Dx(), canvas.Image().Bounds().Dy(), *out)
	}
}

// sourceID derives the weight-map identifier for a tileset path: the file
// name without its extension.
func sourceID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// parseWeights parses "name=30,other=80" into a weight map.
func parseWeights(arg string) (map[string]int, error) {
	weights := make(map[string]int)
	if arg == "" {
		return weights, nil
	}
	for _, pair := range strings.Split(arg, ",") {
		name, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected name=weight, got %q", pair)
		}
		w, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("weight for %q: %w", name, err)
		}
		if w < 0 || w > 100 {
			return nil, fmt.Errorf("weight for %q must be in 0-100, got %d", name, w)
		}
		weights[name] = w
	}
	return weights, nil
}
