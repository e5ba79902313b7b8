package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"sparselife/internal/config"
	"sparselife/internal/control"
	"sparselife/internal/core"
	"sparselife/internal/life"
	"sparselife/internal/pattern"
)

func main() {
	var (
		configPath  = flag.String("config", "", "JSON config file")
		patternPath = flag.String("pattern", "", "seed-list JSON pattern file")
		builtin     = flag.String("builtin", "glider", "builtin pattern ("+strings.Join(pattern.Builtins(), ", ")+")")
		generations = flag.Uint64("generations", 0, "generation cap for this run (0 = use config)")
		density     = flag.Float64("density", 0, "seed a random soup at this density instead of a pattern")
		seed        = flag.Int64("seed", 42, "seed for the random soup")
		report      = flag.Uint64("report", 100, "log stats every N generations (0 disables)")
		savePath    = flag.String("save", "", "write the final live set to this pattern file")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		log.Fatalf("config env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	bounds, err := cfg.Bounds()
	if err != nil {
		log.Fatalf("bounds: %v", err)
	}

	engine := life.NewWithWindow(bounds, cfg.Simulation.StableDetectionCycles)
	ctl := control.New(engine, cfg.Simulation)

	switch {
	case *density > 0:
		engine.RandomFill(core.NewRNG(*seed), *density)
	case *patternPath != "":
		p, err := pattern.Load(*patternPath)
		if err != nil {
			log.Fatalf("pattern: %v", err)
		}
		pattern.Apply(ctl, p)
	default:
		p, ok := pattern.Builtin(*builtin)
		if !ok {
			log.Fatalf("unknown builtin pattern %q (have %s)", *builtin, strings.Join(pattern.Builtins(), ", "))
		}
		pattern.Apply(ctl, p)
	}

	if *report > 0 {
		every := *report
		ctl.SetStepFunc(func(s control.Stats) {
			if s.Generation%every == 0 {
				log.Printf("generation %d population %d stable=%v", s.Generation, s.Population, s.Stable)
			}
		})
	}

	log.Printf("grid x %d..%d y %d..%d wrap=%v seeded %d cells",
		bounds.MinX, bounds.MaxX, bounds.MinY, bounds.MaxY, bounds.WrapEdges, engine.LivingCellCount())

	start := time.Now()
	stats := ctl.RunHeadless(*generations)
	elapsed := time.Since(start)

	log.Printf("%s at generation %d: population %d stable=%v changed=%v (%s)",
		ctl.State(), stats.Generation, stats.Population, stats.Stable, stats.Changed, elapsed.Round(time.Microsecond))

	if *savePath != "" {
		snap := ctl.Snapshot()
		if err := pattern.Save(*savePath, pattern.FromPositions("final", snap.Cells)); err != nil {
			log.Fatalf("save pattern: %v", err)
		}
		log.Printf("wrote %d cells to %s", len(snap.Cells), *savePath)
	}
}
