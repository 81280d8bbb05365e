package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"voxworld/internal/config"
	"voxworld/internal/logger"
	"voxworld/internal/profiling"
	"voxworld/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	steps := flag.Int("steps", 64, "blocks to walk along +x")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gen := world.NewGeneratorParams(cfg.World.Seed, world.GenParams{
		Scale:       cfg.Noise.Scale,
		BaseHeight:  cfg.Noise.BaseHeight,
		Amplitude:   cfg.Noise.Amplitude,
		Octaves:     cfg.Noise.Octaves,
		Persistence: cfg.Noise.Persistence,
		Lacunarity:  cfg.Noise.Lacunarity,
	})
	w := world.New(cfg.World.RenderDistance, gen)

	logger.Sugar.Infof("world ready: render distance %d, seed %d", cfg.World.RenderDistance, cfg.World.Seed)

	// Walk a viewpoint east and stream the viewport as it crosses chunk borders.
	for px := 0; px < *steps; px++ {
		meshes := w.ViewportMeshes(px, 0, false)
		if px%world.ChunkSizeX == 0 {
			logger.Sugar.Infof("x=%d: %d meshes in view, %d chunks resident", px, len(meshes), w.ChunkCount())
		}
	}

	// Pick the surface block under the final position.
	px := *steps - 1
	h, ok := w.HighestInColumn(px, 0)
	if !ok {
		logger.Sugar.Errorf("column (%d,0) not loaded", px)
		os.Exit(1)
	}

	origin := mgl32.Vec3{float32(px), float32(h) + 8, 0}
	hit, found := w.Raymarch(origin, mgl32.Vec3{0, -1, 0})
	if !found {
		logger.Sugar.Warnf("pick from %v found nothing", origin)
	} else {
		logger.Sugar.Infof("picked block %v (%s face)", hit.Pos, hit.Face)

		// Remove it and force a viewport refresh so the cache sees the edit.
		w.SetBlock(hit.Pos[0], hit.Pos[1], hit.Pos[2], world.BlockTypeAir)
		meshes := w.ViewportMeshes(px, 0, true)
		logger.Sugar.Infof("after edit: %d meshes in view", len(meshes))
	}

	logger.Sugar.Infof("timings: %s", profiling.Summary())
}
