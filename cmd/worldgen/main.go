package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"villagegen/internal/catalogs"
	"villagegen/internal/gen/biomegen"
	"villagegen/internal/gen/chunkdesc"
	"villagegen/internal/gen/gridgen"
	"villagegen/internal/gen/heightgen"
	"villagegen/internal/gen/village"
	"villagegen/internal/genlog"
	"villagegen/internal/tuning"
)

func main() {
	var (
		seed       = flag.Int64("seed", 0, "world seed (0: use the tuning file's seed)")
		configDir  = flag.String("configs", "./configs", "config directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		centerCX   = flag.Int("cx", 0, "center chunk X")
		centerCZ   = flag.Int("cz", 0, "center chunk Z")
		radius     = flag.Int("radius", 16, "chunk radius to generate around the center")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[worldgen] ", log.LstdFlags|log.Lmicroseconds)

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}

	tp := *tuningPath
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	t, err := tuning.Load(tp)
	if err != nil {
		logger.Fatalf("load tuning: %v", err)
	}
	if *seed != 0 {
		t.Seed = *seed
	}

	biomeGen := biomegen.NewRegionGen(t.Seed, t.Terrain.BiomeRegionSize)
	heightGen := heightgen.NewNoiseGen(t.Seed, t.Terrain.BaseHeight, t.Terrain.Amplitude, t.Terrain.CellSize, t.Terrain.SeaLevel)

	vg, err := village.NewGen(village.Config{
		Seed:           t.Seed,
		MaxDepth:       t.Villages.MaxDepth,
		MaxSize:        t.Villages.MaxSize,
		MinDensity:     t.Villages.MinDensity,
		MaxDensity:     t.Villages.MaxDensity,
		RoadBlock:      t.Villages.RoadBlock,
		WaterRoadBlock: t.Villages.WaterRoadBlock,
	}, cats, biomeGen, heightGen)
	if err != nil {
		logger.Fatalf("village generator: %v", err)
	}

	glog, err := genlog.NewWriter(filepath.Join(*dataDir, "villages.jsonl.zst"))
	if err != nil {
		logger.Fatalf("open generation log: %v", err)
	}
	defer func() {
		if err := glog.Close(); err != nil {
			logger.Printf("close generation log: %v", err)
		}
	}()

	villages := 0
	pieces := 0
	vg.SetObserver(func(info village.Info) {
		villages++
		pieces += info.Pieces
		if err := glog.Write(info); err != nil {
			logger.Printf("log village: %v", err)
		}
		logger.Printf("village style=%s origin=(%d,%d) density=%d pieces=%d",
			info.Style, info.OriginX, info.OriginZ, info.Density, info.Pieces)
	})

	tb := chunkdesc.TerrainBlocks{
		Stone: cats.Blocks.Index["STONE"],
		Dirt:  cats.Blocks.Index["DIRT"],
		Grass: cats.Blocks.Index["GRASS"],
		Sand:  cats.Blocks.Index["SAND"],
		Water: cats.Blocks.Index["WATER"],
	}

	grid := gridgen.NewGrid(t.Seed, vg, t.Villages.GridSize, t.Villages.MaxOffset, t.Villages.MaxSize)

	chunks := 0
	for cz := *centerCZ - *radius; cz <= *centerCZ+*radius; cz++ {
		for cx := *centerCX - *radius; cx <= *centerCX+*radius; cx++ {
			ch := chunkdesc.New(cx, cz)
			ch.FillTerrain(biomeGen.GenBiomes(cx, cz), heightGen.TerrainHeight, t.Terrain.SeaLevel, tb)
			grid.GenStructures(ch)
			chunks++
		}
	}

	logger.Printf("done: seed=%d chunks=%d villages=%d pieces=%d", t.Seed, chunks, villages, pieces)
}
