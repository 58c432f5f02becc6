package village

import (
	"fmt"

	"villagegen/internal/catalogs"
	"villagegen/internal/gen/biomegen"
	"villagegen/internal/gen/chunkdef"
	"villagegen/internal/gen/gridgen"
	"villagegen/internal/gen/heightgen"
	"villagegen/internal/gen/mathx"
)

// Config is the construction-time configuration of the village generator.
type Config struct {
	Seed           int64
	MaxDepth       int
	MaxSize        int
	MinDensity     int
	MaxDensity     int
	RoadBlock      string
	WaterRoadBlock string
}

// Info summarizes one created village, for observers such as the generation
// log.
type Info struct {
	GridX   int    `json:"grid_x"`
	GridZ   int    `json:"grid_z"`
	OriginX int    `json:"origin_x"`
	OriginZ int    `json:"origin_z"`
	Style   string `json:"style"`
	Density int    `json:"density"`
	Pieces  int    `json:"pieces"`
}

// Gen decides per grid cell whether a village exists, which style it takes,
// and builds it. The style registry is fixed at construction; CreateStructure
// is a pure function of seed and coordinates and is safe to call from
// independent goroutines for different cells.
type Gen struct {
	seed       int64
	maxDepth   int
	maxSize    int
	minDensity int
	maxDensity int

	biomeGen  biomegen.Source
	heightGen heightgen.Source

	desertPools []*PiecePool
	plainsPools []*PiecePool

	roadBlock      uint16
	waterRoadBlock uint16
	isLiquid       func(uint16) bool

	observer func(Info)
}

// NewGen builds the style registry from the prefab catalogs. A prefab set
// with no pieces or without exactly one starting piece is a configuration
// error and fails here, at startup, never at generation time.
func NewGen(cfg Config, cats *catalogs.Catalogs, biomeGen biomegen.Source, heightGen heightgen.Source) (*Gen, error) {
	g := &Gen{
		seed:       cfg.Seed,
		maxDepth:   cfg.MaxDepth,
		maxSize:    cfg.MaxSize,
		minDensity: cfg.MinDensity,
		maxDensity: cfg.MaxDensity,
		biomeGen:   biomeGen,
		heightGen:  heightGen,
		isLiquid:   cats.Blocks.Liquid,
	}

	var ok bool
	if g.roadBlock, ok = cats.Blocks.Index[cfg.RoadBlock]; !ok {
		return nil, fmt.Errorf("village: unknown road block %q", cfg.RoadBlock)
	}
	if g.waterRoadBlock, ok = cats.Blocks.Index[cfg.WaterRoadBlock]; !ok {
		return nil, fmt.Errorf("village: unknown water road block %q", cfg.WaterRoadBlock)
	}

	for i := range cats.Prefabs.Sets {
		set := &cats.Prefabs.Sets[i]
		pool, err := NewPiecePool(set, &cats.Blocks)
		if err != nil {
			return nil, err
		}
		switch set.Family {
		case "desert":
			g.desertPools = append(g.desertPools, pool)
		case "plains":
			g.plainsPools = append(g.plainsPools, pool)
		}
	}
	if len(g.desertPools) == 0 || len(g.plainsPools) == 0 {
		return nil, fmt.Errorf("village: need at least one style per family (desert=%d plains=%d)", len(g.desertPools), len(g.plainsPools))
	}
	return g, nil
}

// SetObserver registers a callback invoked for every village created. The
// callback must be safe for concurrent use if CreateStructure is.
func (g *Gen) SetObserver(fn func(Info)) { g.observer = fn }

// styleFamily maps a biome to its settlement style family; ok is false for
// village-unfriendly biomes.
func styleFamily(b biomegen.Biome) (family string, ok bool) {
	switch b {
	case biomegen.Desert, biomegen.DesertM:
		return "desert", true
	case biomegen.Plains, biomegen.Savanna, biomegen.SavannaM, biomegen.SunflowerPlains:
		return "plains", true
	default:
		return "", false
	}
}

// CreateStructure samples the biomes of the chunk around the origin and, if
// every sampled biome agrees on one village-friendly style family, builds a
// village there. Returns nil when the location is rejected.
func (g *Gen) CreateStructure(gridX, gridZ, originX, originZ int) gridgen.Structure {
	cx, cz := chunkdef.BlockToChunk(originX, originZ)
	biomes := g.biomeGen.GenBiomes(cx, cz)

	// One unfriendly biome in the sample means an unfriendly biome is too
	// close; mixed families would straddle incompatible terrain. Both
	// reject the cell.
	family := ""
	for i := range biomes {
		f, ok := styleFamily(biomes[i])
		if !ok {
			return nil
		}
		if family == "" {
			family = f
		} else if family != f {
			return nil
		}
	}

	rnd := int(mathx.Hash2(g.seed+1000, originX, originZ) >> 3)
	var pool *PiecePool
	switch family {
	case "desert":
		pool = g.desertPools[rnd%len(g.desertPools)]
	default:
		pool = g.plainsPools[rnd%len(g.plainsPools)]
	}

	density := g.minDensity
	if g.maxDensity > g.minDensity {
		density = g.minDensity + rnd%(g.maxDensity-g.minDensity)
	}

	v := newVillage(g.seed, originX, originZ, g.maxDepth, g.maxSize, density, pool, g.heightGen, g.roadBlock, g.waterRoadBlock, g.isLiquid)
	if g.observer != nil {
		g.observer(Info{
			GridX:   gridX,
			GridZ:   gridZ,
			OriginX: originX,
			OriginZ: originZ,
			Style:   v.Style(),
			Density: v.Density(),
			Pieces:  len(v.Pieces()),
		})
	}
	return v
}
