// Package tuning loads the generator tuning file.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Seed int64 `yaml:"seed"`

	Terrain  Terrain  `yaml:"terrain"`
	Villages Villages `yaml:"villages"`
}

type Terrain struct {
	BiomeRegionSize int `yaml:"biome_region_size"`
	BaseHeight      int `yaml:"base_height"`
	Amplitude       int `yaml:"amplitude"`
	CellSize        int `yaml:"cell_size"`
	SeaLevel        int `yaml:"sea_level"`
}

type Villages struct {
	GridSize       int    `yaml:"grid_size"`
	MaxOffset      int    `yaml:"max_offset"`
	MaxDepth       int    `yaml:"max_depth"`
	MaxSize        int    `yaml:"max_size"`
	MinDensity     int    `yaml:"min_density"`
	MaxDensity     int    `yaml:"max_density"`
	RoadBlock      string `yaml:"road_block"`
	WaterRoadBlock string `yaml:"water_road_block"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}
