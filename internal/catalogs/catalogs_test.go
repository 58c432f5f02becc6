package catalogs

import "testing"

func TestLoad_Blocks(t *testing.T) {
	c, err := Load("../../configs")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Blocks.Palette[0] != "AIR" {
		t.Fatalf("palette[0] = %s, want AIR", c.Blocks.Palette[0])
	}
	if id := c.Blocks.Index["AIR"]; id != 0 {
		t.Fatalf("AIR index = %d, want 0", id)
	}
	for _, name := range []string{"GRAVEL", "PLANKS", "WATER", "SANDSTONE", "COBBLESTONE"} {
		if _, ok := c.Blocks.Index[name]; !ok {
			t.Fatalf("palette missing %s", name)
		}
	}

	if !c.Blocks.Liquid(c.Blocks.Index["WATER"]) {
		t.Fatalf("WATER must be liquid")
	}
	if !c.Blocks.Liquid(c.Blocks.Index["LAVA"]) {
		t.Fatalf("LAVA must be liquid")
	}
	if c.Blocks.Liquid(c.Blocks.Index["GRAVEL"]) {
		t.Fatalf("GRAVEL must not be liquid")
	}
	if c.Blocks.Liquid(9999) {
		t.Fatalf("out-of-palette id must not be liquid")
	}

	if c.Blocks.PaletteDigest == "" || c.Blocks.DefsDigest == "" {
		t.Fatalf("block digests not computed")
	}
}

func TestLoad_PrefabSets(t *testing.T) {
	c, err := Load("../../configs")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Prefabs.Sets) != 5 {
		t.Fatalf("loaded %d prefab sets, want 5", len(c.Prefabs.Sets))
	}
	families := map[string]int{}
	for _, set := range c.Prefabs.Sets {
		families[set.Family]++
		if got, ok := c.Prefabs.ByID[set.ID]; !ok || got.ID != set.ID {
			t.Fatalf("set %s not indexed by id", set.ID)
		}
		if len(set.Start.Connectors) == 0 {
			t.Fatalf("set %s: starting piece has no connectors", set.ID)
		}
		if !set.Start.MoveToGround {
			t.Fatalf("set %s: starting piece must be ground-anchored", set.ID)
		}
	}
	if families["desert"] == 0 || families["plains"] == 0 {
		t.Fatalf("want styles in both families, got %v", families)
	}
	if c.Prefabs.Digest == "" {
		t.Fatalf("prefab digest not computed")
	}
}

func TestValidatePiece_Rejections(t *testing.T) {
	good := func() PieceDef {
		return PieceDef{
			ID:     "hut",
			Size:   [3]int{3, 2, 3},
			Weight: 10,
			Connectors: []ConnectorDef{
				{Pos: [3]int{1, 0, 0}, Dir: "ZM", Type: -1},
			},
		}
	}

	cases := []struct {
		name   string
		mutate func(*PieceDef)
	}{
		{"zero_connector_type", func(d *PieceDef) { d.Connectors[0].Type = 0 }},
		{"bad_dir", func(d *PieceDef) { d.Connectors[0].Dir = "YP" }},
		{"connector_out_of_bounds", func(d *PieceDef) { d.Connectors[0].Pos = [3]int{3, 0, 0} }},
		{"no_connectors", func(d *PieceDef) { d.Connectors = nil }},
		{"zero_weight", func(d *PieceDef) { d.Weight = 0 }},
		{"bad_size", func(d *PieceDef) { d.Size[1] = 0 }},
		{"layer_count_mismatch", func(d *PieceDef) { d.Layers = [][]string{{"...", "...", "..."}} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := good()
			tc.mutate(&def)
			if err := validatePiece(&def); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	def := good()
	if err := validatePiece(&def); err != nil {
		t.Fatalf("valid piece rejected: %v", err)
	}
}
