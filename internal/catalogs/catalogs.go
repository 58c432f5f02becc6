// Package catalogs loads the process-wide data catalogs: the block palette
// and the per-style prefab sets. Catalogs are loaded once at startup and are
// read-only afterwards.
package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Catalogs struct {
	Blocks  BlockCatalog
	Prefabs PrefabCatalog
}

type BlockCatalog struct {
	Palette       []string
	Index         map[string]uint16
	Defs          map[string]BlockDef
	PaletteDigest string
	DefsDigest    string

	liquid []bool
}

type BlockDef struct {
	ID     string `json:"id"`
	Solid  bool   `json:"solid"`
	Liquid bool   `json:"liquid,omitempty"`
}

// Liquid reports whether the palette id names a liquid block.
func (bc *BlockCatalog) Liquid(id uint16) bool {
	if int(id) >= len(bc.liquid) {
		return false
	}
	return bc.liquid[id]
}

type PrefabCatalog struct {
	Sets   []PrefabSet
	ByID   map[string]PrefabSet
	Digest string
}

// PrefabSet is one settlement style: its family, its starting piece, and its
// building pieces.
type PrefabSet struct {
	ID     string     `json:"id"`
	Family string     `json:"family"` // "desert" or "plains"
	Start  PieceDef   `json:"start"`
	Pieces []PieceDef `json:"pieces"`
}

// PieceDef describes one prefab piece. The block pattern is a char map:
// layers[y][z] is a string of length size[0] whose runes resolve through the
// palette to block ids.
type PieceDef struct {
	ID           string            `json:"id"`
	Size         [3]int            `json:"size"`
	Weight       int               `json:"weight"`
	MaxInstances int               `json:"max_instances,omitempty"`
	MoveToGround bool              `json:"move_to_ground"`
	Connectors   []ConnectorDef    `json:"connectors"`
	Palette      map[string]string `json:"palette,omitempty"`
	Layers       [][]string        `json:"layers,omitempty"`
}

type ConnectorDef struct {
	Pos  [3]int `json:"pos"`
	Dir  string `json:"dir"` // XM, XP, ZM, ZP
	Type int    `json:"type"`
}

func Load(configDir string) (*Catalogs, error) {
	var c Catalogs
	if err := loadBlocks(filepath.Join(configDir, "blocks.json"), &c.Blocks); err != nil {
		return nil, err
	}
	if err := loadPrefabs(filepath.Join(configDir, "prefabs"), &c.Prefabs); err != nil {
		return nil, err
	}
	return &c, nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func loadBlocks(path string, out *BlockCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out.DefsDigest = sha256Hex(raw)

	var defs []BlockDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("blocks.json: %w", err)
	}
	out.Defs = map[string]BlockDef{}
	for _, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("blocks.json: empty id")
		}
		out.Defs[d.ID] = d
	}

	ids := make([]string, 0, len(out.Defs))
	for id := range out.Defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// Ensure AIR exists and is palette id 0.
	if _, ok := out.Defs["AIR"]; !ok {
		return fmt.Errorf("blocks.json: missing AIR")
	}
	filtered := ids[:0]
	for _, id := range ids {
		if id != "AIR" {
			filtered = append(filtered, id)
		}
	}
	ids = append([]string{"AIR"}, filtered...)

	out.Palette = ids
	out.Index = make(map[string]uint16, len(ids))
	out.liquid = make([]bool, len(ids))
	for i, id := range ids {
		out.Index[id] = uint16(i)
		out.liquid[i] = out.Defs[id].Liquid
	}
	palJSON, _ := json.Marshal(ids)
	out.PaletteDigest = sha256Hex(palJSON)
	return nil
}

func loadPrefabs(dir string, out *PrefabCatalog) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	if len(files) == 0 {
		return fmt.Errorf("prefabs: no prefab sets in %s", dir)
	}

	out.ByID = map[string]PrefabSet{}
	h := sha256.New()
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		h.Write(raw)

		var set PrefabSet
		if err := json.Unmarshal(raw, &set); err != nil {
			return fmt.Errorf("prefabs/%s: %w", name, err)
		}
		if err := validateSet(&set); err != nil {
			return fmt.Errorf("prefabs/%s: %w", name, err)
		}
		if _, dup := out.ByID[set.ID]; dup {
			return fmt.Errorf("prefabs/%s: duplicate set id %q", name, set.ID)
		}
		out.Sets = append(out.Sets, set)
		out.ByID[set.ID] = set
	}
	out.Digest = hex.EncodeToString(h.Sum(nil))
	return nil
}

func validateSet(set *PrefabSet) error {
	if set.ID == "" {
		return fmt.Errorf("empty set id")
	}
	if set.Family != "desert" && set.Family != "plains" {
		return fmt.Errorf("set %s: unknown family %q", set.ID, set.Family)
	}
	if len(set.Pieces) == 0 {
		return fmt.Errorf("set %s: no pieces", set.ID)
	}
	if err := validatePiece(&set.Start); err != nil {
		return fmt.Errorf("set %s start: %w", set.ID, err)
	}
	for i := range set.Pieces {
		if err := validatePiece(&set.Pieces[i]); err != nil {
			return fmt.Errorf("set %s: %w", set.ID, err)
		}
	}
	return nil
}

func validatePiece(def *PieceDef) error {
	if def.ID == "" {
		return fmt.Errorf("empty piece id")
	}
	if def.Size[0] <= 0 || def.Size[1] <= 0 || def.Size[2] <= 0 {
		return fmt.Errorf("piece %s: bad size %v", def.ID, def.Size)
	}
	if def.Weight <= 0 {
		return fmt.Errorf("piece %s: weight must be positive", def.ID)
	}
	if len(def.Connectors) == 0 {
		return fmt.Errorf("piece %s: no connectors", def.ID)
	}
	for _, cd := range def.Connectors {
		if cd.Type == 0 {
			return fmt.Errorf("piece %s: connector type 0", def.ID)
		}
		switch cd.Dir {
		case "XM", "XP", "ZM", "ZP":
		default:
			return fmt.Errorf("piece %s: bad connector dir %q", def.ID, cd.Dir)
		}
		for i := 0; i < 3; i++ {
			if cd.Pos[i] < 0 || cd.Pos[i] >= def.Size[i] {
				return fmt.Errorf("piece %s: connector out of bounds at %v", def.ID, cd.Pos)
			}
		}
	}
	if len(def.Layers) > 0 {
		if len(def.Layers) != def.Size[1] {
			return fmt.Errorf("piece %s: %d layers for height %d", def.ID, len(def.Layers), def.Size[1])
		}
		for y, layer := range def.Layers {
			if len(layer) != def.Size[2] {
				return fmt.Errorf("piece %s: layer %d has %d rows, want %d", def.ID, y, len(layer), def.Size[2])
			}
			for z, row := range layer {
				if len(row) != def.Size[0] {
					return fmt.Errorf("piece %s: layer %d row %d is %d wide, want %d", def.ID, y, z, len(row), def.Size[0])
				}
			}
		}
	}
	return nil
}
