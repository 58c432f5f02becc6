// Package prefab implements block-pattern pieces loaded from the prefab
// catalogs, plus the connector-indexed pool they are served from.
package prefab

import (
	"fmt"

	"villagegen/internal/catalogs"
	"villagegen/internal/gen/chunkdef"
	"villagegen/internal/gen/chunkdesc"
	"villagegen/internal/gen/piece"
)

// Block is one block of a prefab's pattern, in local coords.
type Block struct {
	Pos [3]int
	ID  uint16
}

// Prefab is an immutable piece template with a block pattern. A prefab with
// no blocks occupies its volume for collision purposes but stamps nothing;
// synthesized road segments use that form.
type Prefab struct {
	name         string
	size         [3]int
	connectors   []piece.Connector
	blocks       []Block
	weight       int
	maxInstances int
	moveToGround bool
}

func New(name string, size [3]int, connectors []piece.Connector, blocks []Block, weight, maxInstances int, moveToGround bool) *Prefab {
	return &Prefab{
		name:         name,
		size:         size,
		connectors:   connectors,
		blocks:       blocks,
		weight:       weight,
		maxInstances: maxInstances,
		moveToGround: moveToGround,
	}
}

func parseDir(s string) piece.Dir {
	switch s {
	case "XM":
		return piece.DirXM
	case "XP":
		return piece.DirXP
	case "ZM":
		return piece.DirZM
	default:
		return piece.DirZP
	}
}

// FromDef builds a prefab from a catalog definition, expanding the char-map
// block pattern through the block palette. The definition must have passed
// catalog validation.
func FromDef(def *catalogs.PieceDef, blocks *catalogs.BlockCatalog) (*Prefab, error) {
	conns := make([]piece.Connector, 0, len(def.Connectors))
	for _, cd := range def.Connectors {
		conns = append(conns, piece.Connector{Pos: cd.Pos, Dir: parseDir(cd.Dir), Type: cd.Type})
	}

	var pattern []Block
	for y, layer := range def.Layers {
		for z, row := range layer {
			for x, ch := range row {
				if ch == '.' {
					continue // air, not stamped
				}
				name, ok := def.Palette[string(ch)]
				if !ok {
					return nil, fmt.Errorf("prefab %s: char %q not in palette", def.ID, ch)
				}
				id, ok := blocks.Index[name]
				if !ok {
					return nil, fmt.Errorf("prefab %s: unknown block %q", def.ID, name)
				}
				pattern = append(pattern, Block{Pos: [3]int{x, y, z}, ID: id})
			}
		}
	}

	return New(def.ID, def.Size, conns, pattern, def.Weight, def.MaxInstances, def.MoveToGround), nil
}

func (p *Prefab) Name() string                  { return p.name }
func (p *Prefab) Connectors() []piece.Connector { return p.connectors }
func (p *Prefab) Size() [3]int                  { return p.size }
func (p *Prefab) ShouldMoveToGround() bool      { return p.moveToGround }
func (p *Prefab) Weight() int                   { return p.weight }
func (p *Prefab) MaxInstances() int             { return p.maxInstances }

// Draw stamps the prefab's block pattern into the chunk at the placed
// piece's position and rotation. Blocks outside the chunk are skipped.
func (p *Prefab) Draw(ch *chunkdesc.ChunkDesc, pp *piece.PlacedPiece) {
	ox := ch.CX * chunkdef.Width
	oz := ch.CZ * chunkdef.Width
	for _, b := range p.blocks {
		wx, wy, wz := pp.BlockPos(b.Pos[0], b.Pos[1], b.Pos[2])
		ch.SetBlockIfInside(wx-ox, wy, wz-oz, b.ID)
	}
}
