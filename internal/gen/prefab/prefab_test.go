package prefab

import (
	"testing"

	"villagegen/internal/catalogs"
	"villagegen/internal/gen/chunkdesc"
	"villagegen/internal/gen/piece"
)

func testBlockCatalog(t *testing.T) *catalogs.BlockCatalog {
	t.Helper()
	c, err := catalogs.Load("../../../configs")
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return &c.Blocks
}

func hutDef() *catalogs.PieceDef {
	return &catalogs.PieceDef{
		ID:           "hut",
		Size:         [3]int{3, 2, 2},
		Weight:       20,
		MaxInstances: 2,
		MoveToGround: true,
		Connectors: []catalogs.ConnectorDef{
			{Pos: [3]int{1, 0, 0}, Dir: "ZM", Type: -1},
		},
		Palette: map[string]string{"C": "COBBLESTONE", "P": "PLANKS"},
		Layers: [][]string{
			{"CCC", "CCC"},
			{"P.P", "PPP"},
		},
	}
}

func TestFromDef_ExpandsCharMap(t *testing.T) {
	p, err := FromDef(hutDef(), testBlockCatalog(t))
	if err != nil {
		t.Fatalf("FromDef: %v", err)
	}

	if p.Name() != "hut" || p.Size() != [3]int{3, 2, 2} {
		t.Fatalf("prefab identity wrong: %s %v", p.Name(), p.Size())
	}
	if p.Weight() != 20 || p.MaxInstances() != 2 || !p.ShouldMoveToGround() {
		t.Fatalf("prefab attributes wrong")
	}
	if len(p.Connectors()) != 1 || p.Connectors()[0].Dir != piece.DirZM {
		t.Fatalf("connectors not parsed: %+v", p.Connectors())
	}
	// 6 cobblestone below, 5 planks above ('.' stamps nothing).
	if len(p.blocks) != 11 {
		t.Fatalf("expanded %d blocks, want 11", len(p.blocks))
	}
	for _, b := range p.blocks {
		if b.Pos == [3]int{1, 1, 0} {
			t.Fatalf("air cell was expanded into a block")
		}
	}
}

func TestFromDef_UnknownPaletteEntries(t *testing.T) {
	bc := testBlockCatalog(t)

	def := hutDef()
	def.Layers[0][0] = "CXC"
	if _, err := FromDef(def, bc); err == nil {
		t.Fatalf("expected error for char outside the palette")
	}

	def = hutDef()
	def.Palette["C"] = "NO_SUCH_BLOCK"
	if _, err := FromDef(def, bc); err == nil {
		t.Fatalf("expected error for unknown block name")
	}
}

func TestDraw_StampsRotatedPattern(t *testing.T) {
	bc := testBlockCatalog(t)
	p, err := FromDef(hutDef(), bc)
	if err != nil {
		t.Fatalf("FromDef: %v", err)
	}
	cobble := bc.Index["COBBLESTONE"]
	planks := bc.Index["PLANKS"]

	ch := chunkdesc.New(0, 0)
	pp := piece.NewPlacedPiece(nil, p, [3]int{4, 60, 4}, 0, 0)
	p.Draw(ch, pp)

	if got := ch.GetBlock(4, 60, 4); got != cobble {
		t.Fatalf("base layer block = %d, want %d", got, cobble)
	}
	if got := ch.GetBlock(4, 61, 4); got != planks {
		t.Fatalf("upper layer block = %d, want %d", got, planks)
	}
	if got := ch.GetBlock(5, 61, 4); got != 0 {
		t.Fatalf("air cell overwrote the chunk: %d", got)
	}

	// One quarter turn swaps the footprint extents.
	ch2 := chunkdesc.New(0, 0)
	rpp := piece.NewPlacedPiece(nil, p, [3]int{4, 60, 4}, 1, 0)
	p.Draw(ch2, rpp)
	hb := rpp.HitBox()
	if hb.P2[0]-hb.P1[0] != 1 || hb.P2[2]-hb.P1[2] != 2 {
		t.Fatalf("rotated hitbox extents wrong: %+v", hb)
	}
	stamped := 0
	for _, b := range ch2.Blocks {
		if b != 0 {
			stamped++
		}
	}
	if stamped != 11 {
		t.Fatalf("rotated draw stamped %d blocks, want 11", stamped)
	}
}

func TestDraw_ClipsToChunk(t *testing.T) {
	bc := testBlockCatalog(t)
	p, err := FromDef(hutDef(), bc)
	if err != nil {
		t.Fatalf("FromDef: %v", err)
	}

	// Straddles the chunk border at x=16: columns 14..16, only 14..15 land.
	ch := chunkdesc.New(0, 0)
	pp := piece.NewPlacedPiece(nil, p, [3]int{14, 60, 4}, 0, 0)
	p.Draw(ch, pp)

	for z := 4; z <= 5; z++ {
		if got := ch.GetBlock(14, 60, z); got == 0 {
			t.Fatalf("in-chunk column (14,%d) not stamped", z)
		}
		if got := ch.GetBlock(15, 60, z); got == 0 {
			t.Fatalf("in-chunk column (15,%d) not stamped", z)
		}
	}
}
