package game

import "fmt"

// Generator produces chunk content deterministically from the chunk
// coordinate. It holds no mutable state of its own; all variation comes
// from the per-chunk seed, so chunks can be generated in any order and
// regenerated after eviction with identical results.
//
// The RNG consumption order per chunk is fixed and part of the world
// contract: lake roll, lake placements, rock count, rock placements,
// decoration count, decoration placements, landmark roll, landmark
// placement. Reordering these draws changes every world.
type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// floorMod is a modulo that stays non-negative for negative coordinates,
// so road rules agree on both sides of the axes.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// GenerateChunk builds the chunk at (cx, cy).
func (g *Generator) GenerateChunk(cx, cy int) *Chunk {
	seed := hashCoords(cx, cy)
	rand := NewRand(seed)

	ox := float64(cx) * ChunkSize
	oy := float64(cy) * ChunkSize

	c := &Chunk{
		CX:    cx,
		CY:    cy,
		Biome: BiomeAt(ox+ChunkSize/2, oy+ChunkSize/2),
	}

	g.layRoads(c, ox, oy)
	g.placeLake(c, rand, ox, oy)
	g.placeRocks(c, rand, ox, oy)
	g.scatterDecorations(c, rand, ox, oy)
	g.placeLandmark(c, rand, ox, oy)

	for _, r := range c.Rocks {
		if r.R <= 0 {
			panic(fmt.Sprintf("generator produced zero-radius rock in chunk (%d,%d)", cx, cy))
		}
	}
	return c
}

// layRoads places grid-aligned road segments from pure modulo rules on the
// chunk coordinate. The neighbouring chunk runs the same test on the same
// coordinate component, so segments are contiguous across edges without
// any cross-chunk communication.
func (g *Generator) layRoads(c *Chunk, ox, oy float64) {
	w := g.cfg.RoadWidth
	if floorMod(c.CY, 3) == 0 {
		mid := oy + ChunkSize/2
		c.Roads = append(c.Roads, RoadSegment{
			X0: ox, Y0: mid, X1: ox + ChunkSize, Y1: mid, Width: w,
		})
	}
	if floorMod(c.CX, 4) == 0 {
		mid := ox + ChunkSize/2
		c.Roads = append(c.Roads, RoadSegment{
			X0: mid, Y0: oy, X1: mid, Y1: oy + ChunkSize, Width: w,
		})
	}
}

// roadClear reports whether a feature of the given radius at (x,y) keeps
// the configured clearance from every road in the chunk. The margin is
// fixed (plus the road half-width); it does not scale with difficulty.
func (g *Generator) roadClear(c *Chunk, x, y, radius float64) bool {
	for _, r := range c.Roads {
		min := radius + r.Width/2 + g.cfg.RoadClearance
		if segmentDistance(x, y, r.X0, r.Y0, r.X1, r.Y1) < min {
			return false
		}
	}
	return true
}

func lakeClear(c *Chunk, x, y, radius float64) bool {
	for _, l := range c.Lakes {
		dx := (x - l.X) / (l.RX + radius)
		dy := (y - l.Y) / (l.RY + radius)
		if dx*dx+dy*dy <= 1 {
			return false
		}
	}
	return true
}

// placeLake rejection-samples at most one lake, discarding candidates too
// close to a road so the network stays drivable.
func (g *Generator) placeLake(c *Chunk, rand *Rand, ox, oy float64) {
	if rand.Float64() >= g.cfg.LakeChance {
		return
	}
	for try := 0; try < g.cfg.PlacementTries; try++ {
		rx := rand.RangeF(g.cfg.LakeMinR, g.cfg.LakeMaxR)
		ry := rand.RangeF(g.cfg.LakeMinR, g.cfg.LakeMaxR)
		x := ox + rand.RangeF(rx, ChunkSize-rx)
		y := oy + rand.RangeF(ry, ChunkSize-ry)
		if !g.roadClear(c, x, y, maxF(rx, ry)) {
			continue
		}
		c.Lakes = append(c.Lakes, Lake{X: x, Y: y, RX: rx, RY: ry})
		return
	}
}

// placeRocks rejection-samples solid obstacles away from roads and lakes.
func (g *Generator) placeRocks(c *Chunk, rand *Rand, ox, oy float64) {
	n := rand.Intn(g.cfg.RockMaxCount + 1)
	for i := 0; i < n; i++ {
		for try := 0; try < g.cfg.PlacementTries; try++ {
			r := rand.RangeF(g.cfg.RockMinR, g.cfg.RockMaxR)
			x := ox + rand.RangeF(r, ChunkSize-r)
			y := oy + rand.RangeF(r, ChunkSize-r)
			if !g.roadClear(c, x, y, r) || !lakeClear(c, x, y, r) {
				continue
			}
			c.Rocks = append(c.Rocks, Rock{X: x, Y: y, R: r})
			break
		}
	}
}

func decorKindFor(b Biome, roll float64) DecorKind {
	switch b {
	case BiomeDesert:
		if roll < 0.7 {
			return DecorCactus
		}
		return DecorBoulderette
	case BiomeBeach:
		if roll < 0.6 {
			return DecorBush
		}
		return DecorTree
	case BiomeForest:
		if roll < 0.8 {
			return DecorTree
		}
		return DecorBush
	case BiomeCity:
		if roll < 0.5 {
			return DecorStreetlight
		}
		return DecorTree
	case BiomeSnow:
		if roll < 0.6 {
			return DecorIceSpike
		}
		return DecorTree
	default: // volcanic
		return DecorBoulderette
	}
}

// scatterDecorations places cosmetic props with no placement constraints;
// they carry no collision semantics so overlap with anything is fine.
func (g *Generator) scatterDecorations(c *Chunk, rand *Rand, ox, oy float64) {
	pal := c.Biome.Palette()
	n := g.cfg.DecorCount + rand.Intn(g.cfg.DecorCount/2+1)
	for i := 0; i < n; i++ {
		x := ox + rand.RangeF(0, ChunkSize)
		y := oy + rand.RangeF(0, ChunkSize)
		size := rand.RangeF(3, 9)
		kind := decorKindFor(c.Biome, rand.Float64())
		jitter := rand.Intn(25) - 12
		c.Decorations = append(c.Decorations, Decoration{
			X: x, Y: y, Size: size, Kind: kind,
			Col: pal.Decor.Add(jitter, jitter, jitter),
		})
	}
}

// placeLandmark rarely drops one large set-piece, with the same road and
// lake clearance as lakes use.
func (g *Generator) placeLandmark(c *Chunk, rand *Rand, ox, oy float64) {
	if rand.Float64() >= g.cfg.LandmarkChance {
		return
	}
	for try := 0; try < g.cfg.PlacementTries; try++ {
		size := rand.RangeF(30, 70)
		x := ox + rand.RangeF(size, ChunkSize-size)
		y := oy + rand.RangeF(size, ChunkSize-size)
		kind := LandmarkKind(rand.Intn(4))
		if !g.roadClear(c, x, y, size) || !lakeClear(c, x, y, size) {
			continue
		}
		c.Landmarks = append(c.Landmarks, Landmark{X: x, Y: y, Size: size, Kind: kind})
		return
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
