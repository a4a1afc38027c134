package game

import "math"

// ChunkSize is the side length of a chunk in world units.
const ChunkSize = 256.0

// WorldPoint is a position in continuous world space.
type WorldPoint struct {
	X, Y float64
}

func (p WorldPoint) Dist(o WorldPoint) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// ChunkKey is the integer coordinate of a chunk.
type ChunkKey struct {
	X, Y int
}

// ChunkKeyOf returns the key of the chunk containing p.
func ChunkKeyOf(p WorldPoint) ChunkKey {
	return ChunkKey{
		X: int(math.Floor(p.X / ChunkSize)),
		Y: int(math.Floor(p.Y / ChunkSize)),
	}
}

// Chebyshev returns the Chebyshev (chessboard) distance to another key.
func (k ChunkKey) Chebyshev(o ChunkKey) int {
	return maxI(absI(k.X-o.X), absI(k.Y-o.Y))
}

// RoadSegment is a straight drivable strip with a width.
type RoadSegment struct {
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
}

// Contains reports whether the point lies within the drivable width.
func (r RoadSegment) Contains(p WorldPoint) bool {
	return segmentDistance(p.X, p.Y, r.X0, r.Y0, r.X1, r.Y1) <= r.Width/2
}

// Lake is an axis-aligned ellipse of water.
type Lake struct {
	X, Y   float64
	RX, RY float64
}

// Contains is a normalised-ellipse membership test.
func (l Lake) Contains(p WorldPoint) bool {
	dx := (p.X - l.X) / l.RX
	dy := (p.Y - l.Y) / l.RY
	return dx*dx+dy*dy <= 1
}

// Rock is a solid circular obstacle.
type Rock struct {
	X, Y float64
	R    float64
}

// DecorKind selects the cosmetic sprite family for a decoration.
type DecorKind int

const (
	DecorTree DecorKind = iota
	DecorCactus
	DecorBush
	DecorBoulderette
	DecorStreetlight
	DecorIceSpike
)

// Decoration is purely cosmetic and carries no collision semantics.
type Decoration struct {
	X, Y float64
	Size float64
	Kind DecorKind
	Col  RGB
}

// LandmarkKind selects the cosmetic set-piece placed rarely per chunk.
type LandmarkKind int

const (
	LandmarkWaterTower LandmarkKind = iota
	LandmarkObelisk
	LandmarkRuinedArch
	LandmarkRadioMast
)

// Landmark is a large cosmetic set-piece, no collision semantics.
type Landmark struct {
	X, Y float64
	Size float64
	Kind LandmarkKind
}

// Chunk owns all static content generated for one chunk coordinate. A chunk
// is immutable once generated: regenerating the same coordinate after an
// eviction yields identical geometry.
type Chunk struct {
	CX, CY int
	Biome  Biome

	Roads       []RoadSegment
	Lakes       []Lake
	Rocks       []Rock
	Decorations []Decoration
	Landmarks   []Landmark
}

func (c *Chunk) Key() ChunkKey {
	return ChunkKey{X: c.CX, Y: c.CY}
}

// Origin returns the world position of the chunk's min corner.
func (c *Chunk) Origin() WorldPoint {
	return WorldPoint{X: float64(c.CX) * ChunkSize, Y: float64(c.CY) * ChunkSize}
}

// Bounds returns the chunk's world-space rectangle.
func (c *Chunk) Bounds() RectF {
	o := c.Origin()
	return RectF{X0: o.X, Y0: o.Y, X1: o.X + ChunkSize, Y1: o.Y + ChunkSize}
}
