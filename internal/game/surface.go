package game

// SurfaceKind classifies what a vehicle is driving on.
type SurfaceKind int

const (
	SurfaceRoad SurfaceKind = iota
	SurfaceOffroad
	SurfaceLake
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceRoad:
		return "road"
	case SurfaceOffroad:
		return "offroad"
	case SurfaceLake:
		return "lake"
	}
	return "unknown"
}

// Surface is the traction the ground grants this tick.
type Surface struct {
	Kind     SurfaceKind
	SpeedMul float64
	GripMul  float64
}

// SurfaceQuery answers point queries against the currently loaded chunk
// set. It never triggers generation: a point whose chunk is not resident
// simply has no constraints (off-road, no obstacles), which is the normal
// situation at the loading frontier.
type SurfaceQuery struct {
	store *ChunkStore
	cfg   Config
}

func NewSurfaceQuery(store *ChunkStore, cfg Config) *SurfaceQuery {
	return &SurfaceQuery{store: store, cfg: cfg}
}

// chunksNear visits the 3×3 chunk neighbourhood of p. Road widths and rock
// radii are far smaller than a chunk, so geometry that can affect p always
// lives in one of these chunks.
func (q *SurfaceQuery) chunksNear(p WorldPoint, fn func(*Chunk)) {
	center := ChunkKeyOf(p)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if c, ok := q.store.ChunkAt(ChunkKey{X: center.X + dx, Y: center.Y + dy}); ok {
				fn(c)
			}
		}
	}
}

// OnRoad reports whether p lies within the drivable width of any loaded
// road segment.
func (q *SurfaceQuery) OnRoad(p WorldPoint) bool {
	on := false
	q.chunksNear(p, func(c *Chunk) {
		if on {
			return
		}
		for _, r := range c.Roads {
			if r.Contains(p) {
				on = true
				return
			}
		}
	})
	return on
}

// InLake reports whether p lies inside any loaded lake ellipse.
func (q *SurfaceQuery) InLake(p WorldPoint) bool {
	in := false
	q.chunksNear(p, func(c *Chunk) {
		if in {
			return
		}
		for _, l := range c.Lakes {
			if l.Contains(p) {
				in = true
				return
			}
		}
	})
	return in
}

// NearbyRocks appends loaded rocks whose circles come within radius of p.
func (q *SurfaceQuery) NearbyRocks(p WorldPoint, radius float64, out []Rock) []Rock {
	q.chunksNear(p, func(c *Chunk) {
		for _, r := range c.Rocks {
			if p.Dist(WorldPoint{X: r.X, Y: r.Y}) <= radius+r.R {
				out = append(out, r)
			}
		}
	})
	return out
}

// SurfaceAt resolves the traction multipliers under p. Water overrides
// everything; otherwise road beats off-road. Evaluated fresh every tick —
// never cached, since the boundary moves relative to the vehicle each
// step.
func (q *SurfaceQuery) SurfaceAt(p WorldPoint) Surface {
	if q.InLake(p) {
		return Surface{Kind: SurfaceLake, SpeedMul: q.cfg.LakeSpeedMul, GripMul: q.cfg.LakeGripMul}
	}
	if q.OnRoad(p) {
		return Surface{Kind: SurfaceRoad, SpeedMul: q.cfg.RoadSpeedMul, GripMul: q.cfg.RoadGripMul}
	}
	return Surface{Kind: SurfaceOffroad, SpeedMul: q.cfg.OffroadSpeedMul, GripMul: q.cfg.OffroadGripMul}
}
