package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectChunk places hand-built geometry into a store, bypassing the
// generator, so surface tests are independent of generation tuning.
func injectChunk(store *ChunkStore, c *Chunk) {
	store.chunks[c.Key()] = c
	store.indexStale = true
}

func emptyStore() *ChunkStore {
	return NewChunkStore(NewGenerator(DefaultConfig()), zerolog.Nop())
}

func TestOnRoad(t *testing.T) {
	cfg := DefaultConfig()
	store := emptyStore()
	q := NewSurfaceQuery(store, cfg)

	injectChunk(store, &Chunk{
		CX: 0, CY: 0,
		Roads: []RoadSegment{{X0: 0, Y0: 128, X1: 256, Y1: 128, Width: 20}},
	})

	tests := []struct {
		name string
		p    WorldPoint
		want bool
	}{
		{"center of road", WorldPoint{X: 100, Y: 128}, true},
		{"edge of width", WorldPoint{X: 100, Y: 138}, true},
		{"just past width", WorldPoint{X: 100, Y: 138.5}, false},
		{"far off road", WorldPoint{X: 100, Y: 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.OnRoad(tt.p))
		})
	}
}

func TestOnRoadAcrossChunkBorder(t *testing.T) {
	// Road lives in chunk (0,0) but its width reaches a point whose own
	// chunk is (0,-1); the neighbourhood scan must still find it.
	cfg := DefaultConfig()
	store := emptyStore()
	q := NewSurfaceQuery(store, cfg)

	injectChunk(store, &Chunk{
		CX: 0, CY: 0,
		Roads: []RoadSegment{{X0: 0, Y0: 2, X1: 256, Y1: 2, Width: 20}},
	})
	injectChunk(store, &Chunk{CX: 0, CY: -1})

	assert.True(t, q.OnRoad(WorldPoint{X: 50, Y: -4}))
}

func TestInLake(t *testing.T) {
	store := emptyStore()
	q := NewSurfaceQuery(store, DefaultConfig())
	injectChunk(store, &Chunk{
		CX: 0, CY: 0,
		Lakes: []Lake{{X: 128, Y: 128, RX: 40, RY: 20}},
	})

	assert.True(t, q.InLake(WorldPoint{X: 128, Y: 128}))
	assert.True(t, q.InLake(WorldPoint{X: 160, Y: 128}))  // inside on major axis
	assert.False(t, q.InLake(WorldPoint{X: 128, Y: 160})) // outside on minor axis
	assert.False(t, q.InLake(WorldPoint{X: 10, Y: 10}))
}

func TestUnloadedRegionHasNoConstraints(t *testing.T) {
	store := emptyStore()
	q := NewSurfaceQuery(store, DefaultConfig())

	// Nothing loaded: not an error, just "no constraint".
	p := WorldPoint{X: 1e7, Y: -1e7}
	assert.False(t, q.OnRoad(p))
	assert.False(t, q.InLake(p))
	assert.Empty(t, q.NearbyRocks(p, 100, nil))

	s := q.SurfaceAt(p)
	assert.Equal(t, SurfaceOffroad, s.Kind)
}

func TestNearbyRocks(t *testing.T) {
	store := emptyStore()
	q := NewSurfaceQuery(store, DefaultConfig())
	injectChunk(store, &Chunk{
		CX: 0, CY: 0,
		Rocks: []Rock{
			{X: 100, Y: 100, R: 10},
			{X: 200, Y: 200, R: 5},
		},
	})

	got := q.NearbyRocks(WorldPoint{X: 90, Y: 100}, 5, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].X)

	// Query radius plus rock radius reaches the second rock too.
	got = q.NearbyRocks(WorldPoint{X: 150, Y: 150}, 80, nil)
	assert.Len(t, got, 2)
}

func TestSurfaceAtPriority(t *testing.T) {
	cfg := DefaultConfig()
	store := emptyStore()
	q := NewSurfaceQuery(store, cfg)

	// A lake overlapping a road: water wins.
	injectChunk(store, &Chunk{
		CX: 0, CY: 0,
		Roads: []RoadSegment{{X0: 0, Y0: 128, X1: 256, Y1: 128, Width: 20}},
		Lakes: []Lake{{X: 128, Y: 128, RX: 30, RY: 30}},
	})

	tests := []struct {
		name string
		p    WorldPoint
		want SurfaceKind
	}{
		{"in lake over road", WorldPoint{X: 128, Y: 128}, SurfaceLake},
		{"on road clear of lake", WorldPoint{X: 20, Y: 128}, SurfaceRoad},
		{"plain ground", WorldPoint{X: 20, Y: 20}, SurfaceOffroad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := q.SurfaceAt(tt.p)
			assert.Equal(t, tt.want, s.Kind)
			assert.Greater(t, s.SpeedMul, 0.0)
			assert.Greater(t, s.GripMul, 0.0)
		})
	}

	// Road grants strictly better speed and grip than off-road; water is
	// worst on both.
	road := q.SurfaceAt(WorldPoint{X: 20, Y: 128})
	off := q.SurfaceAt(WorldPoint{X: 20, Y: 20})
	lake := q.SurfaceAt(WorldPoint{X: 128, Y: 128})
	assert.Greater(t, road.SpeedMul, off.SpeedMul)
	assert.Greater(t, off.SpeedMul, lake.SpeedMul)
	assert.Greater(t, road.GripMul, off.GripMul)
	assert.Greater(t, off.GripMul, lake.GripMul)
}
