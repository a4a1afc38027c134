package game

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimapSnapshot(t *testing.T) {
	store := emptyStore()
	injectChunk(store, &Chunk{
		CX: 0, CY: 0, Biome: BiomeForest,
		Roads: []RoadSegment{{X0: 0, Y0: 128, X1: 256, Y1: 128, Width: 20}},
		Lakes: []Lake{{X: 60, Y: 60, RX: 20, RY: 12}},
		Rocks: []Rock{{X: 200, Y: 40, R: 6}},
	})
	injectChunk(store, &Chunk{CX: 1, CY: 0, Biome: BiomeDesert})

	b, err := MinimapSnapshot(store)
	require.NoError(t, err)

	var snap struct {
		Chunks []struct {
			CX       int             `json:"cx"`
			CY       int             `json:"cy"`
			Biome    string          `json:"biome"`
			Geometry json.RawMessage `json:"geometry"`
		} `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(b, &snap))
	require.Len(t, snap.Chunks, 2)

	// Stable ordering: (0,0) before (1,0).
	assert.Equal(t, 0, snap.Chunks[0].CX)
	assert.Equal(t, "forest", snap.Chunks[0].Biome)
	assert.Equal(t, 1, snap.Chunks[1].CX)
	assert.Equal(t, "desert", snap.Chunks[1].Biome)

	// Geometry is GeoJSON with one entry per road, lake and rock.
	var gc struct {
		Type       string            `json:"type"`
		Geometries []json.RawMessage `json:"geometries"`
	}
	require.NoError(t, json.Unmarshal(snap.Chunks[0].Geometry, &gc))
	assert.Equal(t, "GeometryCollection", gc.Type)
	assert.Len(t, gc.Geometries, 3)
}

func TestMinimapSnapshotStable(t *testing.T) {
	cfg := DefaultConfig()
	build := func() *ChunkStore {
		store := NewChunkStore(NewGenerator(cfg), zerolog.Nop())
		store.EnsureLoaded(WorldPoint{}, 2)
		return store
	}

	a, err := MinimapSnapshot(build())
	require.NoError(t, err)
	b, err := MinimapSnapshot(build())
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical loaded sets must serialise identically")
}
