package game

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/peterstace/simplefeatures/geom"
)

// MinimapChunk is one loaded chunk flattened for the out-of-scope minimap:
// biome name plus a GeoJSON geometry collection of roads (line strings),
// lakes (closed rings) and rocks (points).
type MinimapChunk struct {
	CX       int             `json:"cx"`
	CY       int             `json:"cy"`
	Biome    string          `json:"biome"`
	Geometry json.RawMessage `json:"geometry"`
}

// MinimapSnapshot serialises the currently loaded chunk set. Strictly
// read-only over the store; chunk order is stable so identical loaded sets
// produce identical bytes.
func MinimapSnapshot(store *ChunkStore) ([]byte, error) {
	chunks := store.Loaded()
	sort.Slice(chunks, func(i, j int) bool {
		if chunks[i].CY != chunks[j].CY {
			return chunks[i].CY < chunks[j].CY
		}
		return chunks[i].CX < chunks[j].CX
	})

	out := make([]MinimapChunk, 0, len(chunks))
	for _, c := range chunks {
		g, err := chunkGeometry(c)
		if err != nil {
			return nil, fmt.Errorf("chunk (%d,%d): %w", c.CX, c.CY, err)
		}
		out = append(out, MinimapChunk{
			CX:       c.CX,
			CY:       c.CY,
			Biome:    c.Biome.String(),
			Geometry: g,
		})
	}

	return json.Marshal(struct {
		Chunks []MinimapChunk `json:"chunks"`
	}{Chunks: out})
}

func chunkGeometry(c *Chunk) (json.RawMessage, error) {
	gs := make([]geom.Geometry, 0, len(c.Roads)+len(c.Lakes)+len(c.Rocks))

	for _, r := range c.Roads {
		seq := geom.NewSequence([]float64{r.X0, r.Y0, r.X1, r.Y1}, geom.DimXY)
		gs = append(gs, geom.NewLineString(seq).AsGeometry())
	}
	for _, l := range c.Lakes {
		gs = append(gs, ellipseRing(l).AsGeometry())
	}
	for _, r := range c.Rocks {
		pt := geom.NewPoint(geom.Coordinates{
			XY:   geom.XY{X: r.X, Y: r.Y},
			Type: geom.DimXY,
		})
		gs = append(gs, pt.AsGeometry())
	}

	gc := geom.NewGeometryCollection(gs)
	b, err := json.Marshal(gc.AsGeometry())
	if err != nil {
		return nil, fmt.Errorf("marshaling geometry: %w", err)
	}
	return b, nil
}

// ellipseRing approximates a lake outline as a closed 24-segment ring.
func ellipseRing(l Lake) geom.LineString {
	const segments = 24
	coords := make([]float64, 0, (segments+1)*2)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i%segments) / segments
		coords = append(coords, l.X+l.RX*math.Cos(a), l.Y+l.RY*math.Sin(a))
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}
