package game

import (
	"github.com/rs/zerolog"
)

// ChunkStore is the cache of generated chunks around the player. Eviction
// is purely spatial: a chunk is dropped when its Chebyshev distance from
// the player's chunk exceeds twice the render distance. The store is
// mutated only by EnsureLoaded and Clear, called from the single
// simulation goroutine; everything else reads.
type ChunkStore struct {
	gen    *Generator
	chunks map[ChunkKey]*Chunk
	log    zerolog.Logger

	index      *quadNode
	indexStale bool
}

func NewChunkStore(gen *Generator, log zerolog.Logger) *ChunkStore {
	return &ChunkStore{
		gen:    gen,
		chunks: make(map[ChunkKey]*Chunk),
		log:    log,
	}
}

// EnsureLoaded generates every chunk within renderDistance (Chebyshev) of
// the player's chunk and evicts chunks beyond 2×renderDistance. Calling it
// again with an unchanged player chunk is a no-op.
func (s *ChunkStore) EnsureLoaded(p WorldPoint, renderDistance int) {
	center := ChunkKeyOf(p)

	loaded := 0
	for dy := -renderDistance; dy <= renderDistance; dy++ {
		for dx := -renderDistance; dx <= renderDistance; dx++ {
			key := ChunkKey{X: center.X + dx, Y: center.Y + dy}
			if _, ok := s.chunks[key]; ok {
				continue
			}
			s.chunks[key] = s.gen.GenerateChunk(key.X, key.Y)
			loaded++
		}
	}

	evicted := 0
	for key := range s.chunks {
		if center.Chebyshev(key) > 2*renderDistance {
			delete(s.chunks, key)
			evicted++
		}
	}

	if loaded > 0 || evicted > 0 {
		s.indexStale = true
		s.log.Debug().
			Int("loaded", loaded).
			Int("evicted", evicted).
			Int("resident", len(s.chunks)).
			Int("cx", center.X).
			Int("cy", center.Y).
			Msg("chunk store updated")
	}
}

// ChunkAt returns the loaded chunk for the key, if resident. It never
// generates.
func (s *ChunkStore) ChunkAt(key ChunkKey) (*Chunk, bool) {
	c, ok := s.chunks[key]
	return c, ok
}

// ChunkContaining returns the loaded chunk under a world point, if any.
func (s *ChunkStore) ChunkContaining(p WorldPoint) (*Chunk, bool) {
	return s.ChunkAt(ChunkKeyOf(p))
}

// Loaded returns the current resident set. Read-only contract: callers
// (renderer, minimap) must not mutate chunks.
func (s *ChunkStore) Loaded() []*Chunk {
	out := make([]*Chunk, 0, len(s.chunks))
	for _, c := range s.chunks {
		out = append(out, c)
	}
	return out
}

func (s *ChunkStore) Len() int {
	return len(s.chunks)
}

// Clear drops every resident chunk. Content is coordinate-derived, so a
// later reload reproduces it exactly.
func (s *ChunkStore) Clear() {
	s.chunks = make(map[ChunkKey]*Chunk)
	s.indexStale = true
}

// VisibleChunks returns keys of loaded chunks intersecting the view rect,
// using a quadtree rebuilt lazily after the loaded set changes.
func (s *ChunkStore) VisibleChunks(view RectF, out []ChunkKey) []ChunkKey {
	if s.index == nil || s.indexStale {
		s.rebuildIndex()
	}
	return s.index.query(view, out[:0])
}

func (s *ChunkStore) rebuildIndex() {
	bounds := RectF{}
	first := true
	for _, c := range s.chunks {
		b := c.Bounds()
		if first {
			bounds = b
			first = false
			continue
		}
		if b.X0 < bounds.X0 {
			bounds.X0 = b.X0
		}
		if b.Y0 < bounds.Y0 {
			bounds.Y0 = b.Y0
		}
		if b.X1 > bounds.X1 {
			bounds.X1 = b.X1
		}
		if b.Y1 > bounds.Y1 {
			bounds.Y1 = b.Y1
		}
	}
	s.index = newQuadNode(bounds, 0)
	for _, c := range s.chunks {
		s.index.insert(c.Key(), c.Bounds())
	}
	s.indexStale = false
}
