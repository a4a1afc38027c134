package game

import (
	"github.com/rs/zerolog"
)

// spawnPoint is the road intersection at the center of chunk (0,0): both
// modulo road rules fire there, so a fresh session always starts on
// asphalt.
var spawnPoint = WorldPoint{X: ChunkSize / 2, Y: ChunkSize / 2}

// Session wires the whole core together and owns the fixed-timestep loop.
// Everything inside runs on the single simulation goroutine.
type Session struct {
	cfg Config
	log zerolog.Logger

	Bus      *EventBus
	Store    *ChunkStore
	Surfaces *SurfaceQuery
	Physics  *Physics
	Vehicle  *Vehicle
	Pursuit  *PursuitSystem

	Tick  uint64
	Score int

	accumulator float64
}

func NewSession(cfg Config, log zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bus := NewEventBus()
	store := NewChunkStore(NewGenerator(cfg), log)
	surfaces := NewSurfaceQuery(store, cfg)

	s := &Session{
		cfg:      cfg,
		log:      log,
		Bus:      bus,
		Store:    store,
		Surfaces: surfaces,
		Physics:  NewPhysics(cfg, surfaces, bus),
		Vehicle:  NewVehicle(cfg.Archetypes[cfg.PlayerArch], spawnPoint),
		Pursuit:  NewPursuitSystem(bus),
	}

	bus.Subscribe(EventCrushed, func(e Event) {
		s.Score += cfg.CrushScore
		bus.Emit(Event{Type: EventScore, X: e.X, Y: e.Y, Data: cfg.CrushScore})
	})
	bus.Subscribe(EventDestroyed, func(e Event) {
		s.log.Info().Uint64("tick", s.Tick).Int("score", s.Score).Msg("session over")
	})

	store.EnsureLoaded(spawnPoint, cfg.RenderDist)
	return s, nil
}

// Step runs exactly one fixed simulation tick in the documented order:
// physics, chunk streaming, pursuer collision.
func (s *Session) Step(in Intents) {
	dt := s.cfg.FixedDt()
	s.Physics.Step(s.Vehicle, in, dt)
	s.Store.EnsureLoaded(s.Vehicle.Pos, s.cfg.RenderDist)
	s.Pursuit.ResolveCollisions(s.Vehicle)
	s.Tick++
}

// Advance feeds real elapsed time into the fixed-timestep accumulator and
// steps the simulation zero or more times, carrying the remainder forward.
// The frame delta is clamped so a stall never integrates a huge dt.
func (s *Session) Advance(elapsed float64, in Intents) int {
	if elapsed > s.cfg.MaxFrameDelta {
		elapsed = s.cfg.MaxFrameDelta
	}
	if elapsed < 0 {
		elapsed = 0
	}

	s.accumulator += elapsed
	dt := s.cfg.FixedDt()
	steps := 0
	for s.accumulator >= dt {
		s.Step(in)
		s.accumulator -= dt
		steps++
	}
	return steps
}

// Over reports whether the session reached its terminal state.
func (s *Session) Over() bool {
	return s.Vehicle.State == VehicleDestroyed
}

// Reset starts a fresh session. Seeding is coordinate-derived, never
// session-derived, so the regenerated world is identical to the previous
// one.
func (s *Session) Reset() {
	s.Vehicle = NewVehicle(s.cfg.Archetypes[s.cfg.PlayerArch], spawnPoint)
	s.Pursuit.Reset()
	s.Store.Clear()
	s.Store.EnsureLoaded(spawnPoint, s.cfg.RenderDist)
	s.Tick = 0
	s.Score = 0
	s.accumulator = 0
}
