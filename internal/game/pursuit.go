package game

// Pursuer is a non-player chase vehicle. Seek AI lives outside this core;
// the host moves pursuers and this system only classifies overlaps.
type Pursuer struct {
	Pos   WorldPoint
	Angle float64
	Arch  Archetype
	Alive bool
}

// PursuitSystem owns the pursuer set. Physics reads it only through
// collision outcomes.
type PursuitSystem struct {
	Pursuers []Pursuer
	bus      *EventBus
}

func NewPursuitSystem(bus *EventBus) *PursuitSystem {
	return &PursuitSystem{bus: bus}
}

func (ps *PursuitSystem) Reset() {
	ps.Pursuers = ps.Pursuers[:0]
}

func (ps *PursuitSystem) Spawn(arch Archetype, pos WorldPoint) {
	ps.Pursuers = append(ps.Pursuers, Pursuer{Pos: pos, Arch: arch, Alive: true})
}

func (ps *PursuitSystem) AliveCount() int {
	n := 0
	for _, p := range ps.Pursuers {
		if p.Alive {
			n++
		}
	}
	return n
}

// ResolveCollisions classifies vehicle-vehicle overlap for this tick.
// Player vs pursuer: a crush-capable player destroys the pursuer;
// otherwise contact is terminal for the player. Two overlapping pursuers
// always destroy each other.
func (ps *PursuitSystem) ResolveCollisions(v *Vehicle) {
	if v.State != VehicleDestroyed {
		for i := range ps.Pursuers {
			p := &ps.Pursuers[i]
			if !p.Alive {
				continue
			}
			if v.Pos.Dist(p.Pos) > v.Arch.Radius()+p.Arch.Radius() {
				continue
			}
			if v.Arch.Crush {
				p.Alive = false
				ps.bus.Emit(Event{Type: EventCrushed, X: p.Pos.X, Y: p.Pos.Y})
			} else {
				v.State = VehicleDestroyed
				ps.bus.Emit(Event{Type: EventDestroyed, X: v.Pos.X, Y: v.Pos.Y})
				break
			}
		}
	}

	for i := range ps.Pursuers {
		a := &ps.Pursuers[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(ps.Pursuers); j++ {
			b := &ps.Pursuers[j]
			if !b.Alive {
				continue
			}
			if a.Pos.Dist(b.Pos) > a.Arch.Radius()+b.Arch.Radius() {
				continue
			}
			a.Alive = false
			b.Alive = false
			ps.bus.Emit(Event{Type: EventCrash, X: (a.Pos.X + b.Pos.X) / 2, Y: (a.Pos.Y + b.Pos.Y) / 2})
			break
		}
	}
}
