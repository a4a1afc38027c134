package game

import "math"

// Intents are the per-tick boolean inputs. Physics is agnostic to whatever
// device produced them.
type Intents struct {
	SteerLeft  bool `msgpack:"l"`
	SteerRight bool `msgpack:"r"`
	Throttle   bool `msgpack:"t"`
	Brake      bool `msgpack:"b"`
	Handbrake  bool `msgpack:"h"`
}

// VehicleState is the collision state machine: Free is normal control,
// Colliding lasts the tick that applies resolution, Destroyed is terminal.
type VehicleState int

const (
	VehicleFree VehicleState = iota
	VehicleColliding
	VehicleDestroyed
)

// Vehicle is the single controlled car. Pursuers are separate (pursuit.go).
type Vehicle struct {
	Pos    WorldPoint
	VX, VY float64
	Angle  float64 // facing, radians

	// DriftAngle is the cosmetic lag between facing and velocity
	// direction. Rendering only; it never feeds back into physics.
	DriftAngle float64

	State VehicleState
	Arch  Archetype
}

func NewVehicle(arch Archetype, pos WorldPoint) *Vehicle {
	return &Vehicle{Pos: pos, Arch: arch}
}

func (v *Vehicle) Speed() float64 {
	return math.Hypot(v.VX, v.VY)
}

// Physics advances the controlled vehicle one fixed tick at a time.
type Physics struct {
	cfg      Config
	surfaces *SurfaceQuery
	bus      *EventBus
	rockBuf  []Rock
}

func NewPhysics(cfg Config, surfaces *SurfaceQuery, bus *EventBus) *Physics {
	return &Physics{cfg: cfg, surfaces: surfaces, bus: bus}
}

// Step runs one fixed-timestep integration. Order matters and is part of
// the determinism contract: steering, acceleration, surface resolution,
// lateral grip, drag, speed cap, cosmetic drift angle, position, obstacle
// collision.
func (ph *Physics) Step(v *Vehicle, in Intents, dt float64) {
	if v.State == VehicleDestroyed {
		return
	}
	v.State = VehicleFree

	speed := v.Speed()

	// Steering: sluggish at a stop, crisp near the reference speed, with
	// an optional handbrake boost once moving fast enough.
	factor := clampF(speed/ph.cfg.SteerRefSpeed, ph.cfg.SteerFloor, 1)
	turn := v.Arch.TurnRate * factor
	if in.Handbrake && speed > ph.cfg.HandbrakeMinSpd {
		turn *= ph.cfg.HandbrakeBoost
	}
	if in.SteerLeft {
		v.Angle -= turn * dt
	}
	if in.SteerRight {
		v.Angle += turn * dt
	}

	fx := math.Cos(v.Angle)
	fy := math.Sin(v.Angle)

	// Acceleration along the forward axis; brake/reverse is stronger.
	if in.Throttle {
		v.VX += fx * v.Arch.Accel * dt
		v.VY += fy * v.Arch.Accel * dt
	}
	if in.Brake {
		v.VX -= fx * v.Arch.BrakeAccel * dt
		v.VY -= fy * v.Arch.BrakeAccel * dt
	}

	surf := ph.surfaces.SurfaceAt(v.Pos)

	// Lateral grip: damp the velocity component perpendicular to the
	// heading. Zero velocity simply has no lateral component.
	fwd := v.VX*fx + v.VY*fy
	latX := v.VX - fwd*fx
	latY := v.VY - fwd*fy
	grip := v.Arch.Grip * surf.GripMul
	if in.Handbrake {
		grip *= ph.cfg.HandbrakeGrip
	}
	keep := clampF(1-grip*dt, 0, 1)
	v.VX = fwd*fx + latX*keep
	v.VY = fwd*fy + latY*keep

	// Drag, plus pure friction decay while coasting.
	v.VX *= ph.cfg.Drag
	v.VY *= ph.cfg.Drag
	if !in.Throttle && !in.Brake {
		v.VX *= ph.cfg.IdleFriction
		v.VY *= ph.cfg.IdleFriction
	}

	// Surface speed cap, with headroom proportional to lateral slip so a
	// controlled drift can carry slightly over the nominal cap.
	speed = v.Speed()
	maxSpeed := v.Arch.MaxSpeed * surf.SpeedMul
	slip := math.Hypot(latX*keep, latY*keep)
	slipRatio := 0.0
	if speed > 0 {
		slipRatio = clampF(slip/speed, 0, 1)
	}
	allowed := maxSpeed * (1 + ph.cfg.SlipTolerance*slipRatio)
	if speed > allowed {
		scale := allowed / speed
		v.VX *= scale
		v.VY *= scale
	}

	// Cosmetic drift angle chases the velocity/facing offset.
	target := 0.0
	if speed > 1 {
		target = angDiff(v.Angle, math.Atan2(v.VY, v.VX))
	}
	v.DriftAngle += (target - v.DriftAngle) * clampF(ph.cfg.DriftSmoothing*dt, 0, 1)

	v.Pos.X += v.VX * dt
	v.Pos.Y += v.VY * dt

	ph.resolveObstacles(v)
}

// resolveObstacles pushes the vehicle out of any overlapping rock in one
// step and reflects the normal velocity component with damping.
func (ph *Physics) resolveObstacles(v *Vehicle) {
	ph.rockBuf = ph.surfaces.NearbyRocks(v.Pos, v.Arch.Radius(), ph.rockBuf[:0])
	for _, rock := range ph.rockBuf {
		d := v.Pos.Dist(WorldPoint{X: rock.X, Y: rock.Y})
		min := v.Arch.Radius() + rock.R
		if d >= min {
			continue
		}

		nx, ny := 1.0, 0.0
		if d > 1e-9 {
			nx = (v.Pos.X - rock.X) / d
			ny = (v.Pos.Y - rock.Y) / d
		}

		// Full push-out along the contact normal, resolved this tick.
		v.Pos.X += nx * (min - d)
		v.Pos.Y += ny * (min - d)

		vn := v.VX*nx + v.VY*ny
		if vn < 0 {
			v.VX -= (1 + ph.cfg.Restitution) * vn * nx
			v.VY -= (1 + ph.cfg.Restitution) * vn * ny
			v.State = VehicleColliding
			if -vn > ph.cfg.ContactSpeed {
				ph.bus.Emit(Event{Type: EventContact, X: v.Pos.X, Y: v.Pos.Y, Data: int(-vn)})
			}
		}
	}
}
