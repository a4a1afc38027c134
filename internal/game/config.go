package game

import (
	"fmt"

	"github.com/spf13/viper"
)

// Archetype is the static description of a vehicle type. Catalog data, not
// runtime state.
type Archetype struct {
	Name       string  `json:"name" mapstructure:"name"`
	Width      float64 `json:"width" mapstructure:"width"`
	Height     float64 `json:"height" mapstructure:"height"`
	MaxSpeed   float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	Accel      float64 `json:"accel" mapstructure:"accel"`
	BrakeAccel float64 `json:"brakeAccel" mapstructure:"brakeAccel"`
	TurnRate   float64 `json:"turnRate" mapstructure:"turnRate"` // rad/s at full steering factor
	Grip       float64 `json:"grip" mapstructure:"grip"`         // per-second lateral damping
	Crush      bool    `json:"crush" mapstructure:"crush"`       // contact destroys pursuers instead of the player
}

// Radius is the collision circle approximating the vehicle footprint.
func (a Archetype) Radius() float64 {
	return (a.Width + a.Height) / 4
}

// Config is the immutable tuning bag passed to constructors. There is no
// ambient global configuration; tests build as many independent configs
// (and therefore worlds) as they like.
type Config struct {
	// Simulation.
	TickRate      float64 // fixed physics steps per second
	MaxFrameDelta float64 // frame dt clamp before the accumulator
	RenderDist    int     // Chebyshev chunk radius kept loaded

	// World generation.
	RoadWidth       float64 // drivable width of generated roads
	RoadClearance   float64 // fixed extra margin beyond road half-width
	LakeChance      float64
	LakeMinR        float64
	LakeMaxR        float64
	RockMaxCount    int
	RockMinR        float64
	RockMaxR        float64
	DecorCount      int
	LandmarkChance  float64
	PlacementTries  int // rejection-sampling attempts per feature

	// Surface multipliers.
	RoadSpeedMul    float64
	RoadGripMul     float64
	OffroadSpeedMul float64
	OffroadGripMul  float64
	LakeSpeedMul    float64
	LakeGripMul     float64

	// Vehicle physics.
	Drag            float64 // velocity kept per tick, <1
	IdleFriction    float64 // extra per-tick decay with no throttle/brake
	SlipTolerance   float64 // speed cap headroom proportional to lateral slip
	SteerFloor      float64 // steering factor at standstill
	SteerRefSpeed   float64 // speed at which steering reaches full rate
	HandbrakeBoost  float64 // steering multiplier while handbrake held
	HandbrakeMinSpd float64 // handbrake boost only above this speed
	HandbrakeGrip   float64 // grip multiplier while handbrake held
	Restitution     float64 // bounce kept on obstacle impact, <1
	ContactSpeed    float64 // incoming speed that triggers a contact event
	DriftSmoothing  float64 // cosmetic drift angle convergence rate

	// Scoring.
	CrushScore int

	// Vehicle catalog.
	Archetypes map[string]Archetype
	PlayerArch string
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TickRate:      60,
		MaxFrameDelta: 0.1,
		RenderDist:    3,

		RoadWidth:      22,
		RoadClearance:  8,
		LakeChance:     0.18,
		LakeMinR:       24,
		LakeMaxR:       60,
		RockMaxCount:   4,
		RockMinR:       4,
		RockMaxR:       12,
		DecorCount:     14,
		LandmarkChance: 0.06,
		PlacementTries: 8,

		RoadSpeedMul:    1.0,
		RoadGripMul:     1.0,
		OffroadSpeedMul: 0.55,
		OffroadGripMul:  0.7,
		LakeSpeedMul:    0.25,
		LakeGripMul:     0.08,

		Drag:            0.995,
		IdleFriction:    0.985,
		SlipTolerance:   0.12,
		SteerFloor:      0.25,
		SteerRefSpeed:   90,
		HandbrakeBoost:  1.6,
		HandbrakeMinSpd: 60,
		HandbrakeGrip:   0.25,
		Restitution:     0.35,
		ContactSpeed:    45,
		DriftSmoothing:  8,

		CrushScore: 100,

		Archetypes: map[string]Archetype{
			"roadster": {
				Name: "roadster", Width: 10, Height: 20,
				MaxSpeed: 220, Accel: 140, BrakeAccel: 210,
				TurnRate: 2.6, Grip: 6.0,
			},
			"pickup": {
				Name: "pickup", Width: 12, Height: 24,
				MaxSpeed: 180, Accel: 110, BrakeAccel: 180,
				TurnRate: 2.2, Grip: 5.2,
			},
			"monster": {
				Name: "monster", Width: 16, Height: 26,
				MaxSpeed: 160, Accel: 95, BrakeAccel: 160,
				TurnRate: 1.9, Grip: 4.6, Crush: true,
			},
			"cruiser": {
				Name: "cruiser", Width: 11, Height: 22,
				MaxSpeed: 200, Accel: 120, BrakeAccel: 190,
				TurnRate: 2.4, Grip: 5.6,
			},
		},
		PlayerArch: "roadster",
	}
}

// LoadConfig reads drift.cfg.json from configDir over the defaults. A
// missing file is not an error; a malformed one is.
func LoadConfig(configDir string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("drift.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetDefault("tickRate", cfg.TickRate)
	v.SetDefault("renderDistance", cfg.RenderDist)
	v.SetDefault("playerArchetype", cfg.PlayerArch)
	v.SetDefault("world.roadWidth", cfg.RoadWidth)
	v.SetDefault("world.lakeChance", cfg.LakeChance)
	v.SetDefault("world.landmarkChance", cfg.LandmarkChance)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg.TickRate = v.GetFloat64("tickRate")
	cfg.RenderDist = v.GetInt("renderDistance")
	cfg.PlayerArch = v.GetString("playerArchetype")
	cfg.RoadWidth = v.GetFloat64("world.roadWidth")
	cfg.LakeChance = v.GetFloat64("world.lakeChance")
	cfg.LandmarkChance = v.GetFloat64("world.landmarkChance")

	if v.IsSet("archetypes") {
		extra := map[string]Archetype{}
		if err := v.UnmarshalKey("archetypes", &extra); err != nil {
			return Config{}, fmt.Errorf("parsing archetype catalog: %w", err)
		}
		for name, arch := range extra {
			arch.Name = name
			cfg.Archetypes[name] = arch
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would break core invariants.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %v", c.TickRate)
	}
	if c.RenderDist < 1 {
		return fmt.Errorf("renderDistance must be at least 1, got %d", c.RenderDist)
	}
	if _, ok := c.Archetypes[c.PlayerArch]; !ok {
		return fmt.Errorf("player archetype %q not in catalog", c.PlayerArch)
	}
	for name, a := range c.Archetypes {
		if a.MaxSpeed <= 0 || a.Width <= 0 || a.Height <= 0 {
			return fmt.Errorf("archetype %q has non-positive dimensions or max speed", name)
		}
	}
	return nil
}

// FixedDt is the physics timestep in seconds.
func (c Config) FixedDt() float64 {
	return 1.0 / c.TickRate
}
