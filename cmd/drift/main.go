package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"drift/internal/game"
)

// Headless session runner: drives the simulation with a scripted input
// pattern (or a recorded trace) and logs the events the out-of-scope
// renderer/audio layers would consume. Useful for soak runs and for
// capturing deterministic replay traces.
func main() {
	var (
		configDir = flag.String("config", ".", "directory containing drift.cfg.json")
		seconds   = flag.Float64("seconds", 10, "simulated seconds to run")
		record    = flag.String("record", "", "write the input trace to this file")
		replay    = flag.String("replay", "", "replay a recorded trace instead of the script")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg, err := game.LoadConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	session, err := game.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("creating session")
	}

	session.Bus.Subscribe(game.EventContact, func(e game.Event) {
		log.Info().Float64("x", e.X).Float64("y", e.Y).Int("speed", e.Data).Msg("contact")
	})
	session.Bus.Subscribe(game.EventScore, func(e game.Event) {
		log.Info().Int("points", e.Data).Msg("score")
	})

	if *replay != "" {
		runReplay(session, *replay, log)
		return
	}

	rec := game.NewRecorder(cfg)
	runScripted(session, rec, *seconds)

	if *record != "" {
		b, err := rec.Trace().Encode()
		if err != nil {
			log.Fatal().Err(err).Msg("encoding trace")
		}
		if err := os.WriteFile(*record, b, 0o644); err != nil {
			log.Fatal().Err(err).Msg("writing trace")
		}
		log.Info().Str("file", *record).Int("ticks", len(rec.Trace().Ticks)).Msg("trace written")
	}

	report(session)
}

// runScripted drives the car with throttle held and a slow steering
// weave, stepping in real time through the fixed-timestep accumulator.
func runScripted(s *game.Session, rec *game.Recorder, seconds float64) {
	simulated := 0.0
	last := time.Now()
	for simulated < seconds && !s.Over() {
		now := time.Now()
		frame := now.Sub(last).Seconds()
		last = now

		in := game.Intents{Throttle: true}
		phase := int(simulated) % 6
		if phase == 2 {
			in.SteerLeft = true
		} else if phase == 4 {
			in.SteerRight = true
		}

		steps := s.Advance(frame, in)
		for i := 0; i < steps; i++ {
			rec.Record(in)
		}
		simulated += frame
	}
}

func runReplay(s *game.Session, path string, log zerolog.Logger) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("reading trace")
	}
	trace, err := game.DecodeTrace(b)
	if err != nil {
		log.Fatal().Err(err).Msg("decoding trace")
	}
	applied := game.Play(s, trace)
	log.Info().Int("ticks", applied).Msg("replay complete")
	report(s)
}

func report(s *game.Session) {
	fmt.Printf("ticks=%d score=%d pos=(%.1f,%.1f) speed=%.1f chunks=%d\n",
		s.Tick, s.Score, s.Vehicle.Pos.X, s.Vehicle.Pos.Y, s.Vehicle.Speed(), s.Store.Len())
}
