// Command headless runs the physics core at a fixed tick rate without a
// window. Useful for profiling the collision pass and for eyeballing
// trajectories when tuning movement constants.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/blockhop/assets"
	"github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/physics"
	"github.com/automoto/blockhop/shared/leveldata"
)

type simLoop struct {
	actor     *physics.Actor
	obstacles []physics.Rect
	script    func(frame int) physics.Input

	tickRate int
	frames   int
	logEvery int
	stopChan chan struct{}
}

func (s *simLoop) run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	log.Printf("simulation started at %d ticks/second", s.tickRate)

	dt := 1.0 / float64(s.tickRate)
	for frame := 0; frame < s.frames; frame++ {
		select {
		case <-s.stopChan:
			log.Println("simulation stopped")
			return
		case <-ticker.C:
			st := s.actor.Step(dt, s.script(frame), s.obstacles)
			if st != physics.StepOK {
				log.Printf("tick %d: step status %v", frame, st)
			}
			if frame%s.logEvery == 0 {
				pos := s.actor.Pos()
				log.Printf("tick %4d: pos=(%.1f,%.1f) v=(%.1f,%.1f) on_ground=%v",
					frame, pos.X, pos.Y,
					s.actor.Velocity.X, s.actor.Velocity.Y, s.actor.OnGround)
			}
		}
	}
}

// walkAndJump walks right and taps jump once a second, with a release frame
// in between so the edge trigger re-arms.
func walkAndJump(tickRate int) func(frame int) physics.Input {
	return func(frame int) physics.Input {
		return physics.Input{
			MoveRight: true,
			JumpHeld:  frame%tickRate == 0,
		}
	}
}

func main() {
	levelPath := flag.String("level", assets.StageOrder[0], "level asset path")
	frames := flag.Int("frames", 600, "number of ticks to simulate")
	tickRate := flag.Int("tickrate", config.World.TickRate, "ticks per second")
	logEvery := flag.Int("log-every", 30, "ticks between trajectory log lines")
	tuningPath := flag.String("tuning", "", "YAML tuning override file")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tickrate must be positive, got %d", *tickRate)
	}
	if *logEvery <= 0 {
		*logEvery = 1
	}

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("tuning: %v", err)
		}
	}

	level, err := leveldata.Load(assets.FS, *levelPath)
	if err != nil {
		log.Fatalf("level: %v", err)
	}

	actor, err := physics.NewActor(level.Spawn, config.Player.Width, config.Player.Height, config.Tuning())
	if err != nil {
		log.Fatalf("actor: %v", err)
	}

	sim := &simLoop{
		actor:     actor,
		obstacles: level.Solids,
		script:    walkAndJump(*tickRate),
		tickRate:  *tickRate,
		frames:    *frames,
		logEvery:  *logEvery,
		stopChan:  make(chan struct{}),
	}
	sim.run()
}
