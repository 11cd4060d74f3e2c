package main

import (
	"flag"
	"math/rand"
	"time"

	"elevatorsim/src/config"
	"elevatorsim/src/logger"
	"elevatorsim/src/sim"
	"elevatorsim/src/stats"
)

func main() {
	configPath := flag.String("config", "", "Path to the simulation config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Could not load configuration")
	}
	log := logger.GetLeveled(cfg.Level())
	cfg.LogEffective()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.Info().Int64("seed", seed).Msg("No seed configured, derived one from the clock")
	}
	rng := rand.New(rand.NewSource(seed))

	collector := stats.NewCollector()
	simulation := sim.New(cfg, rng, collector)
	simulation.Run()
}
