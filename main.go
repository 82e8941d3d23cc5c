package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"war/console"
	"war/engine"
	"war/game"
	"war/logger"
	"war/meta"
	"war/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := meta.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	seed := flag.Uint64("seed", cfg.Seed, "Seed for dice and mission draws (0 = clock)")
	loose := flag.Bool("loose", cfg.LooseAttacks, "Allow attacking with a single troop")
	flag.Parse()

	closeLog, err := logger.Init(cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(*seed, *loose); err != nil {
		log.Error().Err(err).Msg("session aborted")
		closeLog()
		os.Exit(1)
	}
}

func run(seed uint64, loose bool) error {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Bool("loose", loose).Msg("starting")

	src := rand.New(rand.NewSource(seed))
	var rules game.Rules = game.NewStandardRules()
	if loose {
		rules = game.NewLooseRules()
	}

	c := console.New(os.Stdin, os.Stdout)
	m, err := c.ReadTerritories()
	if err != nil {
		return fmt.Errorf("register territories: %w", err)
	}

	e, err := engine.LocalEngine(m, game.DefaultCatalog(), src, rules, engine.WithCollector(metrics.NewCollector()))
	if err != nil {
		return err
	}
	defer e.Close()

	return c.Play(e)
}
