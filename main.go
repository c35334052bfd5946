package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Vmoney23/ScotlandYardAI/config"
	"github.com/Vmoney23/ScotlandYardAI/experiments"
)

func main() {
	path := flag.String("config", "", "YAML configuration file, defaults if empty")
	mode := flag.String("mode", "games", "Experiment to run: games or throughput")
	level := flag.String("log-level", "info", "Log level")
	games := flag.Int("games", 0, "Number of games, overrides the configuration")
	parallel := flag.Int("parallel", 0, "Games played at once, overrides the configuration")
	output := flag.String("output", "", "Directory for CSV records, overrides the configuration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := config.Default()
	if *path != "" {
		cfg, err = config.Load(*path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}
	if *games > 0 {
		cfg.Experiment.Games = *games
	}
	if *parallel > 0 {
		cfg.Experiment.Parallel = *parallel
	}
	if *output != "" {
		cfg.Experiment.Output = *output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "games":
		summary, err := experiments.Run(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("fugitive won %d of %d games", summary.FugitiveWins, summary.Games)
	case "throughput":
		if _, err := experiments.RunThroughput(ctx, cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}
