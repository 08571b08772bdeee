package main

import (
	"strings"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	entities int
	rounds   int
	mode     string
	out      string
	logLevel string
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "depotprof",
		Short:         "Profile spawn, insert and query workloads against a depot world",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(strings.ToLower(opts.logLevel))
			if err != nil {
				return eris.Wrapf(err, "invalid log level %q", opts.logLevel)
			}
			if opts.entities <= 0 || opts.rounds <= 0 {
				return eris.Errorf("entities and rounds must be positive, got %d and %d", opts.entities, opts.rounds)
			}
			mode, err := profileMode(opts.mode)
			if err != nil {
				return err
			}

			p := profile.Start(mode, profile.ProfilePath(opts.out), profile.NoShutdownHook, profile.Quiet)
			stats := run(logger.Level(level), opts.rounds, opts.entities)
			p.Stop()

			logger.Info().
				Int("rounds", opts.rounds).
				Int("entities", opts.entities).
				Int("matched", stats.matched).
				Float64("checksum", stats.checksum).
				Str("out", opts.out).
				Msg("profile written")
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.entities, "entities", 10_000, "entities spawned per round")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 50, "number of worlds built and queried")
	cmd.Flags().StringVar(&opts.mode, "mode", "cpu", "profile kind: cpu or mem")
	cmd.Flags().StringVar(&opts.out, "out", ".", "directory the profile is written to")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level for world events")
	return cmd
}

func profileMode(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfileAllocs, nil
	default:
		return nil, eris.Errorf("unknown profile mode %q", mode)
	}
}
