package main

import (
	"context"
	"flag"
	"os"

	"github.com/spf13/afero"

	"github.com/okian/lineout/internal/seed"
	"github.com/okian/lineout/pkg/logger"
)

const defaultSeed = 1

func main() {
	var (
		out      = flag.String("out", seed.DefaultOut, "Output xlsx file")
		players  = flag.Int("players", seed.DefaultPlayers, "Roster size")
		sessions = flag.Int("sessions", seed.DefaultSessions, "Number of training sessions")
		seedVal  = flag.Uint64("seed", defaultSeed, "Random seed")
		end      = flag.String("end", "", "Day of the last session (default today)")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seed.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		_, _ = os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	endDay, err := seed.ParseEnd(*end)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	cfg := seed.Config{
		Out:      *out,
		Players:  *players,
		Sessions: *sessions,
		Seed:     *seedVal,
		End:      endDay,
	}
	if _, err := seed.Write(context.Background(), afero.NewOsFs(), cfg); err != nil {
		logger.Get().Error(context.Background(), "seed failed", logger.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
