// Profiling:
// go build ./cmd/depotprof
// ./depotprof --mode mem --out .
// go tool pprof -http=":8000" -nodefraction=0.001 ./depotprof mem.pprof

package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("depotprof failed")
		os.Exit(1)
	}
}
