package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/kruskal/cmd/kruskal-bench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		os.Exit(1)
	}
}
