package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quadnet",
	Short:         "single-layer classifier for quadrant points",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	attachFlags(rootCmd)
	rootCmd.AddCommand(trainCMD(), predictCMD())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("quadnet failed")
		os.Exit(1)
	}
}
