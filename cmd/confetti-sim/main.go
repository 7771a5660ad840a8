// Command confetti-sim runs burst effects headlessly with a fixed timestep and
// prints a frame timeline plus a summary. It is the quickest way to check a
// spawner config: pool sizing, burst count, dropped particles and total run
// time, without opening a window.
//
// Usage:
//
//	confetti-sim run --effect basic_spawner
//	confetti-sim run --config my_effect.yaml --dt 0.25 --every 1
//	confetti-sim list
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	spawnerDir string
	logLevel   string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:           "confetti-sim",
		Short:         "Simulate confetti burst effects headlessly",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&spawnerDir, "dir", "d", "assets/config/spawners", "Spawner config directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRunCmd(), newListCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
