// Command keytween builds keyframe timelines, bakes them into per-position
// samples and streams the result over MQTT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ivlev/keytween/internal/config"
)

// buildVersion is set with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg is loaded before every subcommand runs.
	cfg *config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keytween",
	Short: "Keyframe tween timelines: sample, bake, stream",
	Long: `keytween reads timeline documents made of layers, frames and tweens,
resolves the pose of every frame at any playhead position and writes the
result to YAML, JSON or SQLite, or plays it back over MQTT.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "easings" {
			return nil
		}

		c, err := loadConfig(configFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./keytween.yaml)")
	rootCmd.PersistentFlags().String("documents-dir", "", "directory searched for the newest document (default: input/timelines)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(easingsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(bakeCmd)
	rootCmd.AddCommand(streamCmd)
}
