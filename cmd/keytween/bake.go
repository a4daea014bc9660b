package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/keytween/internal/engine"
)

const benchmarkLog = "benchmark.log"

var bakeCmd = &cobra.Command{
	Use:   "bake",
	Short: "Sample every tweened frame at every position",
	Long: `Bake resolves the pose of every frame that owns tweens at each of its
playhead positions. The output format follows the --output extension:
.yaml/.yml and .json write a file, .db/.sqlite write a SQLite database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDocument(cfg)
		if err != nil {
			return err
		}
		tl, _, err := loadTimeline(path)
		if err != nil {
			return err
		}

		output := cfg.OutputPath
		if output == "" {
			output = defaultOutputPath()
		}

		project := engine.NewBakeProject(cfg, tl)
		tracks, err := project.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("bake: %w", err)
		}

		if err := writeTracks(cmd.Context(), output, tracks); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}

		if cfg.ShowStats {
			if err := project.Report().AppendLog(benchmarkLog, path); err != nil {
				fmt.Printf("[!] Не удалось записать %s: %v\n", benchmarkLog, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[+++] Успех! Результат: %s\n", output)
		return nil
	},
}

func init() {
	bakeCmd.Flags().String("document", "", "timeline document (default: newest in the documents directory)")
	bakeCmd.Flags().StringP("output", "o", "", "output path: .yaml, .yml, .json, .db or .sqlite (default: output/tracks_<time>.yaml)")
	bakeCmd.Flags().Int("workers", 0, "frames baked in parallel (default: logical CPUs)")
	bakeCmd.Flags().Bool("stats", false, "print a performance report and append it to "+benchmarkLog)
}
