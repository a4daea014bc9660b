package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ivlev/keytween/internal/engine"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <position>",
	Short: "Print the pose of every frame at a timeline position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := strconv.Atoi(args[0])
		if err != nil || position < 1 {
			return fmt.Errorf("invalid position %q: must be a whole number >= 1", args[0])
		}

		path, err := resolveDocument(cfg)
		if err != nil {
			return err
		}
		tl, _, err := loadTimeline(path)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(engine.SampleAt(tl, position), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	sampleCmd.Flags().String("document", "", "timeline document (default: newest in the documents directory)")
}
