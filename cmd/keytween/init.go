package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivlev/keytween/internal/scenario"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example timeline document",
	Long: `Write a two-layer example document. Without --document it goes to a
timestamped file in the documents directory, where the other commands
pick it up as the newest document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DocumentPath
		if path == "" {
			path = scenario.GenerateDocumentPath(cfg.DocumentsDir)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}

		if err := scenario.WriteDocument(scenario.Example(cfg.FrameRate()), path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[+++] Успех! Документ сохранен: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().String("document", "", "document path to write")
	initCmd.Flags().Int("fps", 0, "playback rate stored in the document (default 24)")
}
