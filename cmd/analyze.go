package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"hackscout/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// analyzeCmd reviews a project described in a YAML file.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Review a hackathon project from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var project model.Project
		if err := yaml.Unmarshal(b, &project); err != nil {
			return fmt.Errorf("parse project: %w", err)
		}
		assistant := buildAssistant(GetConfig())
		analysis := assistant.AnalyzeProject(context.Background(), project)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
