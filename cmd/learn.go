package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var learnSkills string

// learnCmd builds a learning path for an upcoming hackathon theme.
var learnCmd = &cobra.Command{
	Use:   "learn <theme>",
	Short: "Generate a learning path for a hackathon theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant := buildAssistant(GetConfig())
		path := assistant.GenerateLearningPath(context.Background(), splitCSV(learnSkills), args[0])
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(path)
	},
}

func init() {
	learnCmd.Flags().StringVar(&learnSkills, "skills", "", "comma-separated current skills")
	rootCmd.AddCommand(learnCmd)
}
