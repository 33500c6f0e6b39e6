package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	ideasSkills     string
	ideasDifficulty string
)

// ideasCmd generates project ideas for a theme.
var ideasCmd = &cobra.Command{
	Use:   "ideas <theme>",
	Short: "Generate project ideas for a hackathon theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant := buildAssistant(GetConfig())
		skills := splitCSV(ideasSkills)
		ideas := assistant.GenerateProjectIdeas(context.Background(), args[0], skills, ideasDifficulty)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ideas)
	},
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	ideasCmd.Flags().StringVar(&ideasSkills, "skills", "", "comma-separated skills")
	ideasCmd.Flags().StringVar(&ideasDifficulty, "difficulty", "intermediate", "difficulty level")
	rootCmd.AddCommand(ideasCmd)
}
