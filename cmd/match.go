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

// matchInput is the YAML shape accepted by the match command.
type matchInput struct {
	Profile    model.Profile     `yaml:"profile"`
	Candidates []model.Candidate `yaml:"candidates"`
}

// matchCmd ranks candidates from a YAML file against a profile.
var matchCmd = &cobra.Command{
	Use:   "match <file>",
	Short: "Rank teammate candidates from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var in matchInput
		if err := yaml.Unmarshal(b, &in); err != nil {
			return fmt.Errorf("parse match input: %w", err)
		}
		assistant := buildAssistant(GetConfig())
		matches := assistant.MatchTeammates(context.Background(), in.Profile, in.Candidates)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
