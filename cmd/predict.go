package cmd

import (
	"context"
	"encoding/json"
	"os"

	"hackscout/internal/model"

	"github.com/spf13/cobra"
)

var (
	predictDuration     string
	predictParticipants int
	predictPrizePool    string
)

// predictCmd forecasts success metrics for a planned hackathon.
var predictCmd = &cobra.Command{
	Use:   "predict <theme>",
	Short: "Forecast success metrics for a planned hackathon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant := buildAssistant(GetConfig())
		forecast := assistant.PredictSuccess(context.Background(), model.Hackathon{
			Theme:                args[0],
			Duration:             predictDuration,
			ExpectedParticipants: predictParticipants,
			PrizePool:            predictPrizePool,
		})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(forecast)
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictDuration, "duration", "48h", "event duration")
	predictCmd.Flags().IntVar(&predictParticipants, "participants", 100, "expected participants")
	predictCmd.Flags().StringVar(&predictPrizePool, "prize-pool", "", "total prize pool")
	rootCmd.AddCommand(predictCmd)
}
