package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var contentFields []string

// contentCmd generates announcement/description/rules text.
var contentCmd = &cobra.Command{
	Use:   "content <kind>",
	Short: "Generate hackathon text (announcement, description, rules)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]string{}
		for _, f := range contentFields {
			k, v, ok := strings.Cut(f, "=")
			if !ok {
				return fmt.Errorf("invalid field %q, want key=value", f)
			}
			fields[k] = v
		}
		assistant := buildAssistant(GetConfig())
		fmt.Println(assistant.GenerateContent(context.Background(), args[0], fields))
		return nil
	},
}

func init() {
	contentCmd.Flags().StringArrayVar(&contentFields, "field", nil, "context field, key=value (repeatable)")
	rootCmd.AddCommand(contentCmd)
}
