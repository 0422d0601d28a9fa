package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"voltscan/pkg/contracts"
)

// NewVersionCommand prints build information
func NewVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), contracts.GetFullVersionString())
				return nil
			}
			data, err := json.MarshalIndent(contracts.GetVersionInfo(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
