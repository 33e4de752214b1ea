// Package cli implements the oci-policy-audit command surface.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oci-policy-audit",
	Short: "Inventory compartments and their IAM policies",
	Long: `Walk the tenancy's compartment tree, collect the IAM policies attached
to each compartment, and write a detail report plus an executive summary
with coverage statistics.

The tool is read-only and takes no flags; credentials and the tenancy OCID
are resolved from the environment and the local OCI configuration.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd.Context())
	},
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
