package commands

import (
	"github.com/spf13/cobra"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/inventory"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/terraform"
)

func inventoryCmd() *cobra.Command {
	var maxVersion string
	var terraformPath string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List databases by engine version",
		Long: "List RDS instances and Aurora clusters with their engine versions, " +
			"optionally keeping only databases below a version ceiling and " +
			"annotating each with the version declared in Terraform.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := inventory.NewService(inventory.Config{
				MaxVersion:    maxVersion,
				TerraformPath: terraformPath,
			}, databaseService, terraform.NewParserWithLogger(logger), logger)

			result, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}
			return printer.PrintInventory(result, outputFormat)
		},
	}

	cmd.Flags().StringVar(&maxVersion, "max-version", "", "only list databases strictly below this engine version")
	cmd.Flags().StringVar(&terraformPath, "terraform", "", "Terraform file to read declared engine versions from")
	return cmd
}
