package commands

import (
	"github.com/spf13/cobra"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/params"
)

func paramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Inspect and edit database parameter groups",
	}
	cmd.AddCommand(paramsShowCmd(), paramsEditCmd(), paramsMigrateCmd())
	return cmd
}

func paramsShowCmd() *cobra.Command {
	var identifier string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show replication and user-set parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := params.NewService(databaseService, parameterService, logger, nil)

			overview, err := service.Overview(cmd.Context(), identifier)
			if err != nil {
				return err
			}
			return printer.PrintParameterOverview(overview, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "database identifier")
	_ = cmd.MarkFlagRequired("identifier")
	return cmd
}

func paramsEditCmd() *cobra.Command {
	var identifier string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit replication parameters interactively",
		Long: "Walk through the replication-related parameters one by one, prompting " +
			"for new values. Collected changes are applied with apply method " +
			"pending-reboot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := params.NewService(databaseService, parameterService, logger, cmd.InOrStdin())

			_, err := service.Edit(cmd.Context(), identifier)
			return err
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "database identifier")
	_ = cmd.MarkFlagRequired("identifier")
	return cmd
}

func paramsMigrateCmd() *cobra.Command {
	var identifier string
	var targetVersion string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create parameter groups for a major version upgrade",
		Long: "Create parameter groups in the target version's family and copy every " +
			"user-set parameter into them. Does nothing for minor upgrades.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := params.NewService(databaseService, parameterService, logger, nil)

			result, err := service.Migrate(cmd.Context(), identifier, targetVersion)
			if err != nil {
				return err
			}
			for _, group := range result.CreatedGroups {
				if err := printer.PrintParameters(group, result.CopiedParameters[group], outputFormat); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "database identifier")
	cmd.Flags().StringVarP(&targetVersion, "target-version", "t", "", "target engine version")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("target-version")
	return cmd
}
