package commands

import (
	"github.com/spf13/cobra"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/alarms"
)

func alarmsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarms",
		Short: "Manage CloudWatch alarms for databases",
	}
	cmd.AddCommand(alarmsCopyCmd())
	return cmd
}

func alarmsCopyCmd() *cobra.Command {
	var source string
	var targets []string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a database's alarms to new targets",
		Long: "Copy every CloudWatch alarm whose name contains the source identifier " +
			"to the targets, rewriting names and dimensions. The first target takes " +
			"the writer role, later ones are readers. Aurora cluster targets expand " +
			"to their member instances.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := alarms.NewService(alarmService, databaseService, logger)

			created, err := service.Copy(cmd.Context(), source, targets)
			if err != nil {
				return err
			}
			logger.Info("Created %d alarms", len(created))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "identifier", "i", "", "source database identifier")
	cmd.Flags().StringArrayVarP(&targets, "target", "t", nil, "target identifier (repeatable)")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
