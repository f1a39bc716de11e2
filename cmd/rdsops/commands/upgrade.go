package commands

import (
	"github.com/spf13/cobra"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/preflight"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/upgrade"
)

func upgradeCmd() *cobra.Command {
	var identifier string
	var targetVersion string
	var autoApprove bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Drive a Blue/Green engine upgrade",
		Long: "Advance the Blue/Green upgrade of a database by one step: create the " +
			"deployment, switch over once it is available, then clean up the old " +
			"environment. Re-run the command until the upgrade is complete.",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := preflight.NewService(preflight.Config{
				SecretNameTemplate: cfg.SecretNameTemplate,
				ConnectTimeout:     cfg.ConnectTimeout,
			}, secretService, nil, logger)

			service := upgrade.NewService(upgrade.Config{
				PollInterval:      cfg.PollInterval,
				SwitchoverTimeout: cfg.SwitchoverTimeout,
				PromptTimeout:     cfg.PromptTimeout,
				AutoApprove:       autoApprove,
			}, databaseService, blueGreenService, checks, logger, cmd.InOrStdin())

			_, err := service.Run(cmd.Context(), identifier, targetVersion)
			return err
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "database identifier")
	cmd.Flags().StringVarP(&targetVersion, "target-version", "t", "", "target engine version")
	cmd.Flags().BoolVar(&autoApprove, "yes", false, "answer yes to the snapshot prompt")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("target-version")
	return cmd
}
