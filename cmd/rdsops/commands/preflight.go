package commands

import (
	"github.com/spf13/cobra"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/preflight"
)

func preflightCmd() *cobra.Command {
	var identifier string

	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Check a database is safe for a blue/green upgrade",
		Long: "Fetch the database's root credentials from Secrets Manager, connect " +
			"to PostgreSQL and report active replication slots and flagged " +
			"extensions. Exits non-zero when the database is not safe.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := preflight.NewService(preflight.Config{
				SecretNameTemplate: cfg.SecretNameTemplate,
				ConnectTimeout:     cfg.ConnectTimeout,
			}, secretService, nil, logger)

			result, err := service.Run(cmd.Context(), identifier)
			if err != nil {
				return err
			}
			if err := printer.PrintPreflight(result, outputFormat); err != nil {
				return err
			}
			if !result.Safe() {
				return preflight.ErrUnsafe
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "database identifier")
	_ = cmd.MarkFlagRequired("identifier")
	return cmd
}
