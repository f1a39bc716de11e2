package commands

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/cobra"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/config"
	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/report"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

var (
	configFile string
	region     string
	logLevel   string
	output     string

	cfg          *config.Config
	logger       logging.Logger
	printer      report.IPrinter
	outputFormat report.OutputFormatType

	databaseService  aws.DatabaseServiceAPI
	blueGreenService aws.BlueGreenServiceAPI
	parameterService aws.ParameterServiceAPI
	alarmService     aws.AlarmServiceAPI
	secretService    aws.SecretServiceAPI
	identityService  aws.IdentityServiceAPI
)

// Execute builds the rdsops command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:          "rdsops",
		Short:        "Operate AWS RDS and Aurora PostgreSQL lifecycles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			if region != "" {
				cfg.Region = region
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			defaultLogger := logging.NewDefaultLogger()
			defaultLogger.SetLevel(logging.StringToLogLevel(cfg.LogLevel))
			logger = defaultLogger

			outputFormat, err = report.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			printer = report.DefaultPrinter{}

			sdkConfig, err := aws.LoadSDKConfig(cmd.Context(), cfg.Region)
			if err != nil {
				return err
			}

			rdsClient := rds.NewFromConfig(sdkConfig)
			databaseService = aws.NewDatabaseServiceWithClient(rdsClient)
			blueGreenService = aws.NewBlueGreenServiceWithClient(rdsClient)
			parameterService = aws.NewParameterServiceWithClient(rdsClient)
			alarmService = aws.NewAlarmServiceWithClient(cloudwatch.NewFromConfig(sdkConfig))
			secretService = aws.NewSecretServiceWithClient(secretsmanager.NewFromConfig(sdkConfig))
			identityService = aws.NewIdentityServiceWithClient(sts.NewFromConfig(sdkConfig))

			account, err := identityService.AccountID(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("Using AWS account %s", account)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default rdsops.yaml in ., ~/.rdsops or /etc/rdsops)")
	root.PersistentFlags().StringVar(&region, "region", "", "AWS region (overrides config and SDK defaults)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: table or json")

	root.AddCommand(inventoryCmd(), preflightCmd(), paramsCmd(), upgradeCmd(), alarmsCmd())
	return root.Execute()
}
