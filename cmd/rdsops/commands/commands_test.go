package commands

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/config"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	awsmocks "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws/mocks"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/report"
	reportmocks "github.com/nsomarouthu/rds.upgrade.tool/internal/report/mocks"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

// setTestDependencies fills the package vars the root command normally wires
// in PersistentPreRunE.
func setTestDependencies(t *testing.T) (*awsmocks.DatabaseServiceAPI, *awsmocks.ParameterServiceAPI, *awsmocks.AlarmServiceAPI, *reportmocks.IPrinter) {
	mockDatabases := awsmocks.NewDatabaseServiceAPI(t)
	mockParameters := awsmocks.NewParameterServiceAPI(t)
	mockAlarms := awsmocks.NewAlarmServiceAPI(t)
	mockPrinter := reportmocks.NewIPrinter(t)

	databaseService = mockDatabases
	parameterService = mockParameters
	alarmService = mockAlarms
	printer = mockPrinter
	logger = logging.NewMockLogger()
	outputFormat = report.OutputFormatTypeTABLE
	cfg = &config.Config{
		SecretNameTemplate: "athena/rds/%s/root",
		ConnectTimeout:     time.Second,
	}

	return mockDatabases, mockParameters, mockAlarms, mockPrinter
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetContext(context.Background())
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestInventoryCmd(t *testing.T) {
	mockDatabases, _, _, mockPrinter := setTestDependencies(t)

	mockDatabases.On("ListInstances", mock.Anything).Return([]models.DatabaseTarget{
		{Identifier: "orders", Kind: models.KindInstance, Engine: "postgres", EngineVersion: "13.13"},
	}, nil)
	mockDatabases.On("ListClusters", mock.Anything).Return([]models.DatabaseTarget{}, nil)
	mockPrinter.On("PrintInventory",
		mock.MatchedBy(func(inventory models.InventoryReport) bool {
			return inventory.Total() == 1
		}),
		report.OutputFormatTypeTABLE,
	).Return(nil)

	err := execute(inventoryCmd())

	assert.NoError(t, err)
}

func TestParamsShowCmd(t *testing.T) {
	mockDatabases, mockParameters, _, mockPrinter := setTestDependencies(t)

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(&models.DatabaseTarget{
		Identifier:      "orders",
		Kind:            models.KindInstance,
		Engine:          "postgres",
		EngineVersion:   "14.12",
		ParameterGroups: []string{"orders-params"},
	}, nil)
	mockParameters.On("ListParameters", mock.Anything, "orders-params", models.KindInstance).
		Return([]models.ParameterSetting{
			{Name: "max_wal_senders", Value: "10", Source: "engine-default"},
		}, nil)
	mockPrinter.On("PrintParameterOverview",
		mock.MatchedBy(func(overview models.ParameterOverview) bool {
			return overview.GroupName == "orders-params"
		}),
		report.OutputFormatTypeTABLE,
	).Return(nil)

	err := execute(paramsShowCmd(), "-i", "orders")

	assert.NoError(t, err)
}

func TestParamsShowCmd_RequiresIdentifier(t *testing.T) {
	setTestDependencies(t)

	err := execute(paramsShowCmd())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "identifier")
}

func TestParamsMigrateCmd_PrintsCopiedParameters(t *testing.T) {
	mockDatabases, mockParameters, _, mockPrinter := setTestDependencies(t)

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(&models.DatabaseTarget{
		Identifier:      "orders",
		Kind:            models.KindInstance,
		Engine:          "postgres",
		EngineVersion:   "13.13",
		ParameterGroups: []string{"orders-params"},
	}, nil)
	mockParameters.On("CreateParameterGroup", mock.Anything,
		"orders-instance-pgpostgres15", "postgres15", mock.Anything, models.KindInstance).
		Return(nil)
	mockParameters.On("UserParameters", mock.Anything, "orders-params", models.KindInstance).
		Return([]models.ParameterSetting{
			{Name: "shared_buffers", Value: "262144", Source: "user"},
		}, nil)
	mockParameters.On("ModifyParameters", mock.Anything,
		"orders-instance-pgpostgres15", models.KindInstance, mock.Anything).
		Return(nil)

	// The operator sees what landed in the new group.
	mockPrinter.On("PrintParameters",
		"orders-instance-pgpostgres15",
		mock.MatchedBy(func(settings []models.ParameterSetting) bool {
			return len(settings) == 1 && settings[0].Name == "shared_buffers"
		}),
		report.OutputFormatTypeTABLE,
	).Return(nil)

	err := execute(paramsMigrateCmd(), "-i", "orders", "-t", "15.8")

	assert.NoError(t, err)
}

func TestAlarmsCopyCmd(t *testing.T) {
	mockDatabases, _, mockAlarms, _ := setTestDependencies(t)

	mockDatabases.On("Resolve", mock.Anything, "orders-new").Return(&models.DatabaseTarget{
		Identifier: "orders-new",
		Kind:       models.KindInstance,
		Engine:     "postgres",
	}, nil)
	mockAlarms.On("ListMetricAlarms", mock.Anything).Return(nil, nil)

	err := execute(alarmsCopyCmd(), "-i", "orders", "-t", "orders-new")

	assert.NoError(t, err)
}
