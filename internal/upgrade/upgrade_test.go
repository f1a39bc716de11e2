package upgrade

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/preflight"
	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	awsmocks "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws/mocks"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/upgrade/mocks"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

// fastConfig keeps the poll and prompt loops short enough for tests.
func fastConfig() Config {
	return Config{
		PollInterval:      time.Millisecond,
		PollTimeout:       25 * time.Millisecond,
		SwitchoverTimeout: 2 * time.Second,
		PromptTimeout:     20 * time.Millisecond,
	}
}

func upgradeTarget() *models.DatabaseTarget {
	return &models.DatabaseTarget{
		Identifier:            "orders",
		Kind:                  models.KindInstance,
		ARN:                   "arn:aws:rds:us-east-1:123456789012:db:orders",
		Engine:                "postgres",
		EngineVersion:         "13.13",
		BackupRetentionPeriod: 7,
	}
}

func deployment(status string) *models.BlueGreenDeployment {
	return &models.BlueGreenDeployment{
		Identifier: "bgd-abc123",
		Name:       "bg-deployment-orders",
		Status:     status,
		SourceARN:  "arn:aws:rds:us-east-1:123456789012:db:orders",
		TargetARN:  "arn:aws:rds:us-east-1:123456789012:db:orders-green-xyz",
	}
}

func safeReport() models.PreflightReport {
	return models.PreflightReport{Identifier: "orders", Host: "orders.rds.amazonaws.com", Database: "postgres"}
}

func newTestService(t *testing.T, config Config, input io.Reader) (*Service, *awsmocks.DatabaseServiceAPI, *awsmocks.BlueGreenServiceAPI, *mocks.PreflightRunner) {
	mockDatabases := awsmocks.NewDatabaseServiceAPI(t)
	mockBluegreens := awsmocks.NewBlueGreenServiceAPI(t)
	mockChecks := mocks.NewPreflightRunner(t)
	service := NewService(config, mockDatabases, mockBluegreens, mockChecks, logging.NewMockLogger(), input)
	return service, mockDatabases, mockBluegreens, mockChecks
}

func TestRun_UpToDate(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	target := upgradeTarget()
	target.EngineVersion = "15.8"
	mockDatabases.On("Resolve", mock.Anything, "orders").Return(target, nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeUpToDate, outcome)
	mockBluegreens.AssertNotCalled(t, "FindForDatabase", mock.Anything, mock.Anything)
}

func TestRun_DowngradeRefused(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	target := upgradeTarget()
	target.EngineVersion = "16.1"
	mockDatabases.On("Resolve", mock.Anything, "orders").Return(target, nil)

	_, err := service.Run(context.Background(), "orders", "15.8")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "downgrade refused")
	mockBluegreens.AssertNotCalled(t, "FindForDatabase", mock.Anything, mock.Anything)
}

func TestRun_UnsafePreflightBlocks(t *testing.T) {
	service, mockDatabases, mockBluegreens, mockChecks := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").Return(nil, nil)

	report := safeReport()
	report.Findings = []models.PreflightFinding{
		{Kind: models.FindingReplicationSlot, Name: "debezium_slot", Advice: "Drop or deactivate the slot before upgrading."},
	}
	mockChecks.On("Run", mock.Anything, "orders").Return(report, nil)

	_, err := service.Run(context.Background(), "orders", "15.8")

	assert.ErrorIs(t, err, preflight.ErrUnsafe)
	mockBluegreens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_CreatesDeployment(t *testing.T) {
	// Input closes without an answer, so the snapshot offer defaults to no.
	service, mockDatabases, mockBluegreens, mockChecks := newTestService(t, fastConfig(), strings.NewReader(""))

	target := upgradeTarget()
	mockDatabases.On("Resolve", mock.Anything, "orders").Return(target, nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").Return(nil, nil)
	mockChecks.On("Run", mock.Anything, "orders").Return(safeReport(), nil)
	mockDatabases.On("EnsureBackupRetention", mock.Anything, target).Return(nil)
	mockBluegreens.On("Create", mock.Anything, "bg-deployment-orders", target.ARN, "15.8").
		Return(deployment(aws.BlueGreenStatusProvisioning), nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeDeploymentCreated, outcome)
	mockDatabases.AssertNotCalled(t, "CreateSnapshot", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_SnapshotTakenWhenConfirmed(t *testing.T) {
	service, mockDatabases, mockBluegreens, mockChecks := newTestService(t, fastConfig(), strings.NewReader("y\n"))

	target := upgradeTarget()
	mockDatabases.On("Resolve", mock.Anything, "orders").Return(target, nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").Return(nil, nil)
	mockChecks.On("Run", mock.Anything, "orders").Return(safeReport(), nil)
	mockDatabases.On("CreateSnapshot", mock.Anything, target,
		mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "orders-snapshot-")
		})).Return(nil)
	mockDatabases.On("EnsureBackupRetention", mock.Anything, target).Return(nil)
	mockBluegreens.On("Create", mock.Anything, "bg-deployment-orders", target.ARN, "15.8").
		Return(deployment(aws.BlueGreenStatusProvisioning), nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeDeploymentCreated, outcome)
}

func TestRun_AutoApproveSkipsPrompt(t *testing.T) {
	config := fastConfig()
	config.AutoApprove = true
	service, mockDatabases, mockBluegreens, mockChecks := newTestService(t, config, strings.NewReader(""))

	target := upgradeTarget()
	mockDatabases.On("Resolve", mock.Anything, "orders").Return(target, nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").Return(nil, nil)
	mockChecks.On("Run", mock.Anything, "orders").Return(safeReport(), nil)
	mockDatabases.On("CreateSnapshot", mock.Anything, target, mock.Anything).Return(nil)
	mockDatabases.On("EnsureBackupRetention", mock.Anything, target).Return(nil)
	mockBluegreens.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deployment(aws.BlueGreenStatusProvisioning), nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeDeploymentCreated, outcome)
	mockDatabases.AssertNumberOfCalls(t, "CreateSnapshot", 1)
}

func TestRun_AvailableStartsSwitchover(t *testing.T) {
	service, mockDatabases, mockBluegreens, mockChecks := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").
		Return(deployment(aws.BlueGreenStatusAvailable), nil)
	mockBluegreens.On("Switchover", mock.Anything, "bgd-abc123", 2*time.Second).Return(nil)
	mockBluegreens.On("Status", mock.Anything, "bgd-abc123").
		Return(aws.BlueGreenStatusSwitchoverCompleted, nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeSwitchoverComplete, outcome)
	mockChecks.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRun_InProgressPollsUntilComplete(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").
		Return(deployment(aws.BlueGreenStatusSwitchoverInProgress), nil)
	mockBluegreens.On("Status", mock.Anything, "bgd-abc123").
		Return(aws.BlueGreenStatusSwitchoverInProgress, nil).Twice()
	mockBluegreens.On("Status", mock.Anything, "bgd-abc123").
		Return(aws.BlueGreenStatusSwitchoverCompleted, nil).Once()

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeSwitchoverComplete, outcome)
	mockBluegreens.AssertNotCalled(t, "Switchover", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_PollBudgetExhaustedIsNotAnError(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").
		Return(deployment(aws.BlueGreenStatusSwitchoverInProgress), nil)
	mockBluegreens.On("Status", mock.Anything, "bgd-abc123").
		Return(aws.BlueGreenStatusSwitchoverInProgress, nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeInProgress, outcome)
}

func TestRun_SwitchoverFailureSurfaces(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").
		Return(deployment(aws.BlueGreenStatusSwitchoverInProgress), nil)
	mockBluegreens.On("Status", mock.Anything, "bgd-abc123").
		Return(aws.BlueGreenStatusSwitchoverFailed, nil)

	_, err := service.Run(context.Background(), "orders", "15.8")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "switchover of deployment bgd-abc123 failed")
}

func TestRun_CompletedCleansUp(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").
		Return(deployment(aws.BlueGreenStatusSwitchoverCompleted), nil)

	deleted := deployment(aws.BlueGreenStatusSwitchoverCompleted)
	deleted.SourceARN = "arn:aws:rds:us-east-1:123456789012:db:orders-old1"
	mockBluegreens.On("Delete", mock.Anything, "bgd-abc123").Return(deleted, nil)
	mockDatabases.On("DeleteDatabase", mock.Anything, models.KindInstance, "orders-old1").Return(nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCleanedUp, outcome)
}

func TestRun_ProvisioningDeploymentWaits(t *testing.T) {
	service, mockDatabases, mockBluegreens, _ := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").
		Return(deployment(aws.BlueGreenStatusProvisioning), nil)

	outcome, err := service.Run(context.Background(), "orders", "15.8")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeInProgress, outcome)
	mockBluegreens.AssertNotCalled(t, "Switchover", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_PreflightErrorPropagates(t *testing.T) {
	service, mockDatabases, mockBluegreens, mockChecks := newTestService(t, fastConfig(), strings.NewReader(""))

	mockDatabases.On("Resolve", mock.Anything, "orders").Return(upgradeTarget(), nil)
	mockBluegreens.On("FindForDatabase", mock.Anything, "orders").Return(nil, nil)
	mockChecks.On("Run", mock.Anything, "orders").
		Return(models.PreflightReport{}, errors.New("secret not found"))

	_, err := service.Run(context.Background(), "orders", "15.8")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error running pre-upgrade checks")
}

func TestDeploymentName(t *testing.T) {
	assert.Equal(t, "bg-deployment-orders", deploymentName("orders"))

	long := strings.Repeat("a", 70)
	name := deploymentName(long)
	assert.Len(t, name, maxDeploymentNameLength)
	assert.True(t, strings.HasPrefix(name, deploymentNamePrefix))
}

func TestConfirm(t *testing.T) {
	assert.True(t, confirm(strings.NewReader("yes\n"), "Proceed?", time.Second))
	assert.True(t, confirm(strings.NewReader("Y\n"), "Proceed?", time.Second))
	assert.False(t, confirm(strings.NewReader("no\n"), "Proceed?", time.Second))
	assert.False(t, confirm(strings.NewReader(""), "Proceed?", time.Second))
}

func TestConfirm_TimesOutToNo(t *testing.T) {
	// A pipe with no writer simulates an operator who never answers.
	r, w := io.Pipe()
	defer w.Close()

	start := time.Now()
	answer := confirm(r, "Proceed?", 15*time.Millisecond)

	assert.False(t, answer)
	assert.Less(t, time.Since(start), time.Second)
}
