package preflight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	awsmocks "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws/mocks"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/preflight/mocks"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

func testConfig() Config {
	return Config{
		SecretNameTemplate: "athena/rds/%s/root",
		ConnectTimeout:     30 * time.Second,
	}
}

func testSecret() *models.DatabaseSecret {
	return &models.DatabaseSecret{
		Host:     "orders.cluster-abc.us-east-1.rds.amazonaws.com",
		Port:     5432,
		Database: "postgres",
		Username: "root",
		Password: "hunter2",
	}
}

// connectTo fixes the injected ConnectFunc to a prepared inspector, asserting
// the secret that reached it.
func connectTo(t *testing.T, inspector Inspector) ConnectFunc {
	return func(_ context.Context, secret *models.DatabaseSecret, connectTimeout time.Duration) (Inspector, error) {
		assert.Equal(t, "orders.cluster-abc.us-east-1.rds.amazonaws.com", secret.Host)
		assert.Equal(t, 30*time.Second, connectTimeout)
		return inspector, nil
	}
}

func TestRun_CleanDatabase(t *testing.T) {
	mockSecrets := awsmocks.NewSecretServiceAPI(t)
	mockInspector := mocks.NewInspector(t)

	mockSecrets.On("GetDatabaseSecret", mock.Anything, "athena/rds/orders/root").
		Return(testSecret(), nil)
	mockInspector.On("ActiveReplicationSlots", mock.Anything).
		Return([]models.ReplicationSlot{}, nil)
	mockInspector.On("InstalledExtensions", mock.Anything).
		Return([]string{"plpgsql", "pg_stat_statements"}, nil)
	mockInspector.On("Close", mock.Anything).Return(nil)

	service := NewService(testConfig(), mockSecrets, connectTo(t, mockInspector), logging.NewMockLogger())
	report, err := service.Run(context.Background(), "orders")

	assert.NoError(t, err)
	assert.True(t, report.Safe())
	assert.Empty(t, report.Findings)
	assert.Equal(t, []string{"plpgsql", "pg_stat_statements"}, report.Extensions)
}

func TestRun_ActiveSlotBlocks(t *testing.T) {
	mockSecrets := awsmocks.NewSecretServiceAPI(t)
	mockInspector := mocks.NewInspector(t)

	mockSecrets.On("GetDatabaseSecret", mock.Anything, "athena/rds/orders/root").
		Return(testSecret(), nil)
	mockInspector.On("ActiveReplicationSlots", mock.Anything).
		Return([]models.ReplicationSlot{{Name: "debezium_slot", Active: true}}, nil)
	mockInspector.On("InstalledExtensions", mock.Anything).
		Return([]string{"plpgsql"}, nil)
	mockInspector.On("Close", mock.Anything).Return(nil)

	service := NewService(testConfig(), mockSecrets, connectTo(t, mockInspector), logging.NewMockLogger())
	report, err := service.Run(context.Background(), "orders")

	assert.NoError(t, err)
	assert.False(t, report.Safe())
	assert.Len(t, report.Findings, 1)
	assert.Equal(t, models.FindingReplicationSlot, report.Findings[0].Kind)
	assert.Equal(t, "debezium_slot", report.Findings[0].Name)
}

func TestRun_FlaggedExtensionsCollected(t *testing.T) {
	mockSecrets := awsmocks.NewSecretServiceAPI(t)
	mockInspector := mocks.NewInspector(t)

	mockSecrets.On("GetDatabaseSecret", mock.Anything, "athena/rds/orders/root").
		Return(testSecret(), nil)
	mockInspector.On("ActiveReplicationSlots", mock.Anything).
		Return([]models.ReplicationSlot{}, nil)
	mockInspector.On("InstalledExtensions", mock.Anything).
		Return([]string{"plpgsql", "pg_partman", "pg_cron", "pgaudit"}, nil)
	mockInspector.On("Close", mock.Anything).Return(nil)

	service := NewService(testConfig(), mockSecrets, connectTo(t, mockInspector), logging.NewMockLogger())
	report, err := service.Run(context.Background(), "orders")

	assert.NoError(t, err)
	assert.False(t, report.Safe())

	// Every flagged extension is reported, not just the first one found
	assert.Len(t, report.Findings, 3)
	assert.Equal(t, "pg_partman", report.Findings[0].Name)
	assert.Equal(t, "Should be disabled in blue environments.", report.Findings[0].Advice)
	assert.Equal(t, "pg_cron", report.Findings[1].Name)
	assert.Equal(t, "Should remain disabled in green environments.", report.Findings[1].Advice)
	assert.Equal(t, "pgaudit", report.Findings[2].Name)
	assert.Equal(t, "Must remain in shared_preload_libraries.", report.Findings[2].Advice)
}

func TestRun_SecretFetchFails(t *testing.T) {
	mockSecrets := awsmocks.NewSecretServiceAPI(t)

	mockSecrets.On("GetDatabaseSecret", mock.Anything, "athena/rds/orders/root").
		Return(nil, errors.New("access denied"))

	connect := func(context.Context, *models.DatabaseSecret, time.Duration) (Inspector, error) {
		t.Fatal("connect should not be called when the secret fetch fails")
		return nil, nil
	}

	service := NewService(testConfig(), mockSecrets, connect, logging.NewMockLogger())
	_, err := service.Run(context.Background(), "orders")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching database credentials")
}

func TestRun_ConnectFails(t *testing.T) {
	mockSecrets := awsmocks.NewSecretServiceAPI(t)

	mockSecrets.On("GetDatabaseSecret", mock.Anything, "athena/rds/orders/root").
		Return(testSecret(), nil)

	connect := func(context.Context, *models.DatabaseSecret, time.Duration) (Inspector, error) {
		return nil, errors.New("connection refused")
	}

	service := NewService(testConfig(), mockSecrets, connect, logging.NewMockLogger())
	_, err := service.Run(context.Background(), "orders")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error connecting to database")
}

func TestRun_SlotQueryFails(t *testing.T) {
	mockSecrets := awsmocks.NewSecretServiceAPI(t)
	mockInspector := mocks.NewInspector(t)

	mockSecrets.On("GetDatabaseSecret", mock.Anything, "athena/rds/orders/root").
		Return(testSecret(), nil)
	mockInspector.On("ActiveReplicationSlots", mock.Anything).
		Return(nil, errors.New("permission denied for view pg_replication_slots"))
	mockInspector.On("Close", mock.Anything).Return(nil)

	service := NewService(testConfig(), mockSecrets, connectTo(t, mockInspector), logging.NewMockLogger())
	_, err := service.Run(context.Background(), "orders")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error checking replication slots")
	mockInspector.AssertNotCalled(t, "InstalledExtensions", mock.Anything)
}
