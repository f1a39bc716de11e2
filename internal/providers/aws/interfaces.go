package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// RDSClientAPI defines the RDS instance, cluster and snapshot operations we
// need to mock. The SDK paginators and waiters accept any implementation of
// the matching Describe method, so this interface works with both.
//
//go:generate mockery --name=RDSClientAPI --output=./mocks
type RDSClientAPI interface {
	DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
	DescribeDBClusters(ctx context.Context, params *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error)
	DescribeDBSnapshots(ctx context.Context, params *rds.DescribeDBSnapshotsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBSnapshotsOutput, error)
	DescribeDBClusterSnapshots(ctx context.Context, params *rds.DescribeDBClusterSnapshotsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClusterSnapshotsOutput, error)
	ModifyDBInstance(ctx context.Context, params *rds.ModifyDBInstanceInput, optFns ...func(*rds.Options)) (*rds.ModifyDBInstanceOutput, error)
	ModifyDBCluster(ctx context.Context, params *rds.ModifyDBClusterInput, optFns ...func(*rds.Options)) (*rds.ModifyDBClusterOutput, error)
	CreateDBSnapshot(ctx context.Context, params *rds.CreateDBSnapshotInput, optFns ...func(*rds.Options)) (*rds.CreateDBSnapshotOutput, error)
	CreateDBClusterSnapshot(ctx context.Context, params *rds.CreateDBClusterSnapshotInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterSnapshotOutput, error)
	DeleteDBInstance(ctx context.Context, params *rds.DeleteDBInstanceInput, optFns ...func(*rds.Options)) (*rds.DeleteDBInstanceOutput, error)
	DeleteDBCluster(ctx context.Context, params *rds.DeleteDBClusterInput, optFns ...func(*rds.Options)) (*rds.DeleteDBClusterOutput, error)
}

// BlueGreenClientAPI defines the RDS Blue/Green deployment operations we
// need to mock.
//
//go:generate mockery --name=BlueGreenClientAPI --output=./mocks
type BlueGreenClientAPI interface {
	DescribeBlueGreenDeployments(ctx context.Context, params *rds.DescribeBlueGreenDeploymentsInput, optFns ...func(*rds.Options)) (*rds.DescribeBlueGreenDeploymentsOutput, error)
	CreateBlueGreenDeployment(ctx context.Context, params *rds.CreateBlueGreenDeploymentInput, optFns ...func(*rds.Options)) (*rds.CreateBlueGreenDeploymentOutput, error)
	SwitchoverBlueGreenDeployment(ctx context.Context, params *rds.SwitchoverBlueGreenDeploymentInput, optFns ...func(*rds.Options)) (*rds.SwitchoverBlueGreenDeploymentOutput, error)
	DeleteBlueGreenDeployment(ctx context.Context, params *rds.DeleteBlueGreenDeploymentInput, optFns ...func(*rds.Options)) (*rds.DeleteBlueGreenDeploymentOutput, error)
}

// ParameterClientAPI defines the DB parameter group operations we need to
// mock, for both instance and cluster parameter groups.
//
//go:generate mockery --name=ParameterClientAPI --output=./mocks
type ParameterClientAPI interface {
	DescribeDBParameters(ctx context.Context, params *rds.DescribeDBParametersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBParametersOutput, error)
	DescribeDBClusterParameters(ctx context.Context, params *rds.DescribeDBClusterParametersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClusterParametersOutput, error)
	ModifyDBParameterGroup(ctx context.Context, params *rds.ModifyDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.ModifyDBParameterGroupOutput, error)
	ModifyDBClusterParameterGroup(ctx context.Context, params *rds.ModifyDBClusterParameterGroupInput, optFns ...func(*rds.Options)) (*rds.ModifyDBClusterParameterGroupOutput, error)
	CreateDBParameterGroup(ctx context.Context, params *rds.CreateDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBParameterGroupOutput, error)
	CreateDBClusterParameterGroup(ctx context.Context, params *rds.CreateDBClusterParameterGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterParameterGroupOutput, error)
}

// CloudWatchClientAPI defines the CloudWatch alarm operations we need to mock.
//
//go:generate mockery --name=CloudWatchClientAPI --output=./mocks
type CloudWatchClientAPI interface {
	DescribeAlarms(ctx context.Context, params *cloudwatch.DescribeAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DescribeAlarmsOutput, error)
	PutMetricAlarm(ctx context.Context, params *cloudwatch.PutMetricAlarmInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricAlarmOutput, error)
}

// SecretsManagerClientAPI defines the Secrets Manager operations we need to mock.
//
//go:generate mockery --name=SecretsManagerClientAPI --output=./mocks
type SecretsManagerClientAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// STSClientAPI defines the STS operations we need to mock.
//
//go:generate mockery --name=STSClientAPI --output=./mocks
type STSClientAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// The concrete SDK clients must keep satisfying the narrow interfaces above.
var (
	_ RDSClientAPI            = (*rds.Client)(nil)
	_ BlueGreenClientAPI      = (*rds.Client)(nil)
	_ ParameterClientAPI      = (*rds.Client)(nil)
	_ CloudWatchClientAPI     = (*cloudwatch.Client)(nil)
	_ SecretsManagerClientAPI = (*secretsmanager.Client)(nil)
	_ STSClientAPI            = (*sts.Client)(nil)
)

// DatabaseServiceAPI defines the interface for RDS instance and Aurora
// cluster operations.
//
//go:generate mockery --name=DatabaseServiceAPI --output=./mocks
type DatabaseServiceAPI interface {
	Resolve(ctx context.Context, identifier string) (*models.DatabaseTarget, error)
	ListInstances(ctx context.Context) ([]models.DatabaseTarget, error)
	ListClusters(ctx context.Context) ([]models.DatabaseTarget, error)
	InstanceParameterGroups(ctx context.Context, instanceID string) ([]string, error)
	EnsureBackupRetention(ctx context.Context, target *models.DatabaseTarget) error
	CreateSnapshot(ctx context.Context, target *models.DatabaseTarget, snapshotName string) error
	DeleteDatabase(ctx context.Context, kind models.DatabaseKind, identifier string) error
}

// BlueGreenServiceAPI defines the interface for Blue/Green deployment
// operations.
//
//go:generate mockery --name=BlueGreenServiceAPI --output=./mocks
type BlueGreenServiceAPI interface {
	FindForDatabase(ctx context.Context, identifier string) (*models.BlueGreenDeployment, error)
	Status(ctx context.Context, deploymentID string) (string, error)
	Create(ctx context.Context, name, sourceARN, targetVersion string) (*models.BlueGreenDeployment, error)
	Switchover(ctx context.Context, deploymentID string, timeout time.Duration) error
	Delete(ctx context.Context, deploymentID string) (*models.BlueGreenDeployment, error)
}

// ParameterServiceAPI defines the interface for parameter group operations.
//
//go:generate mockery --name=ParameterServiceAPI --output=./mocks
type ParameterServiceAPI interface {
	ListParameters(ctx context.Context, groupName string, kind models.DatabaseKind) ([]models.ParameterSetting, error)
	UserParameters(ctx context.Context, groupName string, kind models.DatabaseKind) ([]models.ParameterSetting, error)
	ModifyParameters(ctx context.Context, groupName string, kind models.DatabaseKind, settings []models.ParameterSetting) error
	CreateParameterGroup(ctx context.Context, name, family, description string, kind models.DatabaseKind) error
}

// AlarmServiceAPI defines the interface for CloudWatch alarm operations.
//
//go:generate mockery --name=AlarmServiceAPI --output=./mocks
type AlarmServiceAPI interface {
	ListMetricAlarms(ctx context.Context) ([]cwtypes.MetricAlarm, error)
	PutMetricAlarm(ctx context.Context, input *cloudwatch.PutMetricAlarmInput) error
}

// SecretServiceAPI defines the interface for Secrets Manager lookups.
//
//go:generate mockery --name=SecretServiceAPI --output=./mocks
type SecretServiceAPI interface {
	GetDatabaseSecret(ctx context.Context, secretName string) (*models.DatabaseSecret, error)
}

// IdentityServiceAPI defines the interface for caller identity lookups.
//
//go:generate mockery --name=IdentityServiceAPI --output=./mocks
type IdentityServiceAPI interface {
	AccountID(ctx context.Context) (string, error)
}
