package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws/mocks"
)

func clusterNotFound() error {
	return &smithy.GenericAPIError{Code: "DBClusterNotFoundFault", Message: "cluster not found"}
}

func instanceNotFound() error {
	return &smithy.GenericAPIError{Code: "DBInstanceNotFoundFault", Message: "instance not found"}
}

func TestResolve_AuroraCluster(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBClusters",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DescribeDBClustersInput) bool {
			return aws.ToString(input.DBClusterIdentifier) == "analytics"
		}),
	).Return(&rds.DescribeDBClustersOutput{
		DBClusters: []types.DBCluster{
			{
				DBClusterIdentifier:     aws.String("analytics"),
				DBClusterArn:            aws.String("arn:aws:rds:us-east-1:123456789012:cluster:analytics"),
				Engine:                  aws.String("aurora-postgresql"),
				EngineVersion:           aws.String("14.7"),
				Status:                  aws.String("available"),
				BackupRetentionPeriod:   aws.Int32(7),
				DBClusterParameterGroup: aws.String("default.aurora-postgresql14"),
				DBClusterMembers: []types.DBClusterMember{
					{DBInstanceIdentifier: aws.String("analytics-1")},
					{DBInstanceIdentifier: aws.String("analytics-2")},
				},
			},
		},
	}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	target, err := service.Resolve(context.Background(), "analytics")

	assert.NoError(t, err)
	assert.Equal(t, models.KindCluster, target.Kind)
	assert.Equal(t, "aurora-postgresql", target.Engine)
	assert.Equal(t, "14.7", target.EngineVersion)
	assert.Equal(t, []string{"analytics-1", "analytics-2"}, target.MemberInstances)
	assert.Equal(t, "default.aurora-postgresql14", target.ClusterParameterGroup)
}

func TestResolve_PostgresInstance(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBClusters", mock.Anything, mock.Anything).
		Return(nil, clusterNotFound())

	mockClient.On("DescribeDBInstances",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DescribeDBInstancesInput) bool {
			return aws.ToString(input.DBInstanceIdentifier) == "orders"
		}),
	).Return(&rds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{
			{
				DBInstanceIdentifier:  aws.String("orders"),
				DBInstanceArn:         aws.String("arn:aws:rds:us-east-1:123456789012:db:orders"),
				Engine:                aws.String("postgres"),
				EngineVersion:         aws.String("13.11"),
				DBInstanceStatus:      aws.String("available"),
				BackupRetentionPeriod: aws.Int32(0),
				Endpoint: &types.Endpoint{
					Address: aws.String("orders.abc.us-east-1.rds.amazonaws.com"),
					Port:    aws.Int32(5432),
				},
				DBParameterGroups: []types.DBParameterGroupStatus{
					{DBParameterGroupName: aws.String("orders-pg13")},
				},
			},
		},
	}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	target, err := service.Resolve(context.Background(), "orders")

	assert.NoError(t, err)
	assert.Equal(t, models.KindInstance, target.Kind)
	assert.Equal(t, "13.11", target.EngineVersion)
	assert.Equal(t, int32(5432), target.Port)
	assert.Equal(t, []string{"orders-pg13"}, target.ParameterGroups)
}

func TestResolve_NonPostgresEngine(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBClusters", mock.Anything, mock.Anything).
		Return(nil, clusterNotFound())

	mockClient.On("DescribeDBInstances", mock.Anything, mock.Anything).
		Return(&rds.DescribeDBInstancesOutput{
			DBInstances: []types.DBInstance{
				{
					DBInstanceIdentifier: aws.String("legacy"),
					Engine:               aws.String("mysql"),
				},
			},
		}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	target, err := service.Resolve(context.Background(), "legacy")

	assert.Nil(t, target)
	assert.True(t, IsNotFound(err))
}

func TestResolve_NothingMatches(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBClusters", mock.Anything, mock.Anything).
		Return(nil, clusterNotFound())
	mockClient.On("DescribeDBInstances", mock.Anything, mock.Anything).
		Return(nil, instanceNotFound())

	service := NewDatabaseServiceWithClient(mockClient)
	target, err := service.Resolve(context.Background(), "ghost")

	assert.Nil(t, target)
	assert.Error(t, err)

	var awsErr *Error
	assert.True(t, errors.As(err, &awsErr))
	assert.Equal(t, ErrResourceNotFound, awsErr.Category)
	assert.Equal(t, "ghost", awsErr.ResourceID)
}

func TestResolve_PermissionError(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBClusters", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "not authorized"})

	service := NewDatabaseServiceWithClient(mockClient)
	target, err := service.Resolve(context.Background(), "secure")

	assert.Nil(t, target)
	assert.True(t, IsErrorCategory(err, ErrPermissionDenied))
}

func TestEnsureBackupRetention_AlreadyEnabled(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	service := NewDatabaseServiceWithClient(mockClient)
	err := service.EnsureBackupRetention(context.Background(), &models.DatabaseTarget{
		Identifier:            "orders",
		Kind:                  models.KindInstance,
		BackupRetentionPeriod: 7,
	})

	// No API calls expected when retention is already on.
	assert.NoError(t, err)
	mockClient.AssertNotCalled(t, "ModifyDBInstance", mock.Anything, mock.Anything)
}

func TestEnsureBackupRetention_EnablesForInstance(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("ModifyDBInstance",
		mock.Anything,
		mock.MatchedBy(func(input *rds.ModifyDBInstanceInput) bool {
			return aws.ToString(input.DBInstanceIdentifier) == "orders" &&
				aws.ToInt32(input.BackupRetentionPeriod) == 1 &&
				aws.ToBool(input.ApplyImmediately)
		}),
	).Return(&rds.ModifyDBInstanceOutput{}, nil)

	// The availability waiter polls DescribeDBInstances.
	mockClient.On("DescribeDBInstances", mock.Anything, mock.Anything, mock.Anything).
		Return(&rds.DescribeDBInstancesOutput{
			DBInstances: []types.DBInstance{
				{DBInstanceStatus: aws.String("available")},
			},
		}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	err := service.EnsureBackupRetention(context.Background(), &models.DatabaseTarget{
		Identifier:            "orders",
		Kind:                  models.KindInstance,
		BackupRetentionPeriod: 0,
	})

	assert.NoError(t, err)
}

func TestCreateSnapshot_Instance(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("CreateDBSnapshot",
		mock.Anything,
		mock.MatchedBy(func(input *rds.CreateDBSnapshotInput) bool {
			return aws.ToString(input.DBSnapshotIdentifier) == "orders-snapshot-20250102030405" &&
				aws.ToString(input.DBInstanceIdentifier) == "orders"
		}),
	).Return(&rds.CreateDBSnapshotOutput{}, nil)

	mockClient.On("DescribeDBSnapshots", mock.Anything, mock.Anything, mock.Anything).
		Return(&rds.DescribeDBSnapshotsOutput{
			DBSnapshots: []types.DBSnapshot{
				{Status: aws.String("available")},
			},
		}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	err := service.CreateSnapshot(context.Background(), &models.DatabaseTarget{
		Identifier: "orders",
		Kind:       models.KindInstance,
	}, "orders-snapshot-20250102030405")

	assert.NoError(t, err)
}

func TestDeleteDatabase_Instance(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("ModifyDBInstance",
		mock.Anything,
		mock.MatchedBy(func(input *rds.ModifyDBInstanceInput) bool {
			return aws.ToString(input.DBInstanceIdentifier) == "orders-old1" &&
				input.DeletionProtection != nil && !*input.DeletionProtection
		}),
	).Return(&rds.ModifyDBInstanceOutput{}, nil)

	mockClient.On("DeleteDBInstance",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DeleteDBInstanceInput) bool {
			return aws.ToString(input.DBInstanceIdentifier) == "orders-old1" &&
				aws.ToBool(input.SkipFinalSnapshot) &&
				input.DeleteAutomatedBackups != nil && !*input.DeleteAutomatedBackups
		}),
	).Return(&rds.DeleteDBInstanceOutput{}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	err := service.DeleteDatabase(context.Background(), models.KindInstance, "orders-old1")

	assert.NoError(t, err)
}

func TestDeleteDatabase_ClusterDeletesMembersFirst(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("ModifyDBCluster",
		mock.Anything,
		mock.MatchedBy(func(input *rds.ModifyDBClusterInput) bool {
			return aws.ToString(input.DBClusterIdentifier) == "analytics-old1" &&
				input.DeletionProtection != nil && !*input.DeletionProtection
		}),
	).Return(&rds.ModifyDBClusterOutput{}, nil)

	mockClient.On("DescribeDBInstances",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DescribeDBInstancesInput) bool {
			return len(input.Filters) == 1 &&
				aws.ToString(input.Filters[0].Name) == "db-cluster-id" &&
				input.Filters[0].Values[0] == "analytics-old1"
		}),
	).Return(&rds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{
			{DBInstanceIdentifier: aws.String("analytics-old1-1")},
			{DBInstanceIdentifier: aws.String("analytics-old1-2")},
		},
	}, nil)

	mockClient.On("DeleteDBInstance", mock.Anything, mock.Anything).
		Return(&rds.DeleteDBInstanceOutput{}, nil).Twice()

	mockClient.On("DeleteDBCluster",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DeleteDBClusterInput) bool {
			return aws.ToString(input.DBClusterIdentifier) == "analytics-old1" &&
				aws.ToBool(input.SkipFinalSnapshot)
		}),
	).Return(&rds.DeleteDBClusterOutput{}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	err := service.DeleteDatabase(context.Background(), models.KindCluster, "analytics-old1")

	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "DeleteDBInstance", 2)
}

func TestListInstances_Pagination(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBInstances",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DescribeDBInstancesInput) bool {
			return input.Marker == nil
		}),
		mock.Anything,
	).Return(&rds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{
			{DBInstanceIdentifier: aws.String("db-1"), Engine: aws.String("postgres"), EngineVersion: aws.String("12.14")},
		},
		Marker: aws.String("page-2"),
	}, nil).Once()

	mockClient.On("DescribeDBInstances",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DescribeDBInstancesInput) bool {
			return aws.ToString(input.Marker) == "page-2"
		}),
		mock.Anything,
	).Return(&rds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{
			{DBInstanceIdentifier: aws.String("db-2"), Engine: aws.String("postgres"), EngineVersion: aws.String("15.3")},
		},
	}, nil).Once()

	service := NewDatabaseServiceWithClient(mockClient)
	targets, err := service.ListInstances(context.Background())

	assert.NoError(t, err)
	assert.Len(t, targets, 2)
	assert.Equal(t, "db-1", targets[0].Identifier)
	assert.Equal(t, "db-2", targets[1].Identifier)
}

func TestInstanceParameterGroups(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBInstances",
		mock.Anything,
		mock.MatchedBy(func(input *rds.DescribeDBInstancesInput) bool {
			return aws.ToString(input.DBInstanceIdentifier) == "analytics-1"
		}),
	).Return(&rds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{
			{
				DBInstanceIdentifier: aws.String("analytics-1"),
				Engine:               aws.String("aurora-postgresql"),
				DBParameterGroups: []types.DBParameterGroupStatus{
					{DBParameterGroupName: aws.String("analytics-instance-params")},
				},
			},
		},
	}, nil)

	service := NewDatabaseServiceWithClient(mockClient)
	groups, err := service.InstanceParameterGroups(context.Background(), "analytics-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"analytics-instance-params"}, groups)
}

func TestInstanceParameterGroups_NotFound(t *testing.T) {
	mockClient := mocks.NewRDSClientAPI(t)

	mockClient.On("DescribeDBInstances", mock.Anything, mock.Anything).
		Return(nil, instanceNotFound())

	service := NewDatabaseServiceWithClient(mockClient)
	_, err := service.InstanceParameterGroups(context.Background(), "gone")

	assert.True(t, IsNotFound(err))
}
