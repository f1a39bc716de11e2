package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// defaultWaitTimeout bounds the SDK waiters used after mutating calls. This
// matches the boto3 waiter ceiling of 30s delay times 60 attempts.
const defaultWaitTimeout = 30 * time.Minute

// DatabaseService handles interactions with RDS instances and Aurora clusters.
type DatabaseService struct {
	client RDSClientAPI
}

// NewDatabaseServiceWithClient creates a new DatabaseService with a provided client.
func NewDatabaseServiceWithClient(client RDSClientAPI) *DatabaseService {
	return &DatabaseService{
		client: client,
	}
}

// LoadSDKConfig loads the default AWS SDK configuration, optionally pinned to
// a region. Shared by all service constructors in the cmd layer.
func LoadSDKConfig(ctx context.Context, region string) (aws.Config, error) {
	var optFns []func(*config.LoadOptions) error
	if region != "" {
		optFns = append(optFns, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return cfg, nil
}

// Resolve finds the database behind an identifier. Aurora clusters are
// checked first; when no cluster matches, the identifier is tried as a
// standalone RDS PostgreSQL instance.
func (s *DatabaseService) Resolve(ctx context.Context, identifier string) (*models.DatabaseTarget, error) {
	resp, err := s.client.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{
		DBClusterIdentifier: aws.String(identifier),
	})
	if err != nil {
		classified := ClassifyAWSError(err, DBClusterResourceType, identifier)
		if classified.Category != ErrResourceNotFound {
			return nil, classified
		}
		// Not a cluster, fall through to the instance lookup.
	} else if len(resp.DBClusters) > 0 {
		cluster := resp.DBClusters[0]
		if strings.Contains(strings.ToLower(aws.ToString(cluster.Engine)), "aurora") {
			target := targetFromCluster(cluster)
			return &target, nil
		}
	}

	instResp, err := s.client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(identifier),
	})
	if err != nil {
		classified := ClassifyAWSError(err, DBInstanceResourceType, identifier)
		if classified.Category != ErrResourceNotFound {
			return nil, classified
		}
	} else if len(instResp.DBInstances) > 0 {
		instance := instResp.DBInstances[0]
		if aws.ToString(instance.Engine) == "postgres" {
			target := targetFromInstance(instance)
			return &target, nil
		}
	}

	return nil, NewAWSError(ErrResourceNotFound, DBInstanceResourceType, identifier,
		"identifier does not match any Aurora cluster or RDS PostgreSQL instance", err)
}

// ListInstances returns all RDS instances in the region, Aurora members included.
func (s *DatabaseService) ListInstances(ctx context.Context) ([]models.DatabaseTarget, error) {
	var targets []models.DatabaseTarget

	paginator := rds.NewDescribeDBInstancesPaginator(s.client, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, DBInstanceResourceType, "")
		}
		for _, instance := range page.DBInstances {
			targets = append(targets, targetFromInstance(instance))
		}
	}

	return targets, nil
}

// ListClusters returns all Aurora clusters in the region.
func (s *DatabaseService) ListClusters(ctx context.Context) ([]models.DatabaseTarget, error) {
	var targets []models.DatabaseTarget

	paginator := rds.NewDescribeDBClustersPaginator(s.client, &rds.DescribeDBClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, DBClusterResourceType, "")
		}
		for _, cluster := range page.DBClusters {
			targets = append(targets, targetFromCluster(cluster))
		}
	}

	return targets, nil
}

// InstanceParameterGroups returns the DB parameter groups attached to an
// instance. Used for the instance-level groups of Aurora members, which
// Resolve does not surface.
func (s *DatabaseService) InstanceParameterGroups(ctx context.Context, instanceID string) ([]string, error) {
	resp, err := s.client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(instanceID),
	})
	if err != nil {
		return nil, ClassifyAWSError(err, DBInstanceResourceType, instanceID)
	}
	if len(resp.DBInstances) == 0 {
		return nil, NewAWSError(ErrResourceNotFound, DBInstanceResourceType, instanceID,
			"Resource not found", nil)
	}

	var groups []string
	for _, group := range resp.DBInstances[0].DBParameterGroups {
		groups = append(groups, aws.ToString(group.DBParameterGroupName))
	}
	return groups, nil
}

// EnsureBackupRetention raises the backup retention period to 1 day when it
// is currently disabled. Blue/Green deployments require automated backups on
// the source. The change is applied immediately and the call blocks until
// the database is available again.
func (s *DatabaseService) EnsureBackupRetention(ctx context.Context, target *models.DatabaseTarget) error {
	if target.BackupRetentionPeriod >= 1 {
		return nil
	}

	if target.IsCluster() {
		_, err := s.client.ModifyDBCluster(ctx, &rds.ModifyDBClusterInput{
			DBClusterIdentifier:   aws.String(target.Identifier),
			BackupRetentionPeriod: aws.Int32(1),
			ApplyImmediately:      aws.Bool(true),
		})
		if err != nil {
			return ClassifyAWSError(err, DBClusterResourceType, target.Identifier)
		}

		waiter := rds.NewDBClusterAvailableWaiter(s.client)
		if err := waiter.Wait(ctx, &rds.DescribeDBClustersInput{
			DBClusterIdentifier: aws.String(target.Identifier),
		}, defaultWaitTimeout); err != nil {
			return fmt.Errorf("waiting for cluster %s to become available: %w", target.Identifier, err)
		}
		return nil
	}

	_, err := s.client.ModifyDBInstance(ctx, &rds.ModifyDBInstanceInput{
		DBInstanceIdentifier:  aws.String(target.Identifier),
		BackupRetentionPeriod: aws.Int32(1),
		ApplyImmediately:      aws.Bool(true),
	})
	if err != nil {
		return ClassifyAWSError(err, DBInstanceResourceType, target.Identifier)
	}

	waiter := rds.NewDBInstanceAvailableWaiter(s.client)
	if err := waiter.Wait(ctx, &rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(target.Identifier),
	}, defaultWaitTimeout); err != nil {
		return fmt.Errorf("waiting for instance %s to become available: %w", target.Identifier, err)
	}
	return nil
}

// CreateSnapshot takes a manual snapshot of the target and blocks until it
// is available.
func (s *DatabaseService) CreateSnapshot(ctx context.Context, target *models.DatabaseTarget, snapshotName string) error {
	if target.IsCluster() {
		_, err := s.client.CreateDBClusterSnapshot(ctx, &rds.CreateDBClusterSnapshotInput{
			DBClusterSnapshotIdentifier: aws.String(snapshotName),
			DBClusterIdentifier:         aws.String(target.Identifier),
		})
		if err != nil {
			return ClassifyAWSError(err, SnapshotResourceType, snapshotName)
		}

		waiter := rds.NewDBClusterSnapshotAvailableWaiter(s.client)
		if err := waiter.Wait(ctx, &rds.DescribeDBClusterSnapshotsInput{
			DBClusterSnapshotIdentifier: aws.String(snapshotName),
		}, defaultWaitTimeout); err != nil {
			return fmt.Errorf("waiting for cluster snapshot %s: %w", snapshotName, err)
		}
		return nil
	}

	_, err := s.client.CreateDBSnapshot(ctx, &rds.CreateDBSnapshotInput{
		DBSnapshotIdentifier: aws.String(snapshotName),
		DBInstanceIdentifier: aws.String(target.Identifier),
	})
	if err != nil {
		return ClassifyAWSError(err, SnapshotResourceType, snapshotName)
	}

	waiter := rds.NewDBSnapshotAvailableWaiter(s.client)
	if err := waiter.Wait(ctx, &rds.DescribeDBSnapshotsInput{
		DBSnapshotIdentifier: aws.String(snapshotName),
	}, defaultWaitTimeout); err != nil {
		return fmt.Errorf("waiting for snapshot %s: %w", snapshotName, err)
	}
	return nil
}

// DeleteDatabase disables deletion protection and deletes the database. For
// clusters the member instances are deleted before the cluster itself. Final
// snapshots are skipped but automated backups are kept.
func (s *DatabaseService) DeleteDatabase(ctx context.Context, kind models.DatabaseKind, identifier string) error {
	if kind == models.KindCluster {
		return s.deleteCluster(ctx, identifier)
	}
	return s.deleteInstance(ctx, identifier)
}

func (s *DatabaseService) deleteInstance(ctx context.Context, identifier string) error {
	_, err := s.client.ModifyDBInstance(ctx, &rds.ModifyDBInstanceInput{
		DBInstanceIdentifier: aws.String(identifier),
		DeletionProtection:   aws.Bool(false),
	})
	if err != nil {
		return ClassifyAWSError(err, DBInstanceResourceType, identifier)
	}

	_, err = s.client.DeleteDBInstance(ctx, &rds.DeleteDBInstanceInput{
		DBInstanceIdentifier:   aws.String(identifier),
		SkipFinalSnapshot:      aws.Bool(true),
		DeleteAutomatedBackups: aws.Bool(false),
	})
	if err != nil {
		return ClassifyAWSError(err, DBInstanceResourceType, identifier)
	}
	return nil
}

func (s *DatabaseService) deleteCluster(ctx context.Context, identifier string) error {
	_, err := s.client.ModifyDBCluster(ctx, &rds.ModifyDBClusterInput{
		DBClusterIdentifier: aws.String(identifier),
		DeletionProtection:  aws.Bool(false),
	})
	if err != nil {
		return ClassifyAWSError(err, DBClusterResourceType, identifier)
	}

	members, err := s.client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{
		Filters: []types.Filter{
			{Name: aws.String("db-cluster-id"), Values: []string{identifier}},
		},
	})
	if err != nil {
		return ClassifyAWSError(err, DBClusterResourceType, identifier)
	}

	for _, member := range members.DBInstances {
		memberID := aws.ToString(member.DBInstanceIdentifier)
		_, err := s.client.DeleteDBInstance(ctx, &rds.DeleteDBInstanceInput{
			DBInstanceIdentifier:   aws.String(memberID),
			SkipFinalSnapshot:      aws.Bool(true),
			DeleteAutomatedBackups: aws.Bool(false),
		})
		if err != nil {
			return ClassifyAWSError(err, DBInstanceResourceType, memberID)
		}
	}

	_, err = s.client.DeleteDBCluster(ctx, &rds.DeleteDBClusterInput{
		DBClusterIdentifier:    aws.String(identifier),
		SkipFinalSnapshot:      aws.Bool(true),
		DeleteAutomatedBackups: aws.Bool(false),
	})
	if err != nil {
		return ClassifyAWSError(err, DBClusterResourceType, identifier)
	}
	return nil
}

// targetFromInstance converts an SDK DBInstance to the domain model.
func targetFromInstance(instance types.DBInstance) models.DatabaseTarget {
	target := models.DatabaseTarget{
		Identifier:            aws.ToString(instance.DBInstanceIdentifier),
		Kind:                  models.KindInstance,
		ARN:                   aws.ToString(instance.DBInstanceArn),
		Engine:                aws.ToString(instance.Engine),
		EngineVersion:         aws.ToString(instance.EngineVersion),
		Status:                aws.ToString(instance.DBInstanceStatus),
		BackupRetentionPeriod: aws.ToInt32(instance.BackupRetentionPeriod),
		DeletionProtection:    aws.ToBool(instance.DeletionProtection),
	}

	if instance.Endpoint != nil {
		target.Endpoint = aws.ToString(instance.Endpoint.Address)
		target.Port = aws.ToInt32(instance.Endpoint.Port)
	}

	for _, group := range instance.DBParameterGroups {
		target.ParameterGroups = append(target.ParameterGroups, aws.ToString(group.DBParameterGroupName))
	}

	return target
}

// targetFromCluster converts an SDK DBCluster to the domain model.
func targetFromCluster(cluster types.DBCluster) models.DatabaseTarget {
	target := models.DatabaseTarget{
		Identifier:            aws.ToString(cluster.DBClusterIdentifier),
		Kind:                  models.KindCluster,
		ARN:                   aws.ToString(cluster.DBClusterArn),
		Engine:                aws.ToString(cluster.Engine),
		EngineVersion:         aws.ToString(cluster.EngineVersion),
		Status:                aws.ToString(cluster.Status),
		Endpoint:              aws.ToString(cluster.Endpoint),
		Port:                  aws.ToInt32(cluster.Port),
		BackupRetentionPeriod: aws.ToInt32(cluster.BackupRetentionPeriod),
		DeletionProtection:    aws.ToBool(cluster.DeletionProtection),
		ClusterParameterGroup: aws.ToString(cluster.DBClusterParameterGroup),
	}

	for _, member := range cluster.DBClusterMembers {
		target.MemberInstances = append(target.MemberInstances, aws.ToString(member.DBInstanceIdentifier))
	}

	return target
}
