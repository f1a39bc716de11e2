package aws

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// Blue/Green deployment statuses reported by the RDS API.
const (
	BlueGreenStatusProvisioning         = "PROVISIONING"
	BlueGreenStatusAvailable            = "AVAILABLE"
	BlueGreenStatusSwitchoverInProgress = "SWITCHOVER_IN_PROGRESS"
	BlueGreenStatusSwitchoverCompleted  = "SWITCHOVER_COMPLETED"
	BlueGreenStatusSwitchoverFailed     = "SWITCHOVER_FAILED"
)

// BlueGreenService handles interactions with RDS Blue/Green deployments.
type BlueGreenService struct {
	client BlueGreenClientAPI
}

// NewBlueGreenServiceWithClient creates a new BlueGreenService with a provided client.
func NewBlueGreenServiceWithClient(client BlueGreenClientAPI) *BlueGreenService {
	return &BlueGreenService{
		client: client,
	}
}

// FindForDatabase returns the Blue/Green deployment whose source or target
// ARN references the given database identifier, or nil when none exists.
func (s *BlueGreenService) FindForDatabase(ctx context.Context, identifier string) (*models.BlueGreenDeployment, error) {
	paginator := rds.NewDescribeBlueGreenDeploymentsPaginator(s.client, &rds.DescribeBlueGreenDeploymentsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, BlueGreenResourceType, identifier)
		}

		for _, deployment := range page.BlueGreenDeployments {
			source := aws.ToString(deployment.Source)
			target := aws.ToString(deployment.Target)
			if strings.Contains(source, identifier) || strings.Contains(target, identifier) {
				found := deploymentFromSDK(deployment)
				return &found, nil
			}
		}
	}

	return nil, nil
}

// Status returns the current status of a Blue/Green deployment.
func (s *BlueGreenService) Status(ctx context.Context, deploymentID string) (string, error) {
	resp, err := s.client.DescribeBlueGreenDeployments(ctx, &rds.DescribeBlueGreenDeploymentsInput{
		BlueGreenDeploymentIdentifier: aws.String(deploymentID),
	})
	if err != nil {
		return "", ClassifyAWSError(err, BlueGreenResourceType, deploymentID)
	}

	if len(resp.BlueGreenDeployments) == 0 {
		return "", NewAWSError(ErrResourceNotFound, BlueGreenResourceType, deploymentID,
			"Blue/Green deployment not found", nil)
	}

	return aws.ToString(resp.BlueGreenDeployments[0].Status), nil
}

// Create starts a new Blue/Green deployment upgrading the source database to
// the target engine version.
func (s *BlueGreenService) Create(ctx context.Context, name, sourceARN, targetVersion string) (*models.BlueGreenDeployment, error) {
	resp, err := s.client.CreateBlueGreenDeployment(ctx, &rds.CreateBlueGreenDeploymentInput{
		BlueGreenDeploymentName: aws.String(name),
		Source:                  aws.String(sourceARN),
		TargetEngineVersion:     aws.String(targetVersion),
	})
	if err != nil {
		return nil, ClassifyAWSError(err, BlueGreenResourceType, name)
	}

	var created models.BlueGreenDeployment
	if resp.BlueGreenDeployment != nil {
		created = deploymentFromSDK(*resp.BlueGreenDeployment)
	}
	return &created, nil
}

// Switchover promotes the green environment. The timeout is enforced by RDS,
// not by this client.
func (s *BlueGreenService) Switchover(ctx context.Context, deploymentID string, timeout time.Duration) error {
	_, err := s.client.SwitchoverBlueGreenDeployment(ctx, &rds.SwitchoverBlueGreenDeploymentInput{
		BlueGreenDeploymentIdentifier: aws.String(deploymentID),
		SwitchoverTimeout:             aws.Int32(int32(timeout.Seconds())),
	})
	if err != nil {
		return ClassifyAWSError(err, BlueGreenResourceType, deploymentID)
	}
	return nil
}

// Delete removes the Blue/Green deployment and returns its final state. The
// databases themselves are left in place; the source ARN in the returned
// deployment identifies the old environment for later cleanup.
func (s *BlueGreenService) Delete(ctx context.Context, deploymentID string) (*models.BlueGreenDeployment, error) {
	resp, err := s.client.DeleteBlueGreenDeployment(ctx, &rds.DeleteBlueGreenDeploymentInput{
		BlueGreenDeploymentIdentifier: aws.String(deploymentID),
	})
	if err != nil {
		return nil, ClassifyAWSError(err, BlueGreenResourceType, deploymentID)
	}

	var deleted models.BlueGreenDeployment
	if resp.BlueGreenDeployment != nil {
		deleted = deploymentFromSDK(*resp.BlueGreenDeployment)
	}
	return &deleted, nil
}

// DatabaseNameFromARN extracts the database identifier from an RDS ARN such
// as arn:aws:rds:us-east-1:123456789012:db:mydb-old1.
func DatabaseNameFromARN(arn string) string {
	parts := strings.Split(arn, ":")
	last := parts[len(parts)-1]
	if idx := strings.LastIndex(last, "/"); idx >= 0 {
		last = last[idx+1:]
	}
	return last
}

// deploymentFromSDK converts an SDK BlueGreenDeployment to the domain model.
func deploymentFromSDK(deployment types.BlueGreenDeployment) models.BlueGreenDeployment {
	return models.BlueGreenDeployment{
		Identifier: aws.ToString(deployment.BlueGreenDeploymentIdentifier),
		Name:       aws.ToString(deployment.BlueGreenDeploymentName),
		Status:     aws.ToString(deployment.Status),
		SourceARN:  aws.ToString(deployment.Source),
		TargetARN:  aws.ToString(deployment.Target),
	}
}
