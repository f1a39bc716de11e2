package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// ParameterSourceUser marks parameters that were set by an operator rather
// than inherited from the engine defaults.
const ParameterSourceUser = "user"

// ApplyMethodPendingReboot defers a parameter change until the next reboot.
const ApplyMethodPendingReboot = "pending-reboot"

// The ModifyDBParameterGroup API accepts at most 20 parameters per call.
const maxParametersPerModify = 20

// ParameterService handles interactions with DB and cluster parameter groups.
type ParameterService struct {
	client ParameterClientAPI
}

// NewParameterServiceWithClient creates a new ParameterService with a provided client.
func NewParameterServiceWithClient(client ParameterClientAPI) *ParameterService {
	return &ParameterService{
		client: client,
	}
}

// ListParameters fetches every parameter of a group, following pagination.
// The kind selects between instance and cluster parameter group APIs.
func (s *ParameterService) ListParameters(ctx context.Context, groupName string, kind models.DatabaseKind) ([]models.ParameterSetting, error) {
	var settings []models.ParameterSetting

	if kind == models.KindCluster {
		paginator := rds.NewDescribeDBClusterParametersPaginator(s.client, &rds.DescribeDBClusterParametersInput{
			DBClusterParameterGroupName: aws.String(groupName),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, ClassifyAWSError(err, ParameterGroupResourceType, groupName)
			}
			for _, parameter := range page.Parameters {
				settings = append(settings, settingFromSDK(parameter))
			}
		}
		return settings, nil
	}

	paginator := rds.NewDescribeDBParametersPaginator(s.client, &rds.DescribeDBParametersInput{
		DBParameterGroupName: aws.String(groupName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, ParameterGroupResourceType, groupName)
		}
		for _, parameter := range page.Parameters {
			settings = append(settings, settingFromSDK(parameter))
		}
	}
	return settings, nil
}

// UserParameters returns only the parameters an operator has overridden.
func (s *ParameterService) UserParameters(ctx context.Context, groupName string, kind models.DatabaseKind) ([]models.ParameterSetting, error) {
	all, err := s.ListParameters(ctx, groupName, kind)
	if err != nil {
		return nil, err
	}

	var user []models.ParameterSetting
	for _, setting := range all {
		if setting.Source == ParameterSourceUser {
			user = append(user, setting)
		}
	}
	return user, nil
}

// ModifyParameters applies the given settings to a parameter group. Calls
// are chunked to stay under the API's per-call parameter limit.
func (s *ParameterService) ModifyParameters(ctx context.Context, groupName string, kind models.DatabaseKind, settings []models.ParameterSetting) error {
	if len(settings) == 0 {
		return nil
	}

	parameters := make([]types.Parameter, 0, len(settings))
	for _, setting := range settings {
		parameters = append(parameters, sdkFromSetting(setting))
	}

	for start := 0; start < len(parameters); start += maxParametersPerModify {
		end := min(start+maxParametersPerModify, len(parameters))
		chunk := parameters[start:end]

		if kind == models.KindCluster {
			_, err := s.client.ModifyDBClusterParameterGroup(ctx, &rds.ModifyDBClusterParameterGroupInput{
				DBClusterParameterGroupName: aws.String(groupName),
				Parameters:                  chunk,
			})
			if err != nil {
				return ClassifyAWSError(err, ParameterGroupResourceType, groupName)
			}
			continue
		}

		_, err := s.client.ModifyDBParameterGroup(ctx, &rds.ModifyDBParameterGroupInput{
			DBParameterGroupName: aws.String(groupName),
			Parameters:           chunk,
		})
		if err != nil {
			return ClassifyAWSError(err, ParameterGroupResourceType, groupName)
		}
	}

	return nil
}

// CreateParameterGroup creates a new instance or cluster parameter group for
// the given family.
func (s *ParameterService) CreateParameterGroup(ctx context.Context, name, family, description string, kind models.DatabaseKind) error {
	if kind == models.KindCluster {
		_, err := s.client.CreateDBClusterParameterGroup(ctx, &rds.CreateDBClusterParameterGroupInput{
			DBClusterParameterGroupName: aws.String(name),
			DBParameterGroupFamily:      aws.String(family),
			Description:                 aws.String(description),
		})
		if err != nil {
			return ClassifyAWSError(err, ParameterGroupResourceType, name)
		}
		return nil
	}

	_, err := s.client.CreateDBParameterGroup(ctx, &rds.CreateDBParameterGroupInput{
		DBParameterGroupName:   aws.String(name),
		DBParameterGroupFamily: aws.String(family),
		Description:            aws.String(description),
	})
	if err != nil {
		return ClassifyAWSError(err, ParameterGroupResourceType, name)
	}
	return nil
}

// settingFromSDK converts an SDK Parameter to the domain model.
func settingFromSDK(parameter types.Parameter) models.ParameterSetting {
	return models.ParameterSetting{
		Name:          aws.ToString(parameter.ParameterName),
		Value:         aws.ToString(parameter.ParameterValue),
		AllowedValues: aws.ToString(parameter.AllowedValues),
		ApplyType:     aws.ToString(parameter.ApplyType),
		ApplyMethod:   string(parameter.ApplyMethod),
		Source:        aws.ToString(parameter.Source),
		Description:   aws.ToString(parameter.Description),
		IsModifiable:  aws.ToBool(parameter.IsModifiable),
	}
}

// sdkFromSetting converts a domain parameter back to the SDK shape for
// modify calls.
func sdkFromSetting(setting models.ParameterSetting) types.Parameter {
	applyMethod := setting.ApplyMethod
	if applyMethod == "" {
		applyMethod = ApplyMethodPendingReboot
	}

	return types.Parameter{
		ParameterName:  aws.String(setting.Name),
		ParameterValue: aws.String(setting.Value),
		ApplyMethod:    types.ApplyMethod(applyMethod),
	}
}
