// Package alarms copies the CloudWatch metric alarms of one database onto
// others, rewriting names and dimensions for the new targets. Used after a
// switchover so the replacement environment keeps the monitoring of the old
// one.
package alarms

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

const (
	dimensionDBInstance = "DBInstanceIdentifier"
	dimensionDBCluster  = "DBClusterIdentifier"

	roleWriter = "writer"
	roleReader = "reader"
)

// Service implements the alarm copy operation.
type Service struct {
	alarms    aws.AlarmServiceAPI
	databases aws.DatabaseServiceAPI
	logger    logging.Logger
}

// NewService creates a new alarm service.
func NewService(alarms aws.AlarmServiceAPI, databases aws.DatabaseServiceAPI, logger logging.Logger) *Service {
	return &Service{
		alarms:    alarms,
		databases: databases,
		logger:    logger,
	}
}

// Copy duplicates every metric alarm whose name contains source onto each
// target. The first target takes the writer role, the rest are readers.
// Aurora cluster targets are expanded to their member instances. Returns
// the names of the alarms it created.
func (s *Service) Copy(ctx context.Context, source string, rawTargets []string) ([]string, error) {
	targets, err := s.expandTargets(ctx, rawTargets)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets to copy alarms to")
	}

	alarms, err := s.alarms.ListMetricAlarms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing metric alarms: %w", err)
	}

	var created []string
	for _, alarm := range alarms {
		name := awssdk.ToString(alarm.AlarmName)
		if !strings.Contains(name, source) {
			continue
		}

		for i, target := range targets {
			role := roleWriter
			if i > 0 {
				role = roleReader
			}
			newName := strings.ReplaceAll(name, source, fmt.Sprintf("%s-alarm-%s", target, role))

			if err := s.alarms.PutMetricAlarm(ctx, buildPutInput(alarm, newName, target)); err != nil {
				return created, fmt.Errorf("error creating alarm %s: %w", newName, err)
			}
			s.logger.Info("Created alarm %s from %s", newName, name)
			created = append(created, newName)
		}
	}

	if len(created) == 0 {
		s.logger.Info("No alarms found matching %s", source)
	}
	return created, nil
}

// expandTargets resolves each raw target. Aurora clusters contribute their
// member instances, everything else contributes itself.
func (s *Service) expandTargets(ctx context.Context, rawTargets []string) ([]string, error) {
	var targets []string
	for _, raw := range rawTargets {
		target, err := s.databases.Resolve(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("error resolving target %s: %w", raw, err)
		}
		if target.IsCluster() && len(target.MemberInstances) > 0 {
			targets = append(targets, target.MemberInstances...)
			continue
		}
		targets = append(targets, target.Identifier)
	}
	return targets, nil
}

// buildPutInput carries over only the alarm's configuration fields. ARN,
// state and the state timestamps stay behind.
func buildPutInput(alarm cwtypes.MetricAlarm, name, target string) *cloudwatch.PutMetricAlarmInput {
	return &cloudwatch.PutMetricAlarmInput{
		AlarmName:                        awssdk.String(name),
		AlarmDescription:                 alarm.AlarmDescription,
		ActionsEnabled:                   alarm.ActionsEnabled,
		OKActions:                        alarm.OKActions,
		AlarmActions:                     alarm.AlarmActions,
		InsufficientDataActions:          alarm.InsufficientDataActions,
		MetricName:                       alarm.MetricName,
		Namespace:                        alarm.Namespace,
		Statistic:                        alarm.Statistic,
		ExtendedStatistic:                alarm.ExtendedStatistic,
		Dimensions:                       targetDimensions(alarm, target),
		Period:                           alarm.Period,
		Unit:                             alarm.Unit,
		EvaluationPeriods:                alarm.EvaluationPeriods,
		DatapointsToAlarm:                alarm.DatapointsToAlarm,
		Threshold:                        alarm.Threshold,
		ComparisonOperator:               alarm.ComparisonOperator,
		TreatMissingData:                 alarm.TreatMissingData,
		EvaluateLowSampleCountPercentile: alarm.EvaluateLowSampleCountPercentile,
		Metrics:                          alarm.Metrics,
		ThresholdMetricId:                alarm.ThresholdMetricId,
	}
}

// targetDimensions reduces the source alarm's dimensions to a single one
// pointing at the target, keeping the cluster dimension kind when the
// source alarm monitors a cluster.
func targetDimensions(alarm cwtypes.MetricAlarm, target string) []cwtypes.Dimension {
	name := dimensionDBInstance
	for _, dim := range alarm.Dimensions {
		if awssdk.ToString(dim.Name) == dimensionDBCluster {
			name = dimensionDBCluster
			break
		}
	}
	return []cwtypes.Dimension{{
		Name:  awssdk.String(name),
		Value: awssdk.String(target),
	}}
}
