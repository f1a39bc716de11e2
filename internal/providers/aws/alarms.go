package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// AlarmService handles interactions with CloudWatch metric alarms.
type AlarmService struct {
	client CloudWatchClientAPI
}

// NewAlarmServiceWithClient creates a new AlarmService with a provided client.
func NewAlarmServiceWithClient(client CloudWatchClientAPI) *AlarmService {
	return &AlarmService{
		client: client,
	}
}

// ListMetricAlarms returns every metric alarm in the region, following
// pagination. Composite alarms are not included.
func (s *AlarmService) ListMetricAlarms(ctx context.Context) ([]cwtypes.MetricAlarm, error) {
	var alarms []cwtypes.MetricAlarm

	paginator := cloudwatch.NewDescribeAlarmsPaginator(s.client, &cloudwatch.DescribeAlarmsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, AlarmResourceType, "")
		}
		alarms = append(alarms, page.MetricAlarms...)
	}

	return alarms, nil
}

// PutMetricAlarm creates or overwrites a metric alarm.
func (s *AlarmService) PutMetricAlarm(ctx context.Context, input *cloudwatch.PutMetricAlarmInput) error {
	_, err := s.client.PutMetricAlarm(ctx, input)
	if err != nil {
		name := ""
		if input.AlarmName != nil {
			name = *input.AlarmName
		}
		return ClassifyAWSError(err, AlarmResourceType, name)
	}
	return nil
}
