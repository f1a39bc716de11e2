package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// IdentityService resolves the calling AWS account. Used at startup so the
// operator sees which account a destructive run is about to touch.
type IdentityService struct {
	client STSClientAPI
}

// NewIdentityServiceWithClient creates a new IdentityService with a provided client.
func NewIdentityServiceWithClient(client STSClientAPI) *IdentityService {
	return &IdentityService{
		client: client,
	}
}

// AccountID returns the AWS account number of the current credentials.
func (s *IdentityService) AccountID(ctx context.Context) (string, error) {
	resp, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", ClassifyAWSError(err, "", "")
	}
	return aws.ToString(resp.Account), nil
}
