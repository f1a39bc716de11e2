package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAWSError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCategory
	}{
		{
			name:     "instance not found fault",
			err:      &smithy.GenericAPIError{Code: "DBInstanceNotFoundFault"},
			expected: ErrResourceNotFound,
		},
		{
			name:     "secrets manager not found",
			err:      &smithy.GenericAPIError{Code: "ResourceNotFoundException"},
			expected: ErrResourceNotFound,
		},
		{
			name:     "access denied",
			err:      &smithy.GenericAPIError{Code: "AccessDeniedException"},
			expected: ErrPermissionDenied,
		},
		{
			name:     "throttled",
			err:      &smithy.GenericAPIError{Code: "Throttling"},
			expected: ErrThrottling,
		},
		{
			name:     "cluster in wrong state",
			err:      &smithy.GenericAPIError{Code: "InvalidDBClusterStateFault"},
			expected: ErrInvalidState,
		},
		{
			name:     "blue green deployment in wrong state",
			err:      &smithy.GenericAPIError{Code: "InvalidBlueGreenDeploymentStateFault"},
			expected: ErrInvalidState,
		},
		{
			name:     "parameter group already exists",
			err:      &smithy.GenericAPIError{Code: "DBParameterGroupAlreadyExistsFault"},
			expected: ErrInvalidInput,
		},
		{
			name:     "network failure before request",
			err:      errors.New("dial tcp: lookup rds.us-east-1.amazonaws.com: no such host"),
			expected: ErrNetworkError,
		},
		{
			name:     "expired session token",
			err:      &smithy.GenericAPIError{Code: "InvalidClientTokenId"},
			expected: ErrConfigurationError,
		},
		{
			name:     "unknown error",
			err:      errors.New("something unexpected"),
			expected: ErrInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyAWSError(tt.err, DBInstanceResourceType, "orders")

			assert.Equal(t, tt.expected, classified.Category)
			assert.Equal(t, DBInstanceResourceType, classified.ResourceType)
			assert.Equal(t, "orders", classified.ResourceID)
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}

func TestClassifyAWSError_NilError(t *testing.T) {
	assert.Nil(t, ClassifyAWSError(nil, DBInstanceResourceType, "orders"))
}

func TestErrorFormatting(t *testing.T) {
	withID := NewAWSError(ErrResourceNotFound, DBClusterResourceType, "analytics", "Resource not found", nil)
	assert.Equal(t, "resource_not_found: Resource not found [resource: DBCluster/analytics]", withID.Error())

	withoutID := NewAWSError(ErrThrottling, DBInstanceResourceType, "", "Request throttled", nil)
	assert.Equal(t, "request_throttled: Request throttled [resource type: DBInstance]", withoutID.Error())

	bare := NewAWSError(ErrInternalError, "", "", "Internal error occurred", nil)
	assert.Equal(t, "internal_error: Internal error occurred", bare.Error())
}

func TestIsNotFound(t *testing.T) {
	notFound := NewAWSError(ErrResourceNotFound, DBInstanceResourceType, "orders", "Resource not found", nil)

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("resolving database: %w", notFound)))
	assert.False(t, IsNotFound(NewAWSError(ErrPermissionDenied, DBInstanceResourceType, "orders", "Access denied", nil)))
	assert.False(t, IsNotFound(errors.New("plain error")))
	assert.False(t, IsNotFound(nil))
}

func TestIsErrorCategory_Wrapped(t *testing.T) {
	underlying := NewAWSError(ErrInvalidState, BlueGreenResourceType, "bgd-abc123", "Resource is not in a valid state for this operation", nil)
	wrapped := fmt.Errorf("switchover failed: %w", underlying)

	assert.True(t, IsErrorCategory(wrapped, ErrInvalidState))
	assert.False(t, IsErrorCategory(wrapped, ErrThrottling))
}
