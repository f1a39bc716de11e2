package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// SecretService fetches database credentials from Secrets Manager.
type SecretService struct {
	client SecretsManagerClientAPI
}

// NewSecretServiceWithClient creates a new SecretService with a provided client.
func NewSecretServiceWithClient(client SecretsManagerClientAPI) *SecretService {
	return &SecretService{
		client: client,
	}
}

// GetDatabaseSecret fetches and decodes the credential document stored under
// secretName. Port, database name and username fall back to the values the
// secrets are provisioned with when the document omits them; host and
// password are required.
func (s *SecretService) GetDatabaseSecret(ctx context.Context, secretName string) (*models.DatabaseSecret, error) {
	resp, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, ClassifyAWSError(err, SecretResourceType, secretName)
	}

	if resp.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no SecretString payload", secretName)
	}

	var secret models.DatabaseSecret
	if err := json.Unmarshal([]byte(*resp.SecretString), &secret); err != nil {
		return nil, fmt.Errorf("failed to decode secret %s: %w", secretName, err)
	}

	if secret.Port == 0 {
		secret.Port = 5432
	}
	if secret.Database == "" {
		secret.Database = "postgres"
	}
	if secret.Username == "" {
		secret.Username = "root"
	}

	if secret.Host == "" || secret.Password == "" {
		return nil, fmt.Errorf("secret %s is missing host or password", secretName)
	}

	return &secret, nil
}
