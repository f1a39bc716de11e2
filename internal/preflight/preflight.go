// Package preflight verifies that a database can enter a blue/green upgrade:
// no active replication slots, no extensions known to break logical
// replication between the blue and green environments.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

// ErrUnsafe indicates the database failed its pre-upgrade checks. Callers
// exit non-zero on it without further wrapping.
var ErrUnsafe = errors.New("database is not safe for a blue/green upgrade")

// slotAdvice is the operator-facing reason an active slot blocks an upgrade.
const slotAdvice = "Drop or deactivate the slot before upgrading."

// flaggedExtensions are extensions that interfere with the managed logical
// replication between blue and green environments, each with the
// operator-facing reason it is flagged.
var flaggedExtensions = map[string]string{
	"pg_partman": "Should be disabled in blue environments.",
	"pg_cron":    "Should remain disabled in green environments.",
	"pglogical":  "Should be disabled in blue environments.",
	"pgactive":   "Should be disabled in blue environments.",
	"pgaudit":    "Must remain in shared_preload_libraries.",
}

// Config contains the parameters for the pre-upgrade checks.
type Config struct {
	SecretNameTemplate string        // fmt template mapping an identifier to its secret name
	ConnectTimeout     time.Duration // PostgreSQL connect timeout
}

// secretName builds the Secrets Manager name for a database identifier.
func (c Config) secretName(identifier string) string {
	return fmt.Sprintf(c.SecretNameTemplate, identifier)
}

// Service runs the pre-upgrade checks against a live database.
type Service struct {
	config  Config
	secrets aws.SecretServiceAPI
	connect ConnectFunc
	logger  logging.Logger
}

// NewService creates a new preflight service. A nil connect falls back to the
// pgx-backed Connect.
func NewService(config Config, secrets aws.SecretServiceAPI, connect ConnectFunc, logger logging.Logger) *Service {
	if connect == nil {
		connect = Connect
	}
	return &Service{
		config:  config,
		secrets: secrets,
		connect: connect,
		logger:  logger,
	}
}

// Run fetches the database credentials, connects, and reports every active
// replication slot and flagged extension found. An unsafe database is not an
// error; the verdict is carried by the report.
func (s *Service) Run(ctx context.Context, identifier string) (models.PreflightReport, error) {
	report := models.PreflightReport{Identifier: identifier}

	secretName := s.config.secretName(identifier)
	s.logger.Debug("Fetching credentials from secret %s", secretName)
	secret, err := s.secrets.GetDatabaseSecret(ctx, secretName)
	if err != nil {
		return report, fmt.Errorf("error fetching database credentials: %w", err)
	}
	report.Host = secret.Host
	report.Database = secret.Database

	s.logger.Info("Connecting to %s:%d/%s as %s", secret.Host, secret.Port, secret.Database, secret.Username)
	inspector, err := s.connect(ctx, secret, s.config.ConnectTimeout)
	if err != nil {
		return report, fmt.Errorf("error connecting to database: %w", err)
	}
	defer func() {
		_ = inspector.Close(ctx)
	}()

	slots, err := inspector.ActiveReplicationSlots(ctx)
	if err != nil {
		return report, fmt.Errorf("error checking replication slots: %w", err)
	}
	report.ActiveSlots = slots
	for _, slot := range slots {
		s.logger.Warn("Active replication slot found: %s", slot.Name)
		report.Findings = append(report.Findings, models.PreflightFinding{
			Kind:   models.FindingReplicationSlot,
			Name:   slot.Name,
			Advice: slotAdvice,
		})
	}

	extensions, err := inspector.InstalledExtensions(ctx)
	if err != nil {
		return report, fmt.Errorf("error checking extensions: %w", err)
	}
	report.Extensions = extensions
	for _, name := range extensions {
		if advice, ok := flaggedExtensions[name]; ok {
			s.logger.Warn("Flagged extension installed: %s. %s", name, advice)
			report.Findings = append(report.Findings, models.PreflightFinding{
				Kind:   models.FindingExtension,
				Name:   name,
				Advice: advice,
			})
		}
	}

	if report.Safe() {
		s.logger.Info("No active replication slots or flagged extensions found")
	} else {
		s.logger.Warn("Database %s has %d findings blocking a blue/green upgrade", identifier, len(report.Findings))
	}

	return report, nil
}
